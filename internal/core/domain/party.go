package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is billed by the agency. Customer invoices reference it.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Company   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Vendor bills the agency. ServiceType is a free-form tag used only to
// bucket expenses in reports.
type Vendor struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Phone       string
	ServiceType string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
