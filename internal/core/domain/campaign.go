package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle stage of a campaign.
type CampaignStatus string

const (
	CampaignPlanned   CampaignStatus = "planned"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
)

// ParseCampaignStatus normalises s (trimmed, lower-cased) and reports whether
// it names a known status.
func ParseCampaignStatus(s string) (CampaignStatus, bool) {
	st := CampaignStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case CampaignPlanned, CampaignActive, CampaignCompleted:
		return st, true
	default:
		return st, false
	}
}

// Campaign represents a marketing initiative. Revenue and expense invoices
// point at a campaign by id; the campaign itself does not list them.
type Campaign struct {
	ID          uuid.UUID
	Name        string
	Description string
	PONumber    string // purchase order number
	StartDate   time.Time
	EndDate     *time.Time
	Budget      decimal.Decimal
	Status      CampaignStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive reports whether the campaign is running. Stored statuses are
// normalised first so legacy rows such as "Active" still count.
func (c Campaign) IsActive() bool {
	st, _ := ParseCampaignStatus(string(c.Status))
	return st == CampaignActive
}
