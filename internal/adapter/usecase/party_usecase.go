package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
)

// CustomerUseCase implements port.CustomerUseCase.
type CustomerUseCase struct {
	customers port.CustomerRepository
	invalidator
	logger *slog.Logger
	now    func() time.Time
}

func NewCustomerUseCase(customers port.CustomerRepository, cache port.DashboardCache, logger *slog.Logger) *CustomerUseCase {
	return &CustomerUseCase{
		customers:   customers,
		invalidator: invalidator{cache: cache, logger: logger},
		logger:      logger,
		now:         utcNow,
	}
}

var _ port.CustomerUseCase = (*CustomerUseCase)(nil)

func (u *CustomerUseCase) List(ctx context.Context, filter port.PartyFilter) (_ []domain.Customer, err error) {
	ctx, span := startSpan(ctx, "customer.list")
	defer func() { endSpan(span, err) }()
	return u.customers.ListCustomers(ctx, filter)
}

func (u *CustomerUseCase) Get(ctx context.Context, id uuid.UUID) (_ *domain.Customer, err error) {
	ctx, span := startSpan(ctx, "customer.get")
	defer func() { endSpan(span, err) }()
	return u.customers.GetCustomer(ctx, id)
}

func (u *CustomerUseCase) Create(ctx context.Context, c domain.Customer) (_ *domain.Customer, err error) {
	ctx, span := startSpan(ctx, "customer.create")
	defer func() { endSpan(span, err) }()

	if c.Name, err = required("name", c.Name); err != nil {
		return nil, err
	}
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Company = strings.TrimSpace(c.Company)

	now := u.now()
	c.ID = uuid.New()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err = u.customers.CreateCustomer(ctx, &c); err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	return &c, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id uuid.UUID, patch port.CustomerPatch) (_ *domain.Customer, err error) {
	ctx, span := startSpan(ctx, "customer.update")
	defer func() { endSpan(span, err) }()

	c, err := u.customers.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if c.Name, err = required("name", *patch.Name); err != nil {
			return nil, err
		}
	}
	if patch.Email != nil {
		c.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Phone != nil {
		c.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.Company != nil {
		c.Company = strings.TrimSpace(*patch.Company)
	}
	c.UpdatedAt = u.now()

	if err = u.customers.UpdateCustomer(ctx, c); err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	return c, nil
}

// Delete refuses while invoices reference the customer. The repository
// repeats the count under a row lock, so the check here only produces the
// early, count-bearing error.
func (u *CustomerUseCase) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, "customer.delete")
	defer func() { endSpan(span, err) }()

	n, err := u.customers.CountCustomerInvoices(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return &port.DependentsError{Entity: "customer", Count: n}
	}
	if err = u.customers.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	u.invalidate(ctx)
	u.logger.Info("customer deleted", slog.String("id", id.String()))
	return nil
}

// VendorUseCase implements port.VendorUseCase.
type VendorUseCase struct {
	vendors port.VendorRepository
	invalidator
	logger *slog.Logger
	now    func() time.Time
}

func NewVendorUseCase(vendors port.VendorRepository, cache port.DashboardCache, logger *slog.Logger) *VendorUseCase {
	return &VendorUseCase{
		vendors:     vendors,
		invalidator: invalidator{cache: cache, logger: logger},
		logger:      logger,
		now:         utcNow,
	}
}

var _ port.VendorUseCase = (*VendorUseCase)(nil)

func (u *VendorUseCase) List(ctx context.Context, filter port.PartyFilter) (_ []domain.Vendor, err error) {
	ctx, span := startSpan(ctx, "vendor.list")
	defer func() { endSpan(span, err) }()
	return u.vendors.ListVendors(ctx, filter)
}

func (u *VendorUseCase) Get(ctx context.Context, id uuid.UUID) (_ *domain.Vendor, err error) {
	ctx, span := startSpan(ctx, "vendor.get")
	defer func() { endSpan(span, err) }()
	return u.vendors.GetVendor(ctx, id)
}

func (u *VendorUseCase) Create(ctx context.Context, v domain.Vendor) (_ *domain.Vendor, err error) {
	ctx, span := startSpan(ctx, "vendor.create")
	defer func() { endSpan(span, err) }()

	if v.Name, err = required("name", v.Name); err != nil {
		return nil, err
	}
	v.Email = strings.TrimSpace(v.Email)
	v.Phone = strings.TrimSpace(v.Phone)
	v.ServiceType = strings.TrimSpace(v.ServiceType)

	now := u.now()
	v.ID = uuid.New()
	v.CreatedAt = now
	v.UpdatedAt = now
	if err = u.vendors.CreateVendor(ctx, &v); err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	return &v, nil
}

func (u *VendorUseCase) Update(ctx context.Context, id uuid.UUID, patch port.VendorPatch) (_ *domain.Vendor, err error) {
	ctx, span := startSpan(ctx, "vendor.update")
	defer func() { endSpan(span, err) }()

	v, err := u.vendors.GetVendor(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if v.Name, err = required("name", *patch.Name); err != nil {
			return nil, err
		}
	}
	if patch.Email != nil {
		v.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Phone != nil {
		v.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.ServiceType != nil {
		v.ServiceType = strings.TrimSpace(*patch.ServiceType)
	}
	v.UpdatedAt = u.now()

	if err = u.vendors.UpdateVendor(ctx, v); err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	return v, nil
}

// Delete refuses while vendor invoices reference the vendor.
func (u *VendorUseCase) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, "vendor.delete")
	defer func() { endSpan(span, err) }()

	n, err := u.vendors.CountVendorInvoices(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return &port.DependentsError{Entity: "vendor", Count: n}
	}
	if err = u.vendors.DeleteVendor(ctx, id); err != nil {
		return err
	}
	u.invalidate(ctx)
	u.logger.Info("vendor deleted", slog.String("id", id.String()))
	return nil
}
