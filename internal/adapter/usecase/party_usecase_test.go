package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
	"agency-backoffice/internal/core/port/mocks"
)

func TestCustomerDeleteBlockedByInvoices(t *testing.T) {
	repo := mocks.NewMockCustomerRepository(t)
	cache := mocks.NewMockDashboardCache(t)
	uc := NewCustomerUseCase(repo, cache, discardLogger())
	id := uuid.New()

	repo.EXPECT().CountCustomerInvoices(mock.Anything, id).Return(2, nil)

	err := uc.Delete(context.Background(), id)

	var dep *port.DependentsError
	require.ErrorAs(t, err, &dep)
	assert.Equal(t, 2, dep.Count)
	assert.Equal(t, "cannot delete customer with 2 invoice(s); delete the invoices first", err.Error())
	repo.AssertNotCalled(t, "DeleteCustomer", mock.Anything, mock.Anything)
}

func TestCustomerDeleteWithoutInvoices(t *testing.T) {
	repo := mocks.NewMockCustomerRepository(t)
	cache := mocks.NewMockDashboardCache(t)
	uc := NewCustomerUseCase(repo, cache, discardLogger())
	id := uuid.New()

	repo.EXPECT().CountCustomerInvoices(mock.Anything, id).Return(0, nil)
	repo.EXPECT().DeleteCustomer(mock.Anything, id).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return(nil).Once()

	require.NoError(t, uc.Delete(context.Background(), id))
}

func TestCustomerDeleteRaceReportedByStore(t *testing.T) {
	repo := mocks.NewMockCustomerRepository(t)
	cache := mocks.NewMockDashboardCache(t)
	uc := NewCustomerUseCase(repo, cache, discardLogger())
	id := uuid.New()

	repo.EXPECT().CountCustomerInvoices(mock.Anything, id).Return(0, nil)
	repo.EXPECT().DeleteCustomer(mock.Anything, id).Return(&port.DependentsError{Entity: "customer", Count: 1})

	err := uc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, port.ErrHasDependents)
}

func TestCustomerCreate(t *testing.T) {
	repo := mocks.NewMockCustomerRepository(t)
	cache := mocks.NewMockDashboardCache(t)
	uc := NewCustomerUseCase(repo, cache, discardLogger())
	uc.now = fixedClock

	repo.EXPECT().CreateCustomer(mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return(nil)

	got, err := uc.Create(context.Background(), domain.Customer{Name: " Acme ", Email: " billing@acme.test "})
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "billing@acme.test", got.Email)
	assert.Equal(t, fixedNow, got.CreatedAt)
	assert.NotEqual(t, uuid.Nil, got.ID)

	_, err = uc.Create(context.Background(), domain.Customer{Name: ""})
	assert.ErrorIs(t, err, port.ErrValidation)
}

func TestCustomerUpdate(t *testing.T) {
	repo := mocks.NewMockCustomerRepository(t)
	cache := mocks.NewMockDashboardCache(t)
	uc := NewCustomerUseCase(repo, cache, discardLogger())
	id := uuid.New()

	repo.EXPECT().GetCustomer(mock.Anything, id).
		RunAndReturn(func(context.Context, uuid.UUID) (*domain.Customer, error) {
			return &domain.Customer{ID: id, Name: "Acme", Company: "Acme Inc"}, nil
		})
	repo.EXPECT().UpdateCustomer(mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil).Once()
	cache.EXPECT().Invalidate(mock.Anything).Return(nil).Once()

	got, err := uc.Update(context.Background(), id, port.CustomerPatch{Company: ptr("Acme Corp")})
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "Acme Corp", got.Company)

	_, err = uc.Update(context.Background(), id, port.CustomerPatch{Name: ptr("   ")})
	assert.ErrorIs(t, err, port.ErrValidation)
}

func TestVendorDeleteBlockedByInvoices(t *testing.T) {
	repo := mocks.NewMockVendorRepository(t)
	cache := mocks.NewMockDashboardCache(t)
	uc := NewVendorUseCase(repo, cache, discardLogger())
	id := uuid.New()

	repo.EXPECT().CountVendorInvoices(mock.Anything, id).Return(1, nil)

	err := uc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, port.ErrHasDependents)
	assert.Equal(t, "cannot delete vendor with 1 invoice(s); delete the invoices first", err.Error())
	repo.AssertNotCalled(t, "DeleteVendor", mock.Anything, mock.Anything)
}

func TestVendorDeleteWithoutInvoices(t *testing.T) {
	repo := mocks.NewMockVendorRepository(t)
	cache := mocks.NewMockDashboardCache(t)
	uc := NewVendorUseCase(repo, cache, discardLogger())
	id := uuid.New()

	repo.EXPECT().CountVendorInvoices(mock.Anything, id).Return(0, nil)
	repo.EXPECT().DeleteVendor(mock.Anything, id).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return(nil).Once()

	require.NoError(t, uc.Delete(context.Background(), id))
}

func TestVendorCreateAndUpdate(t *testing.T) {
	repo := mocks.NewMockVendorRepository(t)
	cache := mocks.NewMockDashboardCache(t)
	uc := NewVendorUseCase(repo, cache, discardLogger())

	repo.EXPECT().CreateVendor(mock.Anything, mock.AnythingOfType("*domain.Vendor")).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return(nil).Twice()

	created, err := uc.Create(context.Background(), domain.Vendor{Name: "Printers", ServiceType: " Print "})
	require.NoError(t, err)
	assert.Equal(t, "Print", created.ServiceType)

	repo.EXPECT().GetVendor(mock.Anything, created.ID).Return(created, nil)
	repo.EXPECT().UpdateVendor(mock.Anything, created).Return(nil)

	updated, err := uc.Update(context.Background(), created.ID, port.VendorPatch{ServiceType: ptr("SEO")})
	require.NoError(t, err)
	assert.Equal(t, "SEO", updated.ServiceType)
}
