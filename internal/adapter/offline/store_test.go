package offline

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
)

func TestReadsAreEmpty(t *testing.T) {
	s := New()
	ctx := context.Background()

	campaigns, err := s.ListCampaigns(ctx, port.CampaignFilter{})
	require.NoError(t, err)
	assert.NotNil(t, campaigns)
	assert.Empty(t, campaigns)

	customers, err := s.ListCustomers(ctx, port.PartyFilter{Query: "x"})
	require.NoError(t, err)
	assert.Empty(t, customers)

	invoices, err := s.ListVendorInvoices(ctx, port.InvoiceFilter{Unassigned: true})
	require.NoError(t, err)
	assert.Empty(t, invoices)

	amounts, err := s.CampaignAmounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, amounts)

	n, err := s.CountVendorInvoices(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = s.GetCampaign(ctx, uuid.New())
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestWritesAreUnavailable(t *testing.T) {
	s := New()
	ctx := context.Background()
	id := uuid.New()

	errs := []error{
		s.CreateCampaign(ctx, &domain.Campaign{}),
		s.DeleteCampaign(ctx, id),
		s.UpdateCustomer(ctx, &domain.Customer{}),
		s.DeleteVendor(ctx, id),
		s.CreateCustomerInvoice(ctx, &domain.CustomerInvoice{}),
		s.DeleteVendorInvoice(ctx, id),
	}
	_, err := s.SetVendorInvoiceCampaign(ctx, id, nil)
	errs = append(errs, err)

	for _, err := range errs {
		assert.ErrorIs(t, err, port.ErrStoreUnavailable)
	}
}
