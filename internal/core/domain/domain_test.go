package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCampaignStatus(t *testing.T) {
	tests := []struct {
		in   string
		want CampaignStatus
		ok   bool
	}{
		{"active", CampaignActive, true},
		{" ACTIVE ", CampaignActive, true},
		{"Planned", CampaignPlanned, true},
		{"completed", CampaignCompleted, true},
		{"paused", CampaignStatus("paused"), false},
		{"", CampaignStatus(""), false},
	}
	for _, tt := range tests {
		got, ok := ParseCampaignStatus(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestParseInvoiceStatus(t *testing.T) {
	st, ok := ParseInvoiceStatus("Paid")
	assert.True(t, ok)
	assert.Equal(t, InvoicePaid, st)

	_, ok = ParseInvoiceStatus("void")
	assert.False(t, ok)
}

func TestCampaignIsActive(t *testing.T) {
	assert.True(t, Campaign{Status: "Active"}.IsActive())
	assert.False(t, Campaign{Status: CampaignPlanned}.IsActive())
}

func TestDay(t *testing.T) {
	in := time.Date(2026, time.March, 4, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC), Day(in))
}

func TestInvoiceBasePromoted(t *testing.T) {
	ci := CustomerInvoice{Invoice: Invoice{Number: "INV-1"}}
	var e Entry = ci
	assert.Equal(t, "INV-1", e.Base().Number)
}
