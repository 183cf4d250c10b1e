package redisadapter

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agency-backoffice/internal/config/configs"
	"agency-backoffice/internal/core/report"
)

func TestNop(t *testing.T) {
	ctx := context.Background()
	var c Nop

	stored, err := c.Set(ctx, 0, &report.Dashboard{})
	require.NoError(t, err)
	assert.False(t, stored)
	got, gen, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, gen)
	assert.NoError(t, c.Invalidate(ctx))
}

func TestDashboardCache(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	got, gen, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "empty cache is a miss")

	generated := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	d := report.BuildDashboard(nil, nil, nil, generated)
	d.Totals.TotalRevenue = decimal.RequireFromString("1234.50")
	stored, err := c.Set(ctx, gen, &d)
	require.NoError(t, err)
	assert.True(t, stored)

	got, sameGen, err := c.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, gen, sameGen)
	assert.True(t, got.Totals.TotalRevenue.Equal(d.Totals.TotalRevenue))
	assert.True(t, got.GeneratedAt.Equal(generated))
	assert.Len(t, got.Monthly, report.TrailingMonths)

	require.NoError(t, c.Invalidate(ctx))
	got, nextGen, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, gen+1, nextGen)
}

func TestDashboardCacheRejectsStaleSet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_, gen, err := c.Get(ctx)
	require.NoError(t, err)

	// a mutation lands while the summary is being computed
	require.NoError(t, c.Invalidate(ctx))

	d := report.BuildDashboard(nil, nil, nil, time.Now())
	stored, err := c.Set(ctx, gen, &d)
	require.NoError(t, err)
	assert.False(t, stored)

	got, _, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// newTestCache connects to REDIS_TEST_ADDRESS and skips the test when it is
// unset. Both keys are cleared first.
func newTestCache(t *testing.T) *DashboardCache {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDRESS")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDRESS not set")
	}
	ctx := context.Background()

	c, err := NewDashboardCache(ctx, configs.Redis{Addr: addr, DashboardTTL: time.Minute})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	require.NoError(t, c.rdb.Del(ctx, DashboardKey, GenerationKey).Err())
	return c
}
