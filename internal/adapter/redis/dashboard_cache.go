// Package redisadapter caches the dashboard summary in Redis.
package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"agency-backoffice/internal/config/configs"
	"agency-backoffice/internal/core/port"
	"agency-backoffice/internal/core/report"
)

// Both keys share a hash tag so the script below also runs on a cluster.
const (
	// DashboardKey is the Redis key holding the cached summary.
	DashboardKey = "agency-backoffice:{dashboard}"
	// GenerationKey counts invalidations. It never expires.
	GenerationKey = "agency-backoffice:{dashboard}:generation"
)

// setIfGeneration writes the summary only while the generation still
// matches the one the caller read before loading its data.
var setIfGeneration = goredis.NewScript(`
local current = redis.call('GET', KEYS[1]) or '0'
if current ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// DashboardCache implements port.DashboardCache on top of a Redis string
// with a TTL and a generation counter.
type DashboardCache struct {
	rdb goredis.UniversalClient
	ttl time.Duration
}

var _ port.DashboardCache = (*DashboardCache)(nil)

// NewDashboardCache connects to Redis and verifies the connection with a
// 5 second ping. The caller must Close the cache.
func NewDashboardCache(ctx context.Context, cfg configs.Redis) (*DashboardCache, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctxPing).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewDashboardCacheWithClient(rdb, cfg.DashboardTTL), nil
}

// NewDashboardCacheWithClient wraps an existing client. A non-positive ttl
// stores entries without expiry.
func NewDashboardCacheWithClient(rdb goredis.UniversalClient, ttl time.Duration) *DashboardCache {
	if ttl < 0 {
		ttl = 0
	}
	return &DashboardCache{rdb: rdb, ttl: ttl}
}

// Get reads the generation and the summary in one MULTI block. A missing
// summary is a miss; a missing generation is generation 0.
func (c *DashboardCache) Get(ctx context.Context) (*report.Dashboard, int64, error) {
	var genCmd, dashCmd *goredis.StringCmd
	_, err := c.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		genCmd = p.Get(ctx, GenerationKey)
		dashCmd = p.Get(ctx, DashboardKey)
		return nil
	})
	if err != nil && !errors.Is(err, goredis.Nil) {
		return nil, 0, fmt.Errorf("redis get: %w", err)
	}

	gen, err := genCmd.Int64()
	switch {
	case errors.Is(err, goredis.Nil):
		gen = 0
	case err != nil:
		return nil, 0, fmt.Errorf("redis get generation: %w", err)
	}

	raw, err := dashCmd.Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, gen, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("redis get: %w", err)
	}
	var d report.Dashboard
	if err = json.Unmarshal(raw, &d); err != nil {
		// a corrupt entry is treated as a miss and overwritten by the next Set
		return nil, gen, nil
	}
	return &d, gen, nil
}

func (c *DashboardCache) Set(ctx context.Context, gen int64, d *report.Dashboard) (bool, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return false, err
	}
	stored, err := setIfGeneration.Run(ctx, c.rdb,
		[]string{GenerationKey, DashboardKey},
		strconv.FormatInt(gen, 10), string(raw), c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("redis set: %w", err)
	}
	return stored == 1, nil
}

// Invalidate bumps the generation and drops the summary atomically.
func (c *DashboardCache) Invalidate(ctx context.Context) error {
	_, err := c.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Incr(ctx, GenerationKey)
		p.Del(ctx, DashboardKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (c *DashboardCache) Close() error {
	return c.rdb.Close()
}

// Nop is a DashboardCache that never stores anything. It is used when
// Redis is not configured.
type Nop struct{}

var _ port.DashboardCache = Nop{}

func (Nop) Get(context.Context) (*report.Dashboard, int64, error) { return nil, 0, nil }
func (Nop) Set(context.Context, int64, *report.Dashboard) (bool, error) { return false, nil }
func (Nop) Invalidate(context.Context) error { return nil }
