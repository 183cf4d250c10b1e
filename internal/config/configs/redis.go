package configs

import "time"

// Redis configures the dashboard cache. The cache is disabled when Addr is
// empty.
type Redis struct {
	Addr     string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// DashboardTTL bounds how long a cached summary may be served if no
	// mutation invalidates it first.
	DashboardTTL time.Duration `env:"DASHBOARD_TTL" envDefault:"1m"`
}

// Enabled reports whether a Redis address was supplied.
func (c Redis) Enabled() bool {
	return c.Addr != ""
}
