package configs

import "net/url"

// Postgres holds configuration for connecting to a PostgreSQL database. The
// Addr field is a full connection string accepted by pgxpool.New. RunMigrations
// enables automatic migration execution on startup. MaxConns caps the size of
// the connection pool.
type Postgres struct {
	// Addr is a PostgreSQL connection string. It should include the
	// sslmode parameter if required. When it is empty the service starts
	// against the offline store and every listing is empty.
	Addr url.URL `env:"ADDRESS"`
	// RunMigrations controls whether database migrations are executed on
	// startup. Only honoured by the serve command.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"false"`
	// MaxConns is the upper bound of pooled connections.
	MaxConns int32 `env:"MAX_CONNS" envDefault:"10"`
}

// Configured reports whether a database address was supplied.
func (c Postgres) Configured() bool {
	return c.Addr.String() != ""
}
