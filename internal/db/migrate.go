package db

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"agency-backoffice/db/migrations"
)

// ErrDirty is returned when a previous migration failed half-way and the
// schema needs manual repair.
var ErrDirty = errors.New("database is in dirty state")

// Migrate applies all up migrations embedded in the migrations package up
// to migrations.Version.
func Migrate(addr string) error {
	mg, closeFn, err := open(addr)
	if err != nil {
		return err
	}
	defer closeFn()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return ErrDirty
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// Rollback reverts every applied migration. It is used by the migrate
// command's --down flag and by integration tests.
func Rollback(addr string) error {
	mg, closeFn, err := open(addr)
	if err != nil {
		return err
	}
	defer closeFn()

	if err = mg.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// SchemaVersion reports the applied migration version and dirty flag. A
// database without migrations reports version 0.
func SchemaVersion(addr string) (uint, bool, error) {
	mg, closeFn, err := open(addr)
	if err != nil {
		return 0, false, err
	}
	defer closeFn()

	version, dirty, err := mg.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func open(addr string) (*migrate.Migrate, func(), error) {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, nil, err
	}

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		_ = driver.Close()
		return nil, nil, err
	}
	return mg, func() { _, _ = mg.Close() }, nil
}
