package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"

	"pocketledger/internal/repositories/sqlconnect"
	"pocketledger/pkg/utils"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// Files lists the embedded migration file names in version order.
func Files() ([]string, error) {
	return fs.Glob(migrationsFS, "sql/*.sql")
}

// Up creates every table that does not exist yet.
func Up(ctx context.Context, dsn string) error {
	return run(ctx, dsn, "up", (*migrate.Migrate).Up)
}

// Down drops all tables in reverse order.
func Down(ctx context.Context, dsn string) error {
	return run(ctx, dsn, "down", (*migrate.Migrate).Down)
}

var newMigrate = migrate.NewWithInstance

// open hands source and driver to a migrator, closing both if that fails.
func open(src source.Driver, driver database.Driver) (*migrate.Migrate, error) {
	m, err := newMigrate("iofs", src, "mysql", driver)
	if err != nil {
		src.Close()
		driver.Close()
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	return m, nil
}

func run(ctx context.Context, dsn, direction string, step func(*migrate.Migrate) error) error {
	// migrate closes the pool it is given, so it gets its own.
	db, err := sqlconnect.ConnectDb(ctx, dsn)
	if err != nil {
		return err
	}

	driver, err := migratemysql.WithInstance(db, &migratemysql.Config{})
	if err != nil {
		db.Close()
		return fmt.Errorf("create mysql migration driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		driver.Close()
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := open(src, driver)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := step(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			utils.Logger.WithField("direction", direction).Info("schema already up to date")
			return nil
		}
		return fmt.Errorf("run migrations %s: %w", direction, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	}
	utils.Logger.WithFields(logrus.Fields{
		"direction": direction,
		"version":   version,
		"dirty":     dirty,
	}).Info("schema migrated")
	return nil
}
