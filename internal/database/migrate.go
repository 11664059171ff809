package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // pgx5:// database URLs
	_ "github.com/golang-migrate/migrate/v4/source/file"     // file:// migration sources
)

// RunMigrations applies every pending migration from migrationsDir against the
// database at databaseURL. The URL is the same postgres:// DSN the application
// connects with; the scheme is rewritten for the migrate pgx5 driver. A
// database that is already up to date is not an error.
func RunMigrations(migrationsDir, databaseURL string) error {
	if rest, ok := strings.CutPrefix(databaseURL, "postgres://"); ok {
		databaseURL = "pgx5://" + rest
	}
	m, err := migrate.New("file://"+migrationsDir, databaseURL)
	if err != nil {
		return fmt.Errorf("could not open migration source: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	return nil
}
