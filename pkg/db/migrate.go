// pkg/db/migrate.go
package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // migration target
	_ "github.com/golang-migrate/migrate/v4/source/file"       // migration source
)

// RunMigrations applies all pending schema migrations from the given path.
// The initial migration also seeds the demo state: the singleton wallet and
// the fixed driver roster.
func RunMigrations(migrationsPath string, cfg Config) error {
	m, err := migrate.New("file://"+migrationsPath, cfg.URL())
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
