package sqlconfig

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationFiles embed.FS

// MigrationStatus reports the schema version before and after Migrate.
type MigrationStatus struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// Migrate applies every pending migration of the dialect to the database
// at databaseURL (postgres://... or sqlite://path).
func Migrate(dialectName, databaseURL string) (MigrationStatus, error) {
	var status MigrationStatus

	src, err := iofs.New(migrationFiles, "migrations/"+dialectName)
	if err != nil {
		return status, fmt.Errorf("sqlconfig: migration source %s: %w", dialectName, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return status, fmt.Errorf("sqlconfig: migrate.NewWithSourceInstance: %w", err)
	}
	defer m.Close()

	preMigrationVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return status, fmt.Errorf("sqlconfig: version before migration: %w", err)
	}
	status.PreMigrationVersion = preMigrationVersion

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return status, fmt.Errorf("sqlconfig: migrate up: %w", err)
	}

	postMigrationVersion, _, err := m.Version()
	if err != nil {
		return status, fmt.Errorf("sqlconfig: version after migration: %w", err)
	}
	status.PostMigrationVersion = postMigrationVersion

	return status, nil
}
