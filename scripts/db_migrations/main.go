package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/finance-ledger/internal/config"
	"github.com/carson-networks/finance-ledger/internal/storage/sqlconfig"
)

// Applies the snapshot schema to the database of the configured backend.
// The sqlite backend is migrated too; every other backend uses postgres.
func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	dialect := sqlconfig.DialectPostgres
	databaseURL := env.Postgres.DSN()
	if env.Storage.Backend == server_config.BackendSQLite {
		dialect = sqlconfig.DialectSQLite
		databaseURL = "sqlite://" + env.SQLite.Path
	}

	status, err := sqlconfig.Migrate(dialect, databaseURL)
	if err != nil {
		logrus.WithError(err).WithField("dialect", dialect).Fatal("sqlconfig.Migrate")
		return
	}

	logrus.WithFields(logrus.Fields{
		"dialect":              dialect,
		"preMigrationVersion":  status.PreMigrationVersion,
		"postMigrationVersion": status.PostMigrationVersion,
	}).Info("Migration status")
}
