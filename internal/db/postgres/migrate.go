package postgres

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrations embed.FS

const latestVersion = 3

func migrateDatabase(pool *pgxpool.Pool) error {
	d, err := iofs.New(migrations, "migrations")
	if err != nil {
		log.Error().Err(err).Msg("could not load migration files")
		return fmt.Errorf("postgres: migrateDatabase: could not load migration files: %w", err)
	}

	// closing this handle hands the connections back to the pool without closing it
	sqlDB := stdlib.OpenDBFromPool(pool)

	driver, err := pgxmigrate.WithInstance(sqlDB, &pgxmigrate.Config{})
	if err != nil {
		_ = sqlDB.Close()
		log.Error().Err(err).Msg("could not load instance driver")
		return fmt.Errorf("postgres: migrateDatabase: could not load instance driver: %w", err)
	}
	defer driver.Close()

	m, err := migrate.NewWithInstance("iofs", d, "pgx5", driver)
	if err != nil {
		log.Error().Err(err).Msg("could not create migration")
		return fmt.Errorf("postgres: migrateDatabase: could not create migration instance: %w", err)
	}
	m.Log = &migrationLogger{}

	if err = m.Migrate(latestVersion); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Int("latest_version", latestVersion).Msg("database is at latest version")
			return nil
		}
		log.Error().Err(err).Int("latest_version", latestVersion).Msg("could not migrate to latest database version")
		return fmt.Errorf("postgres: migrateDatabase: could not migrate to current database version: %w", err)
	}

	return nil
}

var _ migrate.Logger = (*migrationLogger)(nil)

type migrationLogger struct{}

func (m *migrationLogger) Printf(format string, v ...interface{}) {
	log.Debug().Msgf(strings.TrimSpace(format), v...)
}

func (m *migrationLogger) Verbose() bool {
	return false
}
