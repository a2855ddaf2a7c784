package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies all up migrations to the database at dbPath.
func RunMigrations(dbPath string, busyTimeout time.Duration) error {
	db, err := Open(dbPath, busyTimeout)
	if err != nil {
		return err
	}
	// The migrate instance owns db and closes it.
	m, err := newMigrate(db)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer m.Close()
	return up(m)
}

// RunMigrationsWithDB applies migrations through an existing *sql.DB. The
// caller keeps ownership of db.
func RunMigrationsWithDB(db *sql.DB) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}
	return up(m)
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migrations source: %w", err)
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("migrations driver: %w", err)
	}
	return migrate.NewWithInstance("iofs", src, "sqlite3", driver)
}

func up(m *migrate.Migrate) error {
	err := m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
