package database

import (
	"embed"
	"errors"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies all pending migrations before the server starts
// accepting requests. The schema carries the uniqueness constraints the
// domain layer relies on for code/number collision detection.
func RunMigrations() {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		log.Fatalf("❌ migrations source: %v", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, DSN())
	if err != nil {
		log.Fatalf("❌ migrate init: %v", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("❌ migrate up: %v", err)
	}
	log.Println("✅ Migrations applied.")
}
