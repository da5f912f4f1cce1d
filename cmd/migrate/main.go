// Command migrate manages the filing database schema. It reads the DSN
// from the USTVA_DB_* environment by default and reports the resulting
// schema version after every command.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"ustva/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	path := flag.String("path", "db/migrations", "directory containing the migration files")
	dsn := flag.String("dsn", "", "database DSN; overrides the USTVA_DB_* configuration")
	flag.Parse()

	if flag.NArg() != 1 {
		return errors.New("usage: migrate [-path dir] [-dsn url] up|down|version")
	}

	target := *dsn
	if target == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		target = cfg.DB.DSN()
	}

	m, err := migrate.New("file://"+*path, target)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	switch cmd := flag.Arg(0); cmd {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration up failed: %w", err)
		}
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration down failed: %w", err)
		}
	case "version":
		// reported below for every command
	default:
		return fmt.Errorf("unknown command %q; usage: migrate [-path dir] [-dsn url] up|down|version", cmd)
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Println("schema is empty (no migrations applied)")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	log.Printf("schema at version %d (dirty=%v)", version, dirty)
	return nil
}
