package main

// Run database migrations:
//   go run ./cmd/migrate            apply pending migrations
//   go run ./cmd/migrate -status    print applied state
//   go run ./cmd/migrate -down      roll back the latest migration

import (
	"context"
	"flag"
	"log"
	"os"

	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/storage/db"
	"portfolio-backend/internal/shared/telemetry"
)

func main() {
	var down, status bool
	flag.BoolVar(&down, "down", false, "Roll back the most recent migration")
	flag.BoolVar(&status, "status", false, "Print migration status and exit")
	flag.Parse()

	cfg := config.Load()
	telemetry.Setup(os.Stderr, cfg.LogLevel, "console")
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	switch {
	case status:
		err = db.MigrationStatus(ctx, sqlDB)
	case down:
		err = db.RollbackMigration(ctx, sqlDB)
	default:
		err = db.RunMigrations(ctx, sqlDB)
	}
	if err != nil {
		log.Printf("migration failed: %v", err)
		os.Exit(1)
	}
}
