// Command migrate manages the database schema.
package main

import (
	"flag"
	"log"

	"go-jobhunt-backend/config"
	"go-jobhunt-backend/pkg/database"
)

func main() {
	action := flag.String("action", "up", "Migration action: up, down, version")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DBUrl == "" {
		log.Fatal("DATABASE_URL is required")
	}

	switch *action {
	case "up":
		log.Println("Running migrations...")
		if err := database.RunMigrations(cfg.DBUrl, cfg.MigrationsPath); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations completed successfully")

	case "down":
		log.Println("Rolling back last migration...")
		if err := database.RollbackMigrations(cfg.DBUrl, cfg.MigrationsPath); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		log.Println("Migration rolled back successfully")

	case "version":
		version, dirty, err := database.MigrationVersion(cfg.DBUrl, cfg.MigrationsPath)
		if err != nil {
			log.Fatalf("Failed to read version: %v", err)
		}
		log.Printf("Current migration version: %d (dirty: %v)", version, dirty)

	default:
		log.Fatalf("Unknown action: %s", *action)
	}
}
