// Command migrate applies the database schema explicitly. The server only
// auto-migrates outside production, so production rollouts run this first.
package main

import (
	"log"

	"murmur/internal/config"
	"murmur/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Schema migration complete")
}
