package main

import (
	"context"
	"grid-locator-service/internal/adapters/repositories"
	"grid-locator-service/internal/config"
	"grid-locator-service/internal/platform/db"
	"log"
)

// dbtool prepares a Postgres database for the server: schema plus prefix allocations.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if !cfg.UsePostgres() {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Printf("Seeding prefix allocations from %s...", cfg.SeedPath)
	if err := repositories.SeedFromJSON(context.Background(), conn, repositories.DialectPostgres, cfg.SeedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
