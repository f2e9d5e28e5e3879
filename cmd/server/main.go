package main

import (
	"context"
	"database/sql"
	"fmt"
	"grid-locator-service/internal/adapters/repositories"
	"grid-locator-service/internal/api"
	"grid-locator-service/internal/config"
	"grid-locator-service/internal/platform/db"
	"grid-locator-service/internal/services"
	"log"
	"net/http"
	"time"
)

// main is the application composition root.
// It loads the prefix allocations from SQL into memory and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn, dialect, err := openDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx := context.Background()

	// Initialize schema and seed allocations on startup for local runs.
	if err := initAndSeed(ctx, conn, dialect, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	// Allocations are immutable at runtime, so lookups never touch the database.
	table, err := services.LoadPrefixTable(ctx, repositories.NewSQLPrefixRepository(conn))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Prefix table loaded dialect=%s ranges=%d", dialect, table.Len())

	router := api.NewRouter(table)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(cfg config.Config) (*sql.DB, repositories.Dialect, error) {
	if cfg.UsePostgres() {
		conn, err := db.Open(cfg.DatabaseURL)
		return conn, repositories.DialectPostgres, err
	}

	conn, err := db.OpenSQLite(cfg.DBPath)
	return conn, repositories.DialectSQLite, err
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect repositories.Dialect, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(ctx, conn, dialect, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
