package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"grid-locator-service/internal/domain"
	"os"
	"strings"
)

// Dialect selects the SQL flavour for statements that differ between backends.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

func (d Dialect) String() string {
	switch d {
	case DialectSQLite:
		return "sqlite"
	case DialectPostgres:
		return "postgres"
	default:
		return fmt.Sprintf("dialect(%d)", int(d))
	}
}

func (d Dialect) upsertAllocationQuery() (string, error) {
	switch d {
	case DialectSQLite:
		return `
	INSERT OR REPLACE INTO prefix_allocations (
		start_series,
		end_series,
		country
	)
	VALUES (?, ?, ?);
	`, nil
	case DialectPostgres:
		return `
	INSERT INTO prefix_allocations (start_series, end_series, country)
	VALUES ($1, $2, $3)
	ON CONFLICT (start_series) DO UPDATE
	SET end_series = EXCLUDED.end_series,
		country = EXCLUDED.country;
	`, nil
	default:
		return "", fmt.Errorf("unsupported dialect %s", d)
	}
}

// Initialize the database schema. The DDL is portable across dialects.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createAllocationsQuery := `
	CREATE TABLE IF NOT EXISTS prefix_allocations (
		start_series TEXT PRIMARY KEY,
		end_series TEXT NOT NULL,
		country TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_prefix_allocations_end_series
	ON prefix_allocations(end_series);
	`

	statements := []string{
		createAllocationsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type AllocationSeed struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Country string `json:"country"`
}

// Populate the database with prefix allocations from a JSON file.
func SeedFromJSON(ctx context.Context, db *sql.DB, dialect Dialect, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed allocations: read %q: %w", jsonPath, err)
	}

	var data []AllocationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed allocations: parse json: %w", err)
	}

	allocs := make([]domain.PrefixAllocation, 0, len(data))
	for _, item := range data {
		allocs = append(allocs, domain.PrefixAllocation{
			Start:   item.Start,
			End:     item.End,
			Country: item.Country,
		})
	}

	if err := SeedAllocations(ctx, db, dialect, allocs); err != nil {
		return fmt.Errorf("seed allocations from %q: %w", jsonPath, err)
	}
	return nil
}

// Replace the stored allocations with allocs. Rows missing from allocs are
// removed in the same transaction, so stale ranges cannot overlap new ones.
func SeedAllocations(ctx context.Context, db *sql.DB, dialect Dialect, allocs []domain.PrefixAllocation) error {
	if db == nil {
		return errors.New("seed allocations: DB is nil")
	}

	rows := make([]domain.PrefixAllocation, 0, len(allocs))
	for i, a := range allocs {
		start := strings.ToUpper(strings.TrimSpace(a.Start))
		end := strings.ToUpper(strings.TrimSpace(a.End))
		country := strings.TrimSpace(a.Country)

		if start == "" || end == "" {
			return fmt.Errorf("seed allocations: item at index %d: series cannot be empty", i+1)
		}
		if country == "" {
			return fmt.Errorf("seed allocations: item %s at index %d: country cannot be empty", start, i+1)
		}
		rows = append(rows, domain.PrefixAllocation{Start: start, End: end, Country: country})
	}

	query, err := dialect.upsertAllocationQuery()
	if err != nil {
		return fmt.Errorf("seed allocations: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed allocations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM prefix_allocations;`); err != nil {
		return fmt.Errorf("seed allocations: clear prefix_allocations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed allocations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range rows {
		if _, err := stmt.ExecContext(ctx, a.Start, a.End, a.Country); err != nil {
			return fmt.Errorf("seed allocations: insert start_series=%s: %w", a.Start, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed allocations: commit tx: %w", err)
	}

	return nil
}
