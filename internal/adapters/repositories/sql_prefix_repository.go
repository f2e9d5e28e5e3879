package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"grid-locator-service/internal/domain"
	"grid-locator-service/internal/platform/obs"
)

// SQL-backed implementation of the PrefixRepository port.
// The query is portable, so one implementation serves SQLite and Postgres.
type SQLPrefixRepository struct{ DB *sql.DB }

func NewSQLPrefixRepository(db *sql.DB) *SQLPrefixRepository {
	return &SQLPrefixRepository{DB: db}
}

// Return all prefix allocations stored in the database.
func (s *SQLPrefixRepository) ListAllocations(ctx context.Context) (_ []domain.PrefixAllocation, err error) {
	defer obs.Time(ctx, "prefix.repository.ListAllocations")(&err)

	if s.DB == nil {
		return nil, errors.New("sql prefix repository: DB is nil")
	}

	query := `
	SELECT
		start_series,
		end_series,
		country
	FROM prefix_allocations
	ORDER BY start_series;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list allocations: query prefix_allocations table: %w", err)
	}
	defer rows.Close()

	allocs := make([]domain.PrefixAllocation, 0, 256)
	for rows.Next() {
		var a domain.PrefixAllocation
		if err := rows.Scan(&a.Start, &a.End, &a.Country); err != nil {
			return nil, fmt.Errorf("list allocations: scan row: %w", err)
		}
		allocs = append(allocs, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list allocations: row iteration: %w", err)
	}

	return allocs, nil
}
