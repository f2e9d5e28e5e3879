package ports

import (
	"context"
	"grid-locator-service/internal/domain"
)

// Port: a boundary for retrieving callsign prefix allocations from a data source.
type PrefixRepository interface {
	// Retrieve every allocation range, in no particular order.
	ListAllocations(ctx context.Context) ([]domain.PrefixAllocation, error)
}
