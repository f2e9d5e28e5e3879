package services

import (
	"context"
	"errors"
	"fmt"
	"grid-locator-service/internal/domain"
	"grid-locator-service/internal/ports"
	"sort"
	"strings"
)

const prefixLength = 2

var (
	ErrInvalidCallsign = errors.New("callsign must have at least two characters from [A-Z0-9]")
	ErrUnknownPrefix   = errors.New("callsign prefix is not allocated")
)

// PrefixTable resolves callsigns to countries using sorted, non-overlapping
// ranges of two-character ITU series. It is read-only after construction and
// safe for concurrent use.
type PrefixTable struct {
	ranges []domain.PrefixAllocation
}

// NewPrefixTable validates, normalizes and sorts allocations.
// Overlapping ranges are rejected so every series maps to at most one country.
func NewPrefixTable(allocs []domain.PrefixAllocation) (*PrefixTable, error) {
	ranges := make([]domain.PrefixAllocation, 0, len(allocs))
	for i, a := range allocs {
		start := strings.ToUpper(strings.TrimSpace(a.Start))
		end := strings.ToUpper(strings.TrimSpace(a.End))
		country := strings.TrimSpace(a.Country)

		if !isSeries(start) || !isSeries(end) {
			return nil, fmt.Errorf("new prefix table: allocation #%d: series %q-%q must be two characters from [A-Z0-9]", i+1, a.Start, a.End)
		}
		if start > end {
			return nil, fmt.Errorf("new prefix table: allocation #%d: start %q after end %q", i+1, start, end)
		}
		if country == "" {
			return nil, fmt.Errorf("new prefix table: allocation #%d: country must not be empty", i+1)
		}

		ranges = append(ranges, domain.PrefixAllocation{Start: start, End: end, Country: country})
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })

	for i := 1; i < len(ranges); i++ {
		prev, cur := ranges[i-1], ranges[i]
		if cur.Start <= prev.End {
			return nil, fmt.Errorf(
				"new prefix table: %s-%s (%s) overlaps %s-%s (%s)",
				cur.Start, cur.End, cur.Country, prev.Start, prev.End, prev.Country,
			)
		}
	}

	return &PrefixTable{ranges: ranges}, nil
}

// LoadPrefixTable reads every allocation from repo and builds a table from them.
func LoadPrefixTable(ctx context.Context, repo ports.PrefixRepository) (*PrefixTable, error) {
	allocs, err := repo.ListAllocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load prefix table: list allocations: %w", err)
	}

	table, err := NewPrefixTable(allocs)
	if err != nil {
		return nil, fmt.Errorf("load prefix table: %w", err)
	}
	return table, nil
}

// Len returns the number of allocation ranges in the table.
func (t *PrefixTable) Len() int { return len(t.ranges) }

// LookupCountry resolves the country a callsign's series is allocated to.
// Unallocated series return ErrUnknownPrefix rather than a guess.
func (t *PrefixTable) LookupCountry(callsign string) (domain.CountryMatch, error) {
	cs := strings.ToUpper(strings.TrimSpace(callsign))
	if len(cs) < prefixLength || !isSeries(cs[:prefixLength]) {
		return domain.CountryMatch{}, fmt.Errorf("lookup country %q: %w", callsign, ErrInvalidCallsign)
	}
	series := cs[:prefixLength]

	// First range whose End is not before the series; it matches only if it also starts at or before it.
	i := sort.Search(len(t.ranges), func(i int) bool { return t.ranges[i].End >= series })
	if i == len(t.ranges) || t.ranges[i].Start > series {
		return domain.CountryMatch{}, fmt.Errorf("lookup country %q: series %s: %w", callsign, series, ErrUnknownPrefix)
	}

	return domain.CountryMatch{
		Callsign: cs,
		Prefix:   series,
		Country:  t.ranges[i].Country,
	}, nil
}

func isSeries(s string) bool {
	if len(s) != prefixLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('A' <= c && c <= 'Z') && !('0' <= c && c <= '9') {
			return false
		}
	}
	return true
}
