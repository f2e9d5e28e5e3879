package ports

import "grid-locator-service/internal/domain"

// Contract for resolving a callsign to the country its prefix is allocated to.
type CallsignLookup interface {
	LookupCountry(callsign string) (domain.CountryMatch, error)
}
