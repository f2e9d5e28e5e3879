package domain

// PrefixAllocation maps an inclusive range of two-character callsign series
// (e.g. "AP" through "AS") to the country they are allocated to.
type PrefixAllocation struct {
	Start   string
	End     string
	Country string
}

// CountryMatch is the outcome of resolving a callsign against the allocation table.
type CountryMatch struct {
	Callsign string
	Prefix   string
	Country  string
}
