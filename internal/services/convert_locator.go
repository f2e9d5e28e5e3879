package services

import (
	"grid-locator-service/internal/domain"
	"math"
)

// Cell sizes in degrees for each locator pair.
const (
	fieldLonDegrees     = 20.0
	fieldLatDegrees     = 10.0
	squareLonDegrees    = 2.0
	squareLatDegrees    = 1.0
	subsquareLonDegrees = 5.0 / 60.0
	// Same 5' step as longitude. Row R9 subsquares M-X therefore land above 90.
	subsquareLatDegrees = 5.0 / 60.0
)

// Results are truncated (not rounded) to this many decimal places.
const coordinateScale = 10000.0

// ConvertLocator translates a Maidenhead locator into the south-west corner of
// the cell it encodes.
//
// The input is normalized first (see domain.NormalizeLocator), so callers may
// pass raw user text. No centering offset is applied. Both values are truncated
// toward zero to 4 decimal places.
func ConvertLocator(input string) (domain.Coordinates, error) {
	loc, err := domain.ParseLocator(input)
	if err != nil {
		return domain.Coordinates{}, err
	}

	return LocatorCorner(loc), nil
}

// IsValidLocator reports whether input normalizes to a canonical locator.
func IsValidLocator(input string) bool {
	_, err := domain.NormalizeLocator(input)
	return err == nil
}

// LocatorCorner returns the truncated south-west corner of an already parsed locator.
func LocatorCorner(loc domain.Locator) domain.Coordinates {
	lon := fieldLonDegrees*float64(loc.FieldLon()) +
		squareLonDegrees*float64(loc.SquareLon()) +
		subsquareLonDegrees*float64(loc.SubsquareLon()) -
		180.0

	lat := fieldLatDegrees*float64(loc.FieldLat()) +
		squareLatDegrees*float64(loc.SquareLat()) +
		subsquareLatDegrees*float64(loc.SubsquareLat()) -
		90.0

	return domain.Coordinates{
		Lat: truncateCoordinate(lat),
		Lon: truncateCoordinate(lon),
	}
}

func truncateCoordinate(v float64) float64 {
	return math.Trunc(v*coordinateScale) / coordinateScale
}

// LocatorConversion is the outcome of converting one input in a batch.
// Exactly one of Err or (Locator, Coordinates) is meaningful.
type LocatorConversion struct {
	Input       string
	Locator     string
	Coordinates domain.Coordinates
	Err         error
}

// ConvertLocators converts each input independently, preserving order.
// A failing input does not stop the remaining conversions.
func ConvertLocators(inputs []string) []LocatorConversion {
	out := make([]LocatorConversion, 0, len(inputs))
	for _, in := range inputs {
		loc, err := domain.ParseLocator(in)
		if err != nil {
			out = append(out, LocatorConversion{Input: in, Err: err})
			continue
		}

		out = append(out, LocatorConversion{
			Input:       in,
			Locator:     loc.String(),
			Coordinates: LocatorCorner(loc),
		})
	}
	return out
}
