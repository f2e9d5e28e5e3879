package domain

// Immutable geographic coordinates in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lat, lon], the order locator conversions are reported in.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lat, c.Lon} }
