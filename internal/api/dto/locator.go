package dto

type LocatorResponse struct {
	Input       string    `json:"input"`
	Locator     string    `json:"locator"`
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	Coordinates []float64 `json:"coordinates"`
}

type ConvertLocatorsRequest struct {
	Locators []string `json:"locators"`
}

// LocatorResult carries either a conversion or an error for one batch item.
type LocatorResult struct {
	Input       string    `json:"input"`
	Locator     string    `json:"locator,omitempty"`
	Lat         *float64  `json:"lat,omitempty"`
	Lon         *float64  `json:"lon,omitempty"`
	Coordinates []float64 `json:"coordinates,omitempty"`
	Error       string    `json:"error,omitempty"`
}

type ConvertLocatorsResponse struct {
	Results []LocatorResult `json:"results"`
}
