package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"grid-locator-service/internal/api/dto"
	"grid-locator-service/internal/domain"
	"grid-locator-service/internal/services"
	"io"
	"log"
	"net/http"
)

const defaultMaxBatch = 100

// LocatorHandler exposes Maidenhead locator conversion endpoints.
type LocatorHandler struct {
	// Upper bound on locators per batch request; zero means defaultMaxBatch.
	MaxBatch int
}

// Get converts the locator in the "code" query parameter.
func (h *LocatorHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, r, http.StatusBadRequest, "code is required")
		return
	}

	loc, err := domain.ParseLocator(code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLocator) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("parse locator failed: code=%q err=%v", code, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	c := services.LocatorCorner(loc)
	writeJSON(w, r, http.StatusOK, dto.LocatorResponse{
		Input:       code,
		Locator:     loc.String(),
		Lat:         c.Lat,
		Lon:         c.Lon,
		Coordinates: c.CoordsToList(),
	})
}

// Convert converts a batch of locators. Invalid items are reported per item
// and do not fail the request.
func (h *LocatorHandler) Convert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ConvertLocatorsRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	maxBatch := h.MaxBatch
	if maxBatch <= 0 {
		maxBatch = defaultMaxBatch
	}
	if len(req.Locators) < 1 || len(req.Locators) > maxBatch {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("locators must contain between 1 and %d items", maxBatch))
		return
	}

	conversions := services.ConvertLocators(req.Locators)

	res := dto.ConvertLocatorsResponse{Results: make([]dto.LocatorResult, 0, len(conversions))}
	for _, c := range conversions {
		if c.Err != nil {
			res.Results = append(res.Results, dto.LocatorResult{Input: c.Input, Error: c.Err.Error()})
			continue
		}

		lat, lon := c.Coordinates.Lat, c.Coordinates.Lon
		res.Results = append(res.Results, dto.LocatorResult{
			Input:       c.Input,
			Locator:     c.Locator,
			Lat:         &lat,
			Lon:         &lon,
			Coordinates: c.Coordinates.CoordsToList(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
