package handlers

import (
	"errors"
	"grid-locator-service/internal/api/dto"
	"grid-locator-service/internal/ports"
	"grid-locator-service/internal/services"
	"log"
	"net/http"
)

// CallsignHandler resolves callsigns to the country their prefix is allocated to.
type CallsignHandler struct {
	Lookup ports.CallsignLookup
}

func (h *CallsignHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	callsign := r.URL.Query().Get("callsign")

	match, err := h.Lookup.LookupCountry(callsign)
	switch {
	case errors.Is(err, services.ErrInvalidCallsign):
		writeError(w, r, http.StatusBadRequest, services.ErrInvalidCallsign.Error())
		return
	case errors.Is(err, services.ErrUnknownPrefix):
		writeError(w, r, http.StatusNotFound, services.ErrUnknownPrefix.Error())
		return
	case err != nil:
		log.Printf("lookup callsign failed: callsign=%q err=%v", callsign, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CallsignResponse{
		Callsign: match.Callsign,
		Prefix:   match.Prefix,
		Country:  match.Country,
	})
}
