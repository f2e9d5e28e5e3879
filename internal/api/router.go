package api

import (
	"grid-locator-service/internal/api/handlers"
	"grid-locator-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(lookup ports.CallsignLookup) http.Handler {
	mux := http.NewServeMux()

	locatorHandler := &handlers.LocatorHandler{}
	callsignHandler := &handlers.CallsignHandler{Lookup: lookup}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/locators", locatorHandler.Get)
	mux.HandleFunc("/locators/convert", locatorHandler.Convert)
	mux.HandleFunc("/callsigns", callsignHandler.Get)

	return requestIDMiddleware(loggingMiddleware(mux))
}
