package api

import (
	"encoding/json"
	"grid-locator-service/internal/api/dto"
	"grid-locator-service/internal/domain"
	"grid-locator-service/internal/services"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	table, err := services.NewPrefixTable([]domain.PrefixAllocation{
		{Start: "AP", End: "AS", Country: "Pakistan"},
		{Start: "K0", End: "KZ", Country: "United States"},
	})
	if err != nil {
		t.Fatalf("NewPrefixTable: %v", err)
	}
	return NewRouter(table)
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body["error"]
}

func TestHealth(t *testing.T) {
	rec := serve(t, newTestRouter(t), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID response header")
	}
}

func TestRequestIDIsPropagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()

	newTestRouter(t).ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want abc-123", got)
	}
}

func TestGetLocator(t *testing.T) {
	rec := serve(t, newTestRouter(t), http.MethodGet, "/locators?code=en80tu", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var got dto.LocatorResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := dto.LocatorResponse{
		Input:       "en80tu",
		Locator:     "EN80TU",
		Lat:         41.6666,
		Lon:         -82.4166,
		Coordinates: []float64{41.6666, -82.4166},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestGetLocatorErrors(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{name: "missing code", method: http.MethodGet, target: "/locators", wantStatus: http.StatusBadRequest},
		{name: "invalid code", method: http.MethodGet, target: "/locators?code=109TUX", wantStatus: http.StatusBadRequest},
		{name: "too short", method: http.MethodGet, target: "/locators?code=EN", wantStatus: http.StatusBadRequest},
		{name: "leading space not trimmed", method: http.MethodGet, target: "/locators?code=%20EN80T", wantStatus: http.StatusBadRequest},
		{name: "trailing space padded past square", method: http.MethodGet, target: "/locators?code=EN80%20", wantStatus: http.StatusBadRequest},
		{name: "wrong method", method: http.MethodPost, target: "/locators?code=EN80TU", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, newTestRouter(t), tt.method, tt.target, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if msg := decodeError(t, rec); msg == "" {
				t.Error("expected error message")
			}
		})
	}
}

func TestConvertLocators(t *testing.T) {
	body := `{"locators": ["EN80TU", "109TUX", "EN80TUXYZ"]}`
	rec := serve(t, newTestRouter(t), http.MethodPost, "/locators/convert", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var got dto.ConvertLocatorsResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got.Results))
	}

	first := got.Results[0]
	if first.Error != "" || first.Lat == nil || first.Lon == nil {
		t.Fatalf("result 0 = %+v, want coordinates", first)
	}
	if *first.Lat != 41.6666 || *first.Lon != -82.4166 {
		t.Errorf("result 0 = (%v, %v), want (41.6666, -82.4166)", *first.Lat, *first.Lon)
	}

	if got.Results[1].Error == "" || got.Results[1].Lat != nil {
		t.Errorf("result 1 = %+v, want error only", got.Results[1])
	}

	third := got.Results[2]
	if third.Locator != "EN80TU" || third.Input != "EN80TUXYZ" {
		t.Errorf("result 2 = %+v, want EN80TU from EN80TUXYZ", third)
	}
}

func TestConvertLocatorsRejectsBadBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `nope`},
		{name: "unknown field", body: `{"codes": ["EN80"]}`},
		{name: "two objects", body: `{"locators": ["EN80"]}{"locators": ["EN80"]}`},
		{name: "empty batch", body: `{"locators": []}`},
		{name: "oversized batch", body: `{"locators": [` + strings.Repeat(`"EN80",`, 100) + `"EN80"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, newTestRouter(t), http.MethodPost, "/locators/convert", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetCallsign(t *testing.T) {
	rec := serve(t, newTestRouter(t), http.MethodGet, "/callsigns?callsign=k1abc", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var got dto.CallsignResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := dto.CallsignResponse{Callsign: "K1ABC", Prefix: "K1", Country: "United States"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestGetCallsignErrors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "missing callsign", target: "/callsigns", wantStatus: http.StatusBadRequest},
		{name: "malformed", target: "/callsigns?callsign=-1", wantStatus: http.StatusBadRequest},
		{name: "unallocated", target: "/callsigns?callsign=ZZ1ZZ", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, newTestRouter(t), http.MethodGet, tt.target, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
