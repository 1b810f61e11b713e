package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"genmaint-cost/core/engine"
	"genmaint-cost/core/pricing"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	book := pricing.DefaultBook()
	book.ServiceA.Data["251-400"] = pricing.Components{Labor: 8, Mobilization: 2, Parts: 150}

	eng, err := engine.New(book)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return NewServer(eng, "test")
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestCalculateEndpoint checks a full calculation round trip
func TestCalculateEndpoint(t *testing.T) {
	body := `{
		"services": ["A"],
		"generators": [{"assetId": "02 EG 068", "kw": 300}],
		"serviceFrequencies": {"A": 1}
	}`

	rec := do(t, testServer(t), http.MethodPost, "/api/calculate", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp CalculateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Calculation.Subtotal != "1950.00" {
		t.Errorf("subtotal = %q, want 1950.00", resp.Calculation.Subtotal)
	}
	if len(resp.Calculation.Units) != 1 {
		t.Errorf("units = %d, want 1", len(resp.Calculation.Units))
	}

	svcTotal, ok := resp.Calculation.ServiceBreakdown["A - Comprehensive Inspection"]
	if !ok {
		t.Fatal("service breakdown missing Service A")
	}
	if svcTotal.TotalCost != "1950.00" {
		t.Errorf("service A total = %q, want 1950.00", svcTotal.TotalCost)
	}
}

// TestCalculatePartialFailureResponse checks bad units surface in the
// response without failing the request
func TestCalculatePartialFailureResponse(t *testing.T) {
	body := `{
		"services": ["A"],
		"generators": [
			{"assetId": "good", "kw": 300},
			{"assetId": "bad", "kw": -5}
		]
	}`

	rec := do(t, testServer(t), http.MethodPost, "/api/calculate", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp CalculateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Calculation.Units) != 1 {
		t.Errorf("units = %d, want 1", len(resp.Calculation.Units))
	}
	if len(resp.Calculation.Failures) != 1 {
		t.Errorf("failures = %d, want 1", len(resp.Calculation.Failures))
	}
}

// TestCalculateBadRequests checks input validation statuses
func TestCalculateBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"no services", `{"generators": [{"kw": 300}]}`},
		{"no generators", `{"services": ["A"]}`},
		{"unknown service", `{"services": ["Z"], "generators": [{"kw": 300}]}`},
		{"service D without fluids", `{"services": ["D"], "generators": [{"kw": 300}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, testServer(t), http.MethodPost, "/api/calculate", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body = %s", rec.Code, rec.Body.String())
			}
		})
	}
}

// TestSettingsEndpoint checks the active book is served
func TestSettingsEndpoint(t *testing.T) {
	rec := do(t, testServer(t), http.MethodGet, "/api/settings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var book pricing.Book
	if err := json.Unmarshal(rec.Body.Bytes(), &book); err != nil {
		t.Fatalf("decoding settings: %v", err)
	}
	if book.LaborRate != 180 {
		t.Errorf("laborRate = %v, want 180", book.LaborRate)
	}
	if book.ServiceD.Fuel != 60 {
		t.Errorf("fuelAnalysisCost = %v, want 60", book.ServiceD.Fuel)
	}
}

// TestHealthAndVersion checks the supporting endpoints
func TestHealthAndVersion(t *testing.T) {
	s := testServer(t)

	rec := do(t, s, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d", rec.Code)
	}

	rec = do(t, s, http.MethodGet, "/api/version", "")
	if rec.Code != http.StatusOK {
		t.Errorf("version status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "test") {
		t.Errorf("version body = %q", rec.Body.String())
	}
}

// TestDefaultFrequenciesApplied checks book defaults fill missing
// frequency overrides (Service A defaults to quarterly)
func TestDefaultFrequenciesApplied(t *testing.T) {
	body := `{
		"services": ["A"],
		"generators": [{"assetId": "u1", "kw": 300}]
	}`

	rec := do(t, testServer(t), http.MethodPost, "/api/calculate", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp CalculateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Calculation.Subtotal != "7800.00" {
		t.Errorf("subtotal = %q, want 7800.00 (4 visits)", resp.Calculation.Subtotal)
	}
}
