package http

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/lib/pq"

	"github.com/clinicdesk/clinic-service/internal/config"
)

// newTestHandler builds the full router against a lazily opened database
// handle. Routes that never reach the database are testable without one.
func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	db, err := sql.Open("postgres", "host=localhost dbname=unused sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to open database handle: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := config.Default()
	return CORSMiddleware(cfg.Server.AllowedOrigins)(SetupRouter(db, cfg, nil, nil))
}

// TestRouter_HealthIsPublic tests the unauthenticated health endpoint
func TestRouter_HealthIsPublic(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
}

// TestRouter_ProtectedRoutesRequireSession tests that every API route
// except login rejects anonymous requests.
func TestRouter_ProtectedRoutesRequireSession(t *testing.T) {
	handler := newTestHandler(t)

	routes := []struct {
		method string
		path   string
	}{
		{"GET", "/api/dashboard/stats"},
		{"GET", "/api/patients"},
		{"POST", "/api/patients"},
		{"GET", "/api/patients/some-id"},
		{"PUT", "/api/patients/some-id"},
		{"DELETE", "/api/patients/some-id"},
		{"GET", "/api/patients/some-id/medical-records"},
		{"POST", "/api/medical-records"},
		{"GET", "/api/appointments"},
		{"POST", "/api/appointments"},
		{"GET", "/api/appointments/some-id"},
		{"PUT", "/api/appointments/some-id"},
		{"DELETE", "/api/appointments/some-id"},
		{"POST", "/api/auth/logout"},
		{"GET", "/api/auth/user"},
	}

	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected status 401, got %d", route.method, route.path, rec.Code)
		}
	}
}

// TestCORSMiddleware_Preflight tests the OPTIONS short circuit and the
// origin allow list.
func TestCORSMiddleware_Preflight(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("OPTIONS", "/api/patients", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Expected origin echoed back, got '%s'", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Expected credentials allowed, got '%s'", got)
	}
}

// TestCORSMiddleware_UnknownOrigin tests that unlisted origins are not
// echoed back.
func TestCORSMiddleware_UnknownOrigin(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("OPTIONS", "/api/patients", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Expected no allow-origin header for unknown origin, got '%s'", got)
	}
}
