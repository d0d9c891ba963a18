package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestMiddleware_NoCookie tests that an anonymous request is rejected
func TestMiddleware_NoCookie(t *testing.T) {
	store := &mockStore{}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest("GET", "/api/patients", nil)
	rec := httptest.NewRecorder()
	Middleware(store, testCookieName)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
	if called {
		t.Error("Expected next handler not to be called")
	}
}

// TestMiddleware_ValidSession tests principal injection
func TestMiddleware_ValidSession(t *testing.T) {
	store := &mockStore{
		getFunc: func(ctx context.Context, token string) (*Session, error) {
			return &Session{
				Token:     token,
				UserID:    "user-1",
				Username:  "admin",
				Role:      "admin",
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	}

	var gotPrincipal *Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrincipal, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/patients", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "66666666-6666-6666-6666-666666666666"})
	rec := httptest.NewRecorder()
	Middleware(store, testCookieName)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if gotPrincipal == nil {
		t.Fatal("Expected principal in context")
	}
	if gotPrincipal.Username != "admin" || gotPrincipal.Role != "admin" {
		t.Errorf("Unexpected principal: %+v", gotPrincipal)
	}
}

// TestMiddleware_ExpiredSession tests that an expired or unknown token is
// rejected.
func TestMiddleware_ExpiredSession(t *testing.T) {
	store := &mockStore{
		getFunc: func(ctx context.Context, token string) (*Session, error) {
			return nil, ErrNoSession
		},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Expected next handler not to be called")
	})

	req := httptest.NewRequest("GET", "/api/patients", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "77777777-7777-7777-7777-777777777777"})
	rec := httptest.NewRecorder()
	Middleware(store, testCookieName)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

// TestFromContext_Empty tests the miss case
func TestFromContext_Empty(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Error("Expected no principal in empty context")
	}
}
