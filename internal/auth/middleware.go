package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type ctxKey string

const principalKey ctxKey = "auth_principal"

var tracer = otel.Tracer("github.com/clinicdesk/clinic-service/auth")

// Principal is the authenticated identity injected into request context.
type Principal struct {
	UserID   string
	Username string
	Role     string
}

// MetricsRecorder interface for recording auth metrics
type MetricsRecorder interface {
	RecordAuthFailure(ctx context.Context, reason string)
}

// Middleware resolves the session cookie, injects the Principal into the
// request context and rejects unauthenticated requests with 401.
func Middleware(store StoreInterface, cookieName string) func(http.Handler) http.Handler {
	return MiddlewareWithMetrics(store, cookieName, nil)
}

// MiddlewareWithMetrics resolves the session cookie with metrics recording
func MiddlewareWithMetrics(store StoreInterface, cookieName string, metrics MetricsRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ctx, span := tracer.Start(ctx, "auth.Middleware",
				trace.WithSpanKind(trace.SpanKindInternal),
			)
			defer span.End()

			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				span.SetStatus(codes.Error, "missing session cookie")
				span.SetAttributes(attribute.String("error.type", "missing_session_cookie"))
				if metrics != nil {
					metrics.RecordAuthFailure(ctx, "missing_session_cookie")
				}
				respondUnauthenticated(w)
				return
			}

			sess, err := store.Get(ctx, cookie.Value)
			if err != nil {
				if !errors.Is(err, ErrNoSession) {
					log.Printf("[ERROR] Session lookup failed: %v", err)
				}
				span.SetStatus(codes.Error, "session invalid or expired")
				span.SetAttributes(attribute.String("error.type", "invalid_session"))
				if metrics != nil {
					metrics.RecordAuthFailure(ctx, "invalid_session")
				}
				respondUnauthenticated(w)
				return
			}

			span.SetAttributes(
				attribute.String("user.id", sess.UserID),
				attribute.String("user.name", sess.Username),
				attribute.String("user.role", sess.Role),
			)
			span.SetStatus(codes.Ok, "authentication successful")

			pr := &Principal{
				UserID:   sess.UserID,
				Username: sess.Username,
				Role:     sess.Role,
			}
			ctx = context.WithValue(ctx, principalKey, pr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext extracts Principal from context.
func FromContext(ctx context.Context) (*Principal, bool) {
	pr, ok := ctx.Value(principalKey).(*Principal)
	return pr, ok
}

func respondUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication required",
	})
}
