package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/clinicdesk/clinic-service/internal/users"
	"github.com/clinicdesk/clinic-service/internal/validation"
)

// LoginMetricsRecorder extends MetricsRecorder with login counting.
type LoginMetricsRecorder interface {
	MetricsRecorder
	RecordLogin(ctx context.Context, role string)
}

// Handler serves the authentication endpoints.
type Handler struct {
	users      users.ServiceInterface
	sessions   StoreInterface
	cookieName string
	metrics    LoginMetricsRecorder
}

// NewHandler creates an auth handler. metrics may be nil.
func NewHandler(userService users.ServiceInterface, sessions StoreInterface, cookieName string, metrics LoginMetricsRecorder) *Handler {
	return &Handler{
		users:      userService,
		sessions:   sessions,
		cookieName: cookieName,
		metrics:    metrics,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login validates credentials and opens a session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	v := validation.NewCollector()
	v.Require("username", req.Username)
	v.Require("password", req.Password)
	if err := v.Err(); err != nil {
		fields, _ := validation.FieldErrors(err)
		respondValidation(w, fields)
		return
	}

	summary, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			if h.metrics != nil {
				h.metrics.RecordAuthFailure(r.Context(), "invalid_credentials")
			}
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("[ERROR] Login failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	sess, err := h.sessions.Create(r.Context(), summary.ID)
	if err != nil {
		log.Printf("[ERROR] Session creation failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if h.metrics != nil {
		h.metrics.RecordLogin(r.Context(), summary.Role)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// Logout invalidates the current session and clears the cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.cookieName)
	if err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(r.Context(), cookie.Value); err != nil && !errors.Is(err, ErrNoSession) {
			log.Printf("[ERROR] Session deletion failed: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to logout")
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Logged out successfully",
	})
}

// CurrentUser returns the summary of the authenticated user.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	pr, ok := FromContext(r.Context())
	if !ok {
		respondUnauthenticated(w)
		return
	}

	user, err := h.users.GetByID(r.Context(), pr.UserID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("[ERROR] User lookup failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user.Summary())
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"message": message,
	})
}

func respondValidation(w http.ResponseWriter, fields map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Invalid request data",
		"errors":  fields,
	})
}
