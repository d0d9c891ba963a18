package appointment

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clinicdesk/clinic-service/internal/pagination"
	"github.com/clinicdesk/clinic-service/internal/validation"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// List serves GET /api/appointments with date, status and patient filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := ListFilter{
		Date:      query.Get("date"),
		PatientID: query.Get("patientId"),
	}
	// The front end sends "all" for the unfiltered status option.
	if status := query.Get("status"); status != "" && status != "all" {
		filter.Status = status
	}

	params := pagination.ParseParams(r)

	result, err := h.service.List(r.Context(), filter, params)
	if err != nil {
		log.Printf("[ERROR] Appointment listing failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Get serves GET /api/appointments/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	a, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			respondError(w, http.StatusNotFound, "Appointment not found")
			return
		}
		log.Printf("[ERROR] Appointment lookup failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch appointment")
		return
	}

	respondJSON(w, http.StatusOK, a)
}

// Create serves POST /api/appointments.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid appointment data")
		return
	}

	a, err := h.service.Create(r.Context(), req)
	if err != nil {
		if fields, ok := validation.FieldErrors(err); ok {
			respondValidation(w, "Invalid appointment data", fields)
			return
		}
		log.Printf("[ERROR] Appointment creation failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	respondJSON(w, http.StatusCreated, a)
}

// Update serves PUT /api/appointments/{id} with a partial body.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid appointment data")
		return
	}

	a, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if fields, ok := validation.FieldErrors(err); ok {
			respondValidation(w, "Invalid appointment data", fields)
			return
		}
		if errors.Is(err, ErrAppointmentNotFound) {
			respondError(w, http.StatusNotFound, "Appointment not found")
			return
		}
		log.Printf("[ERROR] Appointment update failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	respondJSON(w, http.StatusOK, a)
}

// Delete serves DELETE /api/appointments/{id}; this is a hard delete.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			respondError(w, http.StatusNotFound, "Appointment not found")
			return
		}
		log.Printf("[ERROR] Appointment deletion failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Appointment deleted successfully",
	})
}

func respondJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"message": message})
}

func respondValidation(w http.ResponseWriter, message string, fields map[string]string) {
	respondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"message": message,
		"errors":  fields,
	})
}
