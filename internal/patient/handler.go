package patient

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

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

// List serves GET /api/patients with search, gender and age filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := ListFilter{
		Search: query.Get("search"),
	}
	// The front end sends "all" for the unfiltered gender option.
	if gender := query.Get("gender"); gender != "" && gender != "all" {
		filter.Gender = gender
	}
	if minAgeStr := query.Get("minAge"); minAgeStr != "" {
		if minAge, err := strconv.Atoi(minAgeStr); err == nil && minAge >= 0 {
			filter.MinAge = &minAge
		}
	}
	if maxAgeStr := query.Get("maxAge"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge >= 0 {
			filter.MaxAge = &maxAge
		}
	}

	params := pagination.ParseParams(r)

	result, err := h.service.List(r.Context(), filter, params)
	if err != nil {
		log.Printf("[ERROR] Patient listing failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch patients")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Get serves GET /api/patients/{id}. Soft-deleted patients are still
// returned here.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			respondError(w, http.StatusNotFound, "Patient not found")
			return
		}
		log.Printf("[ERROR] Patient lookup failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch patient")
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// Create serves POST /api/patients.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid patient data")
		return
	}

	p, err := h.service.Create(r.Context(), req)
	if err != nil {
		if fields, ok := validation.FieldErrors(err); ok {
			respondValidation(w, "Invalid patient data", fields)
			return
		}
		log.Printf("[ERROR] Patient creation failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create patient")
		return
	}

	respondJSON(w, http.StatusCreated, p)
}

// Update serves PUT /api/patients/{id} with a partial body.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid patient data")
		return
	}

	p, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if fields, ok := validation.FieldErrors(err); ok {
			respondValidation(w, "Invalid patient data", fields)
			return
		}
		if errors.Is(err, ErrPatientNotFound) {
			respondError(w, http.StatusNotFound, "Patient not found")
			return
		}
		log.Printf("[ERROR] Patient update failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update patient")
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// Delete serves DELETE /api/patients/{id}; the delete is a soft delete.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			respondError(w, http.StatusNotFound, "Patient not found")
			return
		}
		log.Printf("[ERROR] Patient deletion failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete patient")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Patient deleted successfully",
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
