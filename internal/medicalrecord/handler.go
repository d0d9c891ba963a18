package medicalrecord

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clinicdesk/clinic-service/internal/validation"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListByPatient serves GET /api/patients/{patientId}/medical-records.
// The response is the bare array of records, not a paged envelope.
func (h *Handler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patientId"]

	records, err := h.service.ListByPatient(r.Context(), patientID)
	if err != nil {
		log.Printf("[ERROR] Medical record listing failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch medical records")
		return
	}

	respondJSON(w, http.StatusOK, records)
}

// Create serves POST /api/medical-records.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid medical record data")
		return
	}

	rec, err := h.service.Create(r.Context(), req)
	if err != nil {
		if fields, ok := validation.FieldErrors(err); ok {
			respondValidation(w, "Invalid medical record data", fields)
			return
		}
		log.Printf("[ERROR] Medical record creation failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create medical record")
		return
	}

	respondJSON(w, http.StatusCreated, rec)
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
