package appointment

import "time"

// Types lists the accepted appointment types.
var Types = []string{"consultation", "follow-up", "checkup", "emergency", "vaccination"}

// Statuses lists the accepted appointment statuses.
var Statuses = []string{"scheduled", "completed", "cancelled", "rescheduled"}

// DefaultStatus is assigned when a new appointment omits status.
const DefaultStatus = "scheduled"

// CreateAppointmentRequest represents the request to book an appointment.
// AppointmentTime must be zero-padded 24-hour HH:MM so listings sort
// chronologically.
type CreateAppointmentRequest struct {
	PatientID       string `json:"patientId"`
	DoctorID        string `json:"doctorId"`
	AppointmentDate string `json:"appointmentDate"` // YYYY-MM-DD
	AppointmentTime string `json:"appointmentTime"` // HH:MM
	Type            string `json:"type"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
	Diagnosis       string `json:"diagnosis"`
	Prescription    string `json:"prescription"`
}

// UpdateAppointmentRequest represents a partial appointment update.
type UpdateAppointmentRequest struct {
	PatientID       *string `json:"patientId,omitempty"`
	DoctorID        *string `json:"doctorId,omitempty"`
	AppointmentDate *string `json:"appointmentDate,omitempty"`
	AppointmentTime *string `json:"appointmentTime,omitempty"`
	Type            *string `json:"type,omitempty"`
	Status          *string `json:"status,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Diagnosis       *string `json:"diagnosis,omitempty"`
	Prescription    *string `json:"prescription,omitempty"`
}

// PatientSummary is the joined patient data returned with an appointment.
type PatientSummary struct {
	ID          string `json:"id"`
	PatientID   string `json:"patientId"`
	FullName    string `json:"fullName"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Mobile      string `json:"mobile"`
}

// DoctorSummary is the joined doctor data returned with an appointment.
type DoctorSummary struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// AppointmentResponse represents the appointment data returned to clients,
// including the joined patient and (when assigned) doctor.
type AppointmentResponse struct {
	ID              string          `json:"id"`
	AppointmentID   string          `json:"appointmentId"`
	PatientID       string          `json:"patientId"`
	DoctorID        string          `json:"doctorId,omitempty"`
	AppointmentDate string          `json:"appointmentDate"`
	AppointmentTime string          `json:"appointmentTime"`
	Type            string          `json:"type"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	Diagnosis       string          `json:"diagnosis,omitempty"`
	Prescription    string          `json:"prescription,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	Patient         *PatientSummary `json:"patient,omitempty"`
	Doctor          *DoctorSummary  `json:"doctor,omitempty"`
}

// ListFilter narrows appointment listings; all filters are exact matches
// combined with AND. Zero values mean "no filter".
type ListFilter struct {
	Date      string
	Status    string
	PatientID string
}

// ListResponse is the paginated listing payload.
type ListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
