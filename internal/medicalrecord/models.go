package medicalrecord

import "time"

// CreateMedicalRecordRequest is the payload for adding a record to a
// patient's history. Records are append-only; there is no update path.
type CreateMedicalRecordRequest struct {
	PatientID      string `json:"patientId"`
	AppointmentID  string `json:"appointmentId,omitempty"`
	DoctorID       string `json:"doctorId,omitempty"`
	VisitDate      string `json:"visitDate"`
	ChiefComplaint string `json:"chiefComplaint,omitempty"`
	Diagnosis      string `json:"diagnosis,omitempty"`
	Treatment      string `json:"treatment,omitempty"`
	Prescription   string `json:"prescription,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type MedicalRecordResponse struct {
	ID             string    `json:"id"`
	PatientID      string    `json:"patientId"`
	AppointmentID  string    `json:"appointmentId,omitempty"`
	DoctorID       string    `json:"doctorId,omitempty"`
	VisitDate      string    `json:"visitDate"`
	ChiefComplaint string    `json:"chiefComplaint,omitempty"`
	Diagnosis      string    `json:"diagnosis,omitempty"`
	Treatment      string    `json:"treatment,omitempty"`
	Prescription   string    `json:"prescription,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
