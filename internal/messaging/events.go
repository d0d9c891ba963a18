package messaging

import (
	"time"

	"github.com/google/uuid"
)

// Event routing keys as constants
const (
	// Patient events
	EventPatientCreated = "patient.created"
	EventPatientUpdated = "patient.updated"
	EventPatientDeleted = "patient.deleted"

	// Appointment events
	EventAppointmentCreated = "appointment.created"
	EventAppointmentUpdated = "appointment.updated"
	EventAppointmentDeleted = "appointment.deleted"

	// Medical record events
	EventMedicalRecordCreated = "medical_record.created"
)

const serviceName = "clinic-service"

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventType   string    `json:"eventType"`
	EventID     string    `json:"eventId"`
	Timestamp   time.Time `json:"timestamp"`
	ServiceName string    `json:"serviceName"`
}

// NewBaseEvent builds the common envelope for an event type.
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType:   eventType,
		EventID:     uuid.New().String(),
		Timestamp:   time.Now().UTC(),
		ServiceName: serviceName,
	}
}

// PatientEvent is published on patient create/update/soft-delete.
type PatientEvent struct {
	BaseEvent
	Data PatientEventData `json:"data"`
}

type PatientEventData struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	FullName  string `json:"fullName"`
	IsActive  bool   `json:"isActive"`
}

// AppointmentEvent is published on appointment create/update/delete.
type AppointmentEvent struct {
	BaseEvent
	Data AppointmentEventData `json:"data"`
}

type AppointmentEventData struct {
	ID              string `json:"id"`
	AppointmentID   string `json:"appointmentId"`
	PatientID       string `json:"patientId"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Status          string `json:"status"`
}

// MedicalRecordEvent is published when a record is appended.
type MedicalRecordEvent struct {
	BaseEvent
	Data MedicalRecordEventData `json:"data"`
}

type MedicalRecordEventData struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	VisitDate string `json:"visitDate"`
}
