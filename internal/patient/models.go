package patient

import "time"

// Gender values accepted for patients.
var Genders = []string{"male", "female", "other"}

// BloodGroups lists the accepted blood group codes.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// CreatePatientRequest represents the request to create a new patient.
// Optional fields submitted as empty strings are stored as absent.
type CreatePatientRequest struct {
	FullName                 string `json:"fullName"`
	DateOfBirth              string `json:"dateOfBirth"` // YYYY-MM-DD
	Gender                   string `json:"gender"`
	BloodGroup               string `json:"bloodGroup"`
	Mobile                   string `json:"mobile"`
	Email                    string `json:"email"`
	Address                  string `json:"address"`
	MedicalHistory           string `json:"medicalHistory"`
	CurrentMedications       string `json:"currentMedications"`
	Allergies                string `json:"allergies"`
	EmergencyContactName     string `json:"emergencyContactName"`
	EmergencyContactPhone    string `json:"emergencyContactPhone"`
	EmergencyContactRelation string `json:"emergencyContactRelation"`
}

// UpdatePatientRequest represents a partial patient update. Nil fields are
// left untouched.
type UpdatePatientRequest struct {
	FullName                 *string `json:"fullName,omitempty"`
	DateOfBirth              *string `json:"dateOfBirth,omitempty"`
	Gender                   *string `json:"gender,omitempty"`
	BloodGroup               *string `json:"bloodGroup,omitempty"`
	Mobile                   *string `json:"mobile,omitempty"`
	Email                    *string `json:"email,omitempty"`
	Address                  *string `json:"address,omitempty"`
	MedicalHistory           *string `json:"medicalHistory,omitempty"`
	CurrentMedications       *string `json:"currentMedications,omitempty"`
	Allergies                *string `json:"allergies,omitempty"`
	EmergencyContactName     *string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone    *string `json:"emergencyContactPhone,omitempty"`
	EmergencyContactRelation *string `json:"emergencyContactRelation,omitempty"`
}

// PatientResponse represents the patient data returned to clients
type PatientResponse struct {
	ID                       string    `json:"id"`
	PatientID                string    `json:"patientId"`
	FullName                 string    `json:"fullName"`
	DateOfBirth              string    `json:"dateOfBirth"`
	Gender                   string    `json:"gender"`
	BloodGroup               string    `json:"bloodGroup,omitempty"`
	Mobile                   string    `json:"mobile"`
	Email                    string    `json:"email,omitempty"`
	Address                  string    `json:"address,omitempty"`
	MedicalHistory           string    `json:"medicalHistory,omitempty"`
	CurrentMedications       string    `json:"currentMedications,omitempty"`
	Allergies                string    `json:"allergies,omitempty"`
	EmergencyContactName     string    `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone    string    `json:"emergencyContactPhone,omitempty"`
	EmergencyContactRelation string    `json:"emergencyContactRelation,omitempty"`
	IsActive                 bool      `json:"isActive"`
	CreatedAt                time.Time `json:"createdAt"`
	UpdatedAt                time.Time `json:"updatedAt"`
}

// ListFilter narrows patient listings. Zero values mean "no filter".
// MinAge/MaxAge bound the patient's age in whole years.
type ListFilter struct {
	Search string
	Gender string
	MinAge *int
	MaxAge *int
}

// ListResponse is the paginated listing payload. Total counts every row
// matching the filter regardless of pagination.
type ListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
