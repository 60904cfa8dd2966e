package responses

import "medibook-service/internal/app/models"

type PatientProfile struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Image   string         `json:"image,omitempty"`
	Phone   string         `json:"phone,omitempty"`
	Gender  string         `json:"gender,omitempty"`
	Dob     string         `json:"dob,omitempty"`
	Address models.Address `json:"address"`
}

func NewPatientProfile(patient *models.Patient) *PatientProfile {
	return &PatientProfile{
		ID:      patient.ID,
		Name:    patient.Name,
		Email:   patient.Email,
		Image:   patient.Image,
		Phone:   patient.Phone,
		Gender:  patient.Gender,
		Dob:     patient.Dob,
		Address: patient.Address,
	}
}
