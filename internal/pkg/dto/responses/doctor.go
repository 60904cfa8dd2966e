package responses

import "medibook-service/internal/app/models"

// DoctorListItem is the public directory entry: no email, no secret.
type DoctorListItem struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Image       string         `json:"image,omitempty"`
	Speciality  string         `json:"speciality"`
	Degree      string         `json:"degree"`
	Experience  string         `json:"experience"`
	About       string         `json:"about"`
	Fees        float64        `json:"fees"`
	Address     models.Address `json:"address"`
	Available   bool           `json:"available"`
	SlotsBooked models.SlotMap `json:"slotsBooked"`
}

func NewDoctorListItem(doctor *models.Doctor) DoctorListItem {
	return DoctorListItem{
		ID:          doctor.ID,
		Name:        doctor.Name,
		Image:       doctor.Image,
		Speciality:  doctor.Speciality,
		Degree:      doctor.Degree,
		Experience:  doctor.Experience,
		About:       doctor.About,
		Fees:        doctor.Fees,
		Address:     doctor.Address,
		Available:   doctor.Available,
		SlotsBooked: doctor.SlotsBooked,
	}
}

type DoctorProfile struct {
	DoctorListItem
	Email string `json:"email"`
}

func NewDoctorProfile(doctor *models.Doctor) *DoctorProfile {
	return &DoctorProfile{
		DoctorListItem: NewDoctorListItem(doctor),
		Email:          doctor.Email,
	}
}

type DoctorDashboard struct {
	Earnings           float64       `json:"earnings"`
	Appointments       int           `json:"appointments"`
	Patients           int           `json:"patients"`
	LatestAppointments []Appointment `json:"latestAppointments"`
}
