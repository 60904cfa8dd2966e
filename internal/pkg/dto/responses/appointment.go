package responses

import (
	"time"

	"medibook-service/internal/app/models"
)

type Appointment struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"userId"`
	DocID       string                 `json:"docId"`
	UserData    models.PatientSnapshot `json:"userData"`
	DocData     models.DoctorSnapshot  `json:"docData"`
	Amount      float64                `json:"amount"`
	SlotDate    string                 `json:"slotDate"`
	SlotTime    string                 `json:"slotTime"`
	Cancelled   bool                   `json:"cancelled"`
	IsCompleted bool                   `json:"isCompleted"`
	Payment     bool                   `json:"payment"`
	Date        time.Time              `json:"date"`
}

func NewAppointment(appointment *models.Appointment) Appointment {
	return Appointment{
		ID:          appointment.ID,
		UserID:      appointment.PatientID,
		DocID:       appointment.DoctorID,
		UserData:    appointment.PatientData,
		DocData:     appointment.DoctorData,
		Amount:      appointment.Amount,
		SlotDate:    appointment.SlotDate,
		SlotTime:    appointment.SlotTime,
		Cancelled:   appointment.Cancelled,
		IsCompleted: appointment.IsCompleted,
		Payment:     appointment.Payment,
		Date:        appointment.Date,
	}
}

func NewAppointmentList(appointments []models.Appointment) []Appointment {
	result := make([]Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, NewAppointment(&appointments[i]))
	}
	return result
}
