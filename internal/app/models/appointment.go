package models

import "time"

// Appointment is the durable source of truth for booking state. The
// doctor's SlotsBooked map is a derived index kept consistent by the
// booking and cancellation paths.
type Appointment struct {
	ID          string          `bson:"_id,omitempty"`
	PatientID   string          `bson:"userId"`
	DoctorID    string          `bson:"docId"`
	PatientData PatientSnapshot `bson:"userData"`
	DoctorData  DoctorSnapshot  `bson:"docData"`
	Amount      float64         `bson:"amount"`
	SlotDate    string          `bson:"slotDate"`
	SlotTime    string          `bson:"slotTime"`
	Cancelled   bool            `bson:"cancelled"`
	IsCompleted bool            `bson:"isCompleted"`
	Payment     bool            `bson:"payment"`
	OrderID     string          `bson:"orderId,omitempty"`
	Date        time.Time       `bson:"date"`
}
