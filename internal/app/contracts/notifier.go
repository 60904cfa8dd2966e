package contracts

import "context"

// NotificationEvent is published to the notification queue after a
// booking-lifecycle transition. Delivery is best effort.
type NotificationEvent struct {
	Event         string `json:"event"`
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"userId"`
	DoctorID      string `json:"docId"`
	SlotDate      string `json:"slotDate"`
	SlotTime      string `json:"slotTime"`
}

type NotificationPublisher interface {
	Publish(ctx context.Context, event *NotificationEvent) error
}
