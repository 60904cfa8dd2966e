package contracts

import (
	"context"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error)
	FindByOrderID(ctx context.Context, orderID string) (*models.Appointment, error)
	SetCancelled(ctx context.Context, appointmentID string) error
	SetCompleted(ctx context.Context, appointmentID string) error
	SetOrderID(ctx context.Context, appointmentID, orderID string) error
	SetPaid(ctx context.Context, appointmentID string) error
}

type AppointmentUsecase interface {
	Book(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.Appointment, error)
	CancelByPatient(ctx context.Context, session *models.Session, request *requests.CancelAppointment) error
	CancelByDoctor(ctx context.Context, session *models.Session, request *requests.CancelAppointment) error
	MarkComplete(ctx context.Context, session *models.Session, request *requests.CompleteAppointment) error
	ListForPatient(ctx context.Context, session *models.Session) ([]responses.Appointment, error)
	ListForDoctor(ctx context.Context, session *models.Session) ([]responses.Appointment, error)
}
