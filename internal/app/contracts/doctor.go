package contracts

import (
	"context"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

// SlotReservationResult reports the outcome of an atomic reserve attempt.
type SlotReservationResult int

const (
	SlotReserved SlotReservationResult = iota
	SlotReservationDoctorMissing
	SlotReservationDoctorUnavailable
	SlotReservationTaken
)

type DoctorRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	SetAvailability(ctx context.Context, doctorID string, available bool) error

	// ReserveSlot adds slotTime to the doctor's reservation map for
	// slotDate in a single conditional update: it succeeds only when the
	// doctor exists, is available and the slot is not already present.
	ReserveSlot(ctx context.Context, doctorID, slotDate, slotTime string) (SlotReservationResult, error)

	// ReleaseSlot removes slotTime from the doctor's reservation map for
	// slotDate. Releasing an absent slot is a no-op.
	ReleaseSlot(ctx context.Context, doctorID, slotDate, slotTime string) error
}

type DoctorUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Token, error)
	ListDoctors(ctx context.Context) ([]responses.DoctorListItem, error)
	ChangeAvailability(ctx context.Context, session *models.Session) error
	GetProfile(ctx context.Context, session *models.Session) (*responses.DoctorProfile, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctorProfile) error
	GetDashboard(ctx context.Context, session *models.Session) (*responses.DoctorDashboard, error)
}
