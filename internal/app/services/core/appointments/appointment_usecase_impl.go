package appointments

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	DoctorRepository      contracts.DoctorRepository
	LockerService         contracts.LockerService
	Notifier              contracts.NotificationPublisher
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	lockerService contracts.LockerService,
	notifier contracts.NotificationPublisher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			PatientRepository:     patientRepository,
			DoctorRepository:      doctorRepository,
			LockerService:         lockerService,
			Notifier:              notifier,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

// Book reserves the slot and records the appointment under a per-doctor
// lock. The slot claim itself is a conditional update, so the lock only
// serializes the dual write against concurrent cancellations.
func (uc *appointmentUsecase) Book(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, session.UserID),
		zap.String(constvars.LoggingDoctorIDKey, request.DocID),
		zap.String(constvars.LoggingSlotDateKey, request.SlotDate),
		zap.String(constvars.LoggingSlotTimeKey, request.SlotTime),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyDoctorBookingLock, request.DocID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, constvars.DoctorBookingLockTTLSeconds*time.Second)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingLockNotAcquired(nil)
	}
	defer func() {
		unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue)
		if unlockErr != nil {
			uc.Log.Warn("appointmentUsecase.Book failed to release booking lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	reservation, err := uc.DoctorRepository.ReserveSlot(ctx, request.DocID, request.SlotDate, request.SlotTime)
	if err != nil {
		return nil, err
	}
	switch reservation {
	case contracts.SlotReserved:
	case contracts.SlotReservationDoctorMissing:
		return nil, exceptions.ErrDoctorNotFound(nil)
	case contracts.SlotReservationDoctorUnavailable:
		return nil, exceptions.ErrDoctorNotAvailable(nil)
	default:
		return nil, exceptions.ErrSlotNotAvailable(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DocID)
	if err != nil {
		uc.releaseSlot(ctx, request)
		return nil, err
	}
	if doctor == nil {
		uc.releaseSlot(ctx, request)
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	appointment := &models.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		PatientData: patient.Snapshot(),
		DoctorData:  doctor.Snapshot(),
		Amount:      doctor.Fees,
		SlotDate:    request.SlotDate,
		SlotTime:    request.SlotTime,
		Date:        time.Now(),
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.releaseSlot(ctx, request)
		return nil, err
	}
	appointment.ID = appointmentID

	uc.Log.Info("appointmentUsecase.Book booked appointment",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	uc.publish(ctx, constvars.NotificationEventAppointmentBooked, appointment)

	response := responses.NewAppointment(appointment)
	return &response, nil
}

func (uc *appointmentUsecase) CancelByPatient(ctx context.Context, session *models.Session, request *requests.CancelAppointment) error {
	return uc.cancel(ctx, session, request, false)
}

func (uc *appointmentUsecase) CancelByDoctor(ctx context.Context, session *models.Session, request *requests.CancelAppointment) error {
	return uc.cancel(ctx, session, request, true)
}

func (uc *appointmentUsecase) MarkComplete(ctx context.Context, session *models.Session, request *requests.CompleteAppointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.MarkComplete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.DoctorID != session.UserID {
		return exceptions.ErrNotResourceOwner(nil)
	}
	if appointment.Cancelled {
		return exceptions.ErrAppointmentAlreadyCancelled(nil)
	}

	return uc.AppointmentRepository.SetCompleted(ctx, appointment.ID)
}

func (uc *appointmentUsecase) ListForPatient(ctx context.Context, session *models.Session) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListForPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, session.UserID),
	)

	appointmentList, err := uc.AppointmentRepository.FindByPatientID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return responses.NewAppointmentList(appointmentList), nil
}

func (uc *appointmentUsecase) ListForDoctor(ctx context.Context, session *models.Session) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListForDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.UserID),
	)

	appointmentList, err := uc.AppointmentRepository.FindByDoctorID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return responses.NewAppointmentList(appointmentList), nil
}

// cancel flips the ledger flag first, then frees the slot. Cancelling an
// already-cancelled appointment is refused so the slot is never released
// twice under a later rebooking.
func (uc *appointmentUsecase) cancel(ctx context.Context, session *models.Session, request *requests.CancelAppointment, byDoctor bool) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.Bool("by_doctor", byDoctor),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	ownerID := appointment.PatientID
	if byDoctor {
		ownerID = appointment.DoctorID
	}
	if ownerID != session.UserID {
		return exceptions.ErrNotResourceOwner(nil)
	}

	if appointment.Cancelled {
		return exceptions.ErrAppointmentAlreadyCancelled(nil)
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyDoctorBookingLock, appointment.DoctorID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, constvars.DoctorBookingLockTTLSeconds*time.Second)
	if err != nil {
		return err
	}
	if !acquired {
		return exceptions.ErrBookingLockNotAcquired(nil)
	}
	defer func() {
		unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue)
		if unlockErr != nil {
			uc.Log.Warn("appointmentUsecase.cancel failed to release booking lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	err = uc.AppointmentRepository.SetCancelled(ctx, appointment.ID)
	if err != nil {
		return err
	}

	err = uc.DoctorRepository.ReleaseSlot(ctx, appointment.DoctorID, appointment.SlotDate, appointment.SlotTime)
	if err != nil {
		return err
	}

	uc.publish(ctx, constvars.NotificationEventAppointmentCancelled, appointment)
	return nil
}

func (uc *appointmentUsecase) releaseSlot(ctx context.Context, request *requests.BookAppointment) {
	err := uc.DoctorRepository.ReleaseSlot(ctx, request.DocID, request.SlotDate, request.SlotTime)
	if err != nil {
		uc.Log.Error("appointmentUsecase failed to release slot after aborted booking",
			zap.String(constvars.LoggingDoctorIDKey, request.DocID),
			zap.String(constvars.LoggingSlotDateKey, request.SlotDate),
			zap.String(constvars.LoggingSlotTimeKey, request.SlotTime),
			zap.Error(err),
		)
	}
}

// publish is best effort: a broker outage must not fail the booking.
func (uc *appointmentUsecase) publish(ctx context.Context, event string, appointment *models.Appointment) {
	if uc.Notifier == nil {
		return
	}
	err := uc.Notifier.Publish(ctx, &contracts.NotificationEvent{
		Event:         event,
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		SlotDate:      appointment.SlotDate,
		SlotTime:      appointment.SlotTime,
	})
	if err != nil {
		uc.Log.Warn("appointmentUsecase failed to publish notification",
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.String("event", event),
			zap.Error(err),
		)
	}
}
