package doctors

import (
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

const dashboardLatestAppointments = 5

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

type doctorUsecase struct {
	DoctorRepository      contracts.DoctorRepository
	AppointmentRepository contracts.AppointmentRepository
	RedisRepository       contracts.RedisRepository
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	appointmentRepository contracts.AppointmentRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository:      doctorRepository,
			AppointmentRepository: appointmentRepository,
			RedisRepository:       redisRepository,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Token, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, doctor.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    doctor.ID,
		Role:      constvars.RoleDoctor,
	}

	sessionKey := fmt.Sprintf(constvars.RedisKeySession, session.SessionID)
	sessionTTL := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	err = uc.RedisRepository.Set(ctx, sessionKey, session, sessionTTL)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}
	return &responses.Token{Token: token}, nil
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context) ([]responses.DoctorListItem, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctorList, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.DoctorListItem, 0, len(doctorList))
	for i := range doctorList {
		result = append(result, responses.NewDoctorListItem(&doctorList[i]))
	}
	return result, nil
}

func (uc *doctorUsecase) ChangeAvailability(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.ChangeAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.UserID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}
	return uc.DoctorRepository.SetAvailability(ctx, doctor.ID, !doctor.Available)
}

func (uc *doctorUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.DoctorProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.UserID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return responses.NewDoctorProfile(doctor), nil
}

func (uc *doctorUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctorProfile) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.UserID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	doctor.Fees = request.Fees
	doctor.Address = request.Address
	doctor.Available = request.Available
	if request.About != "" {
		doctor.About = request.About
	}

	return uc.DoctorRepository.UpdateDoctor(ctx, doctor)
}

// GetDashboard aggregates the doctor's ledger: earnings count paid or
// completed appointments, patients are counted once across bookings.
func (uc *doctorUsecase) GetDashboard(ctx context.Context, session *models.Session) (*responses.DoctorDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.UserID),
	)

	appointmentList, err := uc.AppointmentRepository.FindByDoctorID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	var earnings float64
	seenPatients := make(map[string]struct{})
	for i := range appointmentList {
		appointment := &appointmentList[i]
		if appointment.IsCompleted || appointment.Payment {
			earnings += appointment.Amount
		}
		seenPatients[appointment.PatientID] = struct{}{}
	}

	latest := appointmentList
	if len(latest) > dashboardLatestAppointments {
		latest = latest[:dashboardLatestAppointments]
	}

	return &responses.DoctorDashboard{
		Earnings:           earnings,
		Appointments:       len(appointmentList),
		Patients:           len(seenPatients),
		LatestAppointments: responses.NewAppointmentList(latest),
	}, nil
}
