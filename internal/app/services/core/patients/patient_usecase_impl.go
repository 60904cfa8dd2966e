package patients

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

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	RedisRepository   contracts.RedisRepository
	Storage           contracts.Storage
	InternalConfig    *config.InternalConfig
	DriverConfig      *config.DriverConfig
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	redisRepository contracts.RedisRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository: patientRepository,
			RedisRepository:   redisRepository,
			Storage:           storage,
			InternalConfig:    internalConfig,
			DriverConfig:      driverConfig,
			Log:               logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Token, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.PatientRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	patient := &models.Patient{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.Register created patient",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	return uc.createSession(ctx, patientID)
}

func (uc *patientUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Token, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patient, err := uc.PatientRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, patient.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	return uc.createSession(ctx, patient.ID)
}

func (uc *patientUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionKey := fmt.Sprintf(constvars.RedisKeySession, session.SessionID)
	return uc.RedisRepository.Delete(ctx, sessionKey)
}

func (uc *patientUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.PatientProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, session.UserID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return responses.NewPatientProfile(patient), nil
}

func (uc *patientUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.PatientProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, session.UserID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	patient.Name = request.Name
	patient.Phone = request.Phone
	patient.Gender = request.Gender
	patient.Dob = request.Dob
	patient.Address = request.Address

	if len(request.ProfilePictureData) > 0 {
		fileName := fmt.Sprintf("profile-pictures/%s%s", patient.ID, request.ProfilePictureExtension)
		objectName, err := uc.Storage.UploadBase64Image(
			ctx,
			request.ProfilePictureData,
			uc.DriverConfig.Minio.BucketName,
			fileName,
			request.ProfilePictureExtension,
		)
		if err != nil {
			return nil, err
		}
		patient.Image = objectName
	}

	err = uc.PatientRepository.UpdatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}
	return responses.NewPatientProfile(patient), nil
}

// createSession persists a server-side session in redis and wraps its id
// in a signed token. Only the session id ever reaches the client.
func (uc *patientUsecase) createSession(ctx context.Context, patientID string) (*responses.Token, error) {
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    patientID,
		Role:      constvars.RolePatient,
	}

	sessionKey := fmt.Sprintf(constvars.RedisKeySession, session.SessionID)
	sessionTTL := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	err := uc.RedisRepository.Set(ctx, sessionKey, session, sessionTTL)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}
	return &responses.Token{Token: token}, nil
}
