package contracts

import (
	"context"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (patientID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
}

type PatientUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.Token, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Token, error)
	Logout(ctx context.Context, session *models.Session) error
	GetProfile(ctx context.Context, session *models.Session) (*responses.PatientProfile, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.PatientProfile, error)
}
