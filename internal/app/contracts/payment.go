package contracts

import (
	"context"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreateOrder(ctx context.Context, session *models.Session, request *requests.CreatePaymentOrder) (*responses.PaymentOrder, error)
	Verify(ctx context.Context, session *models.Session, request *requests.VerifyPayment) (*responses.PaymentStatus, error)
	HandleCallback(ctx context.Context, request *requests.PaymentCallback) error
}
