package payments

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

type paymentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	GatewayService        contracts.PaymentGatewayService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewPaymentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	gatewayService contracts.PaymentGatewayService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			AppointmentRepository: appointmentRepository,
			GatewayService:        gatewayService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return paymentUsecaseInstance
}

// CreateOrder opens a gateway order for the appointment fee. The order
// receipt carries the appointment id so callbacks can be correlated.
func (uc *paymentUsecase) CreateOrder(ctx context.Context, session *models.Session, request *requests.CreatePaymentOrder) (*responses.PaymentOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.PatientID != session.UserID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}
	if appointment.Cancelled {
		return nil, exceptions.ErrCancelledAppointmentPayment(nil)
	}
	if appointment.Payment {
		return nil, exceptions.ErrAppointmentAlreadyPaid(nil)
	}

	order, err := uc.GatewayService.CreateOrder(ctx, &requests.GatewayCreateOrder{
		Amount:   int64(appointment.Amount * constvars.PaymentSubunitFactor),
		Currency: uc.InternalConfig.PaymentGateway.Currency,
		Receipt:  appointment.ID,
	})
	if err != nil {
		return nil, err
	}

	err = uc.AppointmentRepository.SetOrderID(ctx, appointment.ID, order.ID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("paymentUsecase.CreateOrder opened order",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingOrderIDKey, order.ID),
	)

	return &responses.PaymentOrder{
		OrderID:  order.ID,
		Amount:   appointment.Amount,
		Currency: order.Currency,
	}, nil
}

// Verify re-reads the order from the gateway instead of trusting the
// client, and flips the appointment to paid only on a settled order.
func (uc *paymentUsecase) Verify(ctx context.Context, session *models.Session, request *requests.VerifyPayment) (*responses.PaymentStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.Verify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
	)

	appointment, err := uc.AppointmentRepository.FindByOrderID(ctx, request.OrderID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.PatientID != session.UserID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	order, err := uc.GatewayService.FetchOrder(ctx, request.OrderID)
	if err != nil {
		return nil, err
	}

	paid := order.Status == constvars.PaymentOrderStatusPaid
	if paid && !appointment.Payment {
		err = uc.AppointmentRepository.SetPaid(ctx, appointment.ID)
		if err != nil {
			return nil, err
		}
	}

	return &responses.PaymentStatus{
		OrderID: order.ID,
		Paid:    paid,
	}, nil
}

// HandleCallback processes the gateway's push notification. The caller
// is authenticated by the callback key middleware before this runs.
func (uc *paymentUsecase) HandleCallback(ctx context.Context, request *requests.PaymentCallback) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.HandleCallback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
	)

	appointment, err := uc.AppointmentRepository.FindByOrderID(ctx, request.OrderID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	if request.Status != constvars.PaymentOrderStatusPaid || appointment.Payment {
		return nil
	}
	return uc.AppointmentRepository.SetPaid(ctx, appointment.ID)
}
