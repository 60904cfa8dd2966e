package payments

import (
	"context"
	"crypto/subtle"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
	InternalConfig *config.InternalConfig
}

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase, internalConfig *config.InternalConfig) *PaymentController {
	return &PaymentController{
		Log:            logger,
		PaymentUsecase: paymentUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PaymentController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.CreatePaymentOrder)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PaymentUsecase.CreateOrder(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PaymentOrderCreatedSuccess, response)
}

func (ctrl *PaymentController) Verify(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.VerifyPayment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PaymentUsecase.Verify(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.PaymentVerifiedSuccess
	if !response.Paid {
		message = constvars.PaymentNotCompletedMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

// Callback receives the gateway's server-to-server push. The shared
// callback key stands in for a session here.
func (ctrl *PaymentController) Callback(w http.ResponseWriter, r *http.Request) {
	callbackKey := r.Header.Get(constvars.HeaderXCallbackKey)
	if subtle.ConstantTimeCompare([]byte(callbackKey), []byte(ctrl.InternalConfig.PaymentGateway.CallbackKey)) != 1 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPaymentCallbackForbidden(nil))
		return
	}

	request := new(requests.PaymentCallback)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.PaymentUsecase.HandleCallback(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentVerifiedSuccess, nil)
}
