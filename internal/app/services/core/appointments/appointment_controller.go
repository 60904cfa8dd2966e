package appointments

import (
	"context"
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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) Book(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.BookAppointment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeBookAppointmentRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.Book(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentBookedSuccess, response)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.CancelAppointment)
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

	err = ctrl.AppointmentUsecase.CancelByPatient(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCancelledSuccess, nil)
}

func (ctrl *AppointmentController) List(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.ListForPatient(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentListSuccess, response)
}
