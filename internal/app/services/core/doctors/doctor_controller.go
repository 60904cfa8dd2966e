package doctors

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

type DoctorController struct {
	Log                *zap.Logger
	DoctorUsecase      contracts.DoctorUsecase
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, appointmentUsecase contracts.AppointmentUsecase) *DoctorController {
	return &DoctorController{
		Log:                logger,
		DoctorUsecase:      doctorUsecase,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *DoctorController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeLoginRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.Login(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

// List is the public doctor directory, no session required.
func (ctrl *DoctorController) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.ListDoctors(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorListSuccess, response)
}

func (ctrl *DoctorController) ChangeAvailability(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.DoctorUsecase.ChangeAvailability(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilityChangedSuccess, nil)
}

func (ctrl *DoctorController) GetProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.GetProfile(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, response)
}

func (ctrl *DoctorController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.UpdateDoctorProfile)
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

	err = ctrl.DoctorUsecase.UpdateProfile(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdateSuccess, nil)
}

func (ctrl *DoctorController) Dashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.GetDashboard(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardGetSuccess, response)
}

func (ctrl *DoctorController) Appointments(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.ListForDoctor(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentListSuccess, response)
}

func (ctrl *DoctorController) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.CompleteAppointment)
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

	err = ctrl.AppointmentUsecase.MarkComplete(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCompletedSuccess, nil)
}

func (ctrl *DoctorController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
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

	err = ctrl.AppointmentUsecase.CancelByDoctor(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCancelledSuccess, nil)
}
