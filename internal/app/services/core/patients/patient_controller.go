package patients

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

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	MaxImageSizeMB int64
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, maxImageSizeMB int64) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		MaxImageSizeMB: maxImageSizeMB,
	}
}

func (ctrl *PatientController) Register(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Register)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeRegisterRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.Register(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccess, response)
}

func (ctrl *PatientController) Login(w http.ResponseWriter, r *http.Request) {
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

	response, err := ctrl.PatientUsecase.Login(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

func (ctrl *PatientController) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.PatientUsecase.Logout(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (ctrl *PatientController) GetProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.GetProfile(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, response)
}

func (ctrl *PatientController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.UpdateProfile)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeUpdateProfileRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if request.ProfilePicture != "" {
		imageData, ext, err := utils.DecodeBase64Image(request.ProfilePicture)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
			return
		}
		err = utils.ValidateImageFormat(ext, constvars.ImageAllowedProfilePictureFormats)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
			return
		}
		err = utils.ValidateImageSize(imageData, ctrl.MaxImageSizeMB)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
			return
		}
		request.ProfilePictureData = imageData
		request.ProfilePictureExtension = ext
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.UpdateProfile(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdateSuccess, response)
}
