package exceptions

import (
	"fmt"
	"medibook-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrImageValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidImageFormat, constvars.ErrDevImageValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}

	// Auth
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrInvalidEmailOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidEmailOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrEmailAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientEmailAlreadyExists, constvars.ErrDevEmailAlreadyExists)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrSessionInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthInvalidSession)
	}
	ErrNotResourceOwner = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevOwnershipMismatch)
	}

	// Domain
	ErrPatientNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientUserNotFound, constvars.ErrDevPatientNotExists)
	}
	ErrDoctorNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientDoctorNotFound, constvars.ErrDevDoctorNotExists)
	}
	ErrAppointmentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAppointmentNotFound, constvars.ErrDevAppointmentNotExists)
	}
	ErrDoctorNotAvailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientDoctorNotAvailable, constvars.ErrDevDoctorNotAvailable)
	}
	ErrSlotNotAvailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientSlotNotAvailable, constvars.ErrDevSlotAlreadyReserved)
	}
	ErrAppointmentAlreadyCancelled = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientAppointmentAlreadyCancelled, constvars.ErrDevAppointmentAlreadyDone)
	}
	ErrAppointmentAlreadyPaid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientAppointmentAlreadyPaid, constvars.ErrDevAppointmentAlreadyDone)
	}
	ErrCancelledAppointmentPayment = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientCancelledAppointmentPayment, constvars.ErrDevAppointmentAlreadyDone)
	}
	ErrBookingLockNotAcquired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientSlotNotAvailable, constvars.ErrDevBookingLockNotAcquired)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID)
	}

	// Redis
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}

	// HTTP / payment gateway
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, source string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevDecodeResponse, source))
	}
	ErrPaymentGatewayRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPaymentGatewayUnavailable, constvars.ErrDevPaymentGatewayRequest)
	}
	ErrPaymentGatewayBadStatus = func(statusCode int) *CustomError {
		return WrapWithoutError(constvars.StatusBadGateway, constvars.ErrClientPaymentGatewayUnavailable, fmt.Sprintf(constvars.ErrDevPaymentGatewayBadStatus, statusCode))
	}
	ErrPaymentCallbackForbidden = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevPaymentCallbackForbidden)
	}
)
