package utils

import (
	"errors"
	"net/http"

	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.String("file", customErr.Location.File),
			zap.Int("line", customErr.Location.Line),
			zap.String("function_name", customErr.Location.FunctionName),
		)
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := responses.ResponseDTO{
		Success: false,
		Message: clientMessage,
	}
	json.NewEncoder(w).Encode(response)
}
