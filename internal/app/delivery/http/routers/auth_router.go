package routers

import (
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/patients"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, internalConfig *config.InternalConfig, mw *middlewares.Middlewares, patientController *patients.PatientController) {
	authLimiter := middlewares.NewRateLimiter(
		internalConfig.App.AuthMaxRequestsPerMinute,
		time.Minute,
		time.Duration(internalConfig.App.AuthBlockTimeInMinute)*time.Minute,
	)

	router.With(authLimiter.Limit).Post("/register", patientController.Register)
	router.With(authLimiter.Limit).Post("/login", patientController.Login)
	router.With(mw.Authenticate).Post("/logout", patientController.Logout)
}
