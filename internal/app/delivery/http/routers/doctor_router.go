package routers

import (
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/doctors"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, internalConfig *config.InternalConfig, mw *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	loginLimiter := middlewares.NewRateLimiter(
		internalConfig.App.AuthMaxRequestsPerMinute,
		time.Minute,
		time.Duration(internalConfig.App.AuthBlockTimeInMinute)*time.Minute,
	)

	router.Get("/", doctorController.List)
	router.With(loginLimiter.Limit).Post("/login", doctorController.Login)

	router.With(mw.Authenticate, mw.RequireDoctor).Post("/change-availability", doctorController.ChangeAvailability)
	router.With(mw.Authenticate, mw.RequireDoctor).Get("/profile", doctorController.GetProfile)
	router.With(mw.Authenticate, mw.RequireDoctor).Put("/profile", doctorController.UpdateProfile)
	router.With(mw.Authenticate, mw.RequireDoctor).Get("/dashboard", doctorController.Dashboard)
	router.With(mw.Authenticate, mw.RequireDoctor).Get("/appointments", doctorController.Appointments)
	router.With(mw.Authenticate, mw.RequireDoctor).Post("/appointments/complete", doctorController.CompleteAppointment)
	router.With(mw.Authenticate, mw.RequireDoctor).Post("/appointments/cancel", doctorController.CancelAppointment)
}
