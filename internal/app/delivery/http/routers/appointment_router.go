package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, mw *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.With(mw.Authenticate, mw.RequirePatient).Post("/book", appointmentController.Book)
	router.With(mw.Authenticate, mw.RequirePatient).Post("/cancel", appointmentController.Cancel)
	router.With(mw.Authenticate, mw.RequirePatient).Get("/", appointmentController.List)
}
