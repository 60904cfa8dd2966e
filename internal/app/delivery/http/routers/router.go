package routers

import (
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/patients"
	"medibook-service/internal/app/services/core/payments"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	doctorController *doctors.DoctorController,
	appointmentController *appointments.AppointmentController,
	paymentController *payments.PaymentController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, internalConfig, middlewares, patientController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, internalConfig, middlewares, doctorController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/payments", func(r chi.Router) {
				attachPaymentRoutes(r, middlewares, paymentController)
			})
		})
	})
}
