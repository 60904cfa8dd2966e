package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, mw *middlewares.Middlewares, patientController *patients.PatientController) {
	router.With(mw.Authenticate, mw.RequirePatient).Get("/profile", patientController.GetProfile)
	router.With(mw.Authenticate, mw.RequirePatient).Put("/profile", patientController.UpdateProfile)
}
