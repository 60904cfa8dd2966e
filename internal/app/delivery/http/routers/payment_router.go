package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/payments"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, mw *middlewares.Middlewares, paymentController *payments.PaymentController) {
	router.With(mw.Authenticate, mw.RequirePatient).Post("/order", paymentController.CreateOrder)
	router.With(mw.Authenticate, mw.RequirePatient).Post("/verify", paymentController.Verify)

	// Server-to-server push from the gateway, authenticated by callback key.
	router.Post("/callback", paymentController.Callback)
}
