package requests

type CreatePaymentOrder struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
}

type VerifyPayment struct {
	OrderID string `json:"orderId" validate:"required"`
}

// PaymentCallback is the push notification the gateway sends to the
// callback route when an order changes state.
type PaymentCallback struct {
	OrderID string `json:"orderId" validate:"required"`
	Status  string `json:"status" validate:"required"`
}

// GatewayCreateOrder is the payload sent to the remote gateway when
// opening an order. Amount is in the currency subunit.
type GatewayCreateOrder struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}
