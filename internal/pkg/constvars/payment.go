package constvars

// Statuses reported by the payment gateway for an order.
const (
	PaymentOrderStatusCreated   = "created"
	PaymentOrderStatusAttempted = "attempted"
	PaymentOrderStatusPaid      = "paid"
	PaymentOrderStatusFailed    = "failed"
	PaymentOrderStatusExpired   = "expired"
)

const (
	PaymentDefaultCurrency = "INR"

	// Gateways bill in the currency subunit.
	PaymentSubunitFactor = 100
)
