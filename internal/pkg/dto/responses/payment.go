package responses

type PaymentOrder struct {
	OrderID  string  `json:"orderId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type PaymentStatus struct {
	OrderID string `json:"orderId"`
	Paid    bool   `json:"paid"`
}

// GatewayOrder mirrors the remote gateway's order resource. Amount is in
// the currency subunit.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}
