package domain

// GatewayOrder is the order descriptor returned by the payment gateway.
// It is owned by the gateway and never persisted here; the verify step
// references it by ID only.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}

// PaymentCallback carries the signed confirmation a client posts after
// completing payment at the gateway.
type PaymentCallback struct {
	OrderID   string
	PaymentID string
	Signature string
	CourseIDs []string
	StudentID string
}
