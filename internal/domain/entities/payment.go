package entities

import "time"

// PaymentStatus represents the ledger state of a payment attempt.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// IsActive reports whether the payment counts against the one-active-payment
// rule for its order (a pending intent or a completed charge).
func (s PaymentStatus) IsActive() bool {
	return s == PaymentStatusPending || s == PaymentStatusCompleted
}

// Payment is a ledger entry for an order's price, persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// The table keeps full history (failed and refunded rows included), so the
// one-active-payment invariant is enforced at the use case level, not by the
// key schema.

type Payment struct {
	ID              string        `json:"id"`
	OrderID         string        `json:"order_id"`
	Amount          float64       `json:"amount"`
	Status          PaymentStatus `json:"status"`
	GatewayChargeID string        `json:"gateway_charge_id,omitempty"`
	PaymentMethod   string        `json:"payment_method,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
