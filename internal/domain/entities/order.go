package entities

import "time"

// OrderStatus represents the lifecycle of a client order.
//
// Domain notes:
//   - NEW is the only state an order can be created in.
//   - Assignment moves NEW -> IN_PROGRESS and pins the operator.
//   - Attaching an analysis moves the order to AWAITING_PAYMENT.
//   - Confirming the payment moves the order to COMPLETED.
//   - COMPLETED and CANCELLED are terminal for lifecycle operations;
//     only an explicit operator override may leave them.

type OrderStatus string

const (
	OrderStatusNew             OrderStatus = "NEW"
	OrderStatusInProgress      OrderStatus = "IN_PROGRESS"
	OrderStatusAwaitingClient  OrderStatus = "AWAITING_CLIENT"
	OrderStatusAwaitingPayment OrderStatus = "AWAITING_PAYMENT"
	OrderStatusCompleted       OrderStatus = "COMPLETED"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
)

// IsValid reports whether s is one of the known order statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusNew, OrderStatusInProgress, OrderStatusAwaitingClient,
		OrderStatusAwaitingPayment, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status ends the order lifecycle.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Order is a client's request for document analysis, persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// Invariants:
//   - ClientID never changes after creation.
//   - OperatorID is set by assignment (or an explicit operator override).

type Order struct {
	ID          string      `json:"id"`
	ClientID    string      `json:"client_id"`
	OperatorID  string      `json:"operator_id,omitempty"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      OrderStatus `json:"status"`
	Price       float64     `json:"price"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderUpdate is an allow-listed field update applied to an order.
//
// Nil fields are left untouched. Which fields a caller may populate is
// decided by the use case per role; arbitrary patch maps are not accepted
// anywhere.

type OrderUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	Status      *OrderStatus
	OperatorID  *string
}

// IsZero reports whether the update carries no fields.
func (u OrderUpdate) IsZero() bool {
	return u.Title == nil && u.Description == nil && u.Price == nil && u.Status == nil && u.OperatorID == nil
}
