package interfaces

import (
	"context"
	"legal_intake/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// ConfirmWithOrderCompletion commits the two coupled writes of payment
// confirmation as one transaction: payment status -> COMPLETED (guarded by
// status <> COMPLETED) and order status -> COMPLETED. When the guard fails
// (already confirmed, concurrent winner) it returns a zero-value payment and
// no error.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
	ConfirmWithOrderCompletion(ctx context.Context, paymentID, orderID, gatewayChargeID string) (entities.Payment, error)
}
