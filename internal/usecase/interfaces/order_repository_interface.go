package interfaces

import (
	"context"
	"legal_intake/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Lifecycle-coupled writes live here so their guard check and mutation
// commit as one unit:
//   - AssignIfNew is a compare-and-set on status = NEW; when the condition
//     fails (already assigned, concurrent winner) it returns a zero-value
//     order and no error.
//   - DeleteWithChildren removes the order together with its analysis and
//     payment rows in a single transaction (cascade ownership).

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Order, error)
	AssignIfNew(ctx context.Context, orderID, operatorID string) (entities.Order, error)
	UpdateFields(ctx context.Context, id string, upd entities.OrderUpdate) (entities.Order, error)
	DeleteWithChildren(ctx context.Context, orderID string, paymentIDs []string) error
}
