package interfaces

import (
	"context"
	"legal_intake/internal/domain/entities"
)

// IAnalysisRepository abstracts DynamoDB persistence for Analysis.
//
// The analyses table uses the order id as PK, so at most one analysis can
// ever exist per order. CreateWithOrderAwaitingPayment inserts the analysis
// and flips the order status to AWAITING_PAYMENT in one transaction; when
// the insert condition fails (duplicate, or the order vanished) it returns a
// zero-value analysis and no error.

type IAnalysisRepository interface {
	CreateWithOrderAwaitingPayment(ctx context.Context, a entities.Analysis) (entities.Analysis, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Analysis, error)
	UpdateContentByOrderID(ctx context.Context, orderID string, upd entities.AnalysisUpdate) (entities.Analysis, error)
}
