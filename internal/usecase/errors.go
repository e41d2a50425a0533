package usecase

import (
	"errors"

	"legal_intake/internal/domain/authorization"
	"legal_intake/internal/domain/entities"
)

// Sentinel errors shared by the use cases. Handlers translate them into the
// HTTP taxonomy (403, 402, ...) with errors.Is.
var (
	ErrAccessDenied    = errors.New("access denied")
	ErrPaymentRequired = errors.New("payment required")
)

// authorize runs the pure decision point and folds its outcome into the
// sentinel error space so every use case gates mutations the same way.
func authorize(p entities.Principal, resourceOwnerID string, action authorization.Action, orderStatus entities.OrderStatus) error {
	switch authorization.Authorize(p, resourceOwnerID, action, orderStatus) {
	case authorization.Allow:
		return nil
	case authorization.DenyPaymentRequired:
		return ErrPaymentRequired
	default:
		return ErrAccessDenied
	}
}
