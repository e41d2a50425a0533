package authorization

import "legal_intake/internal/domain/entities"

// Action enumerates every operation the service gates.

type Action string

const (
	ActionOrderCreate       Action = "order:create"
	ActionOrderRead         Action = "order:read"
	ActionOrderClientEdit   Action = "order:client-edit"
	ActionOrderOperatorEdit Action = "order:operator-edit"
	ActionOrderAssign       Action = "order:assign"
	ActionOrderDelete       Action = "order:delete"

	ActionAnalysisCreate      Action = "analysis:create"
	ActionAnalysisUpdate      Action = "analysis:update"
	ActionAnalysisPreviewRead Action = "analysis:read-preview"
	ActionAnalysisFullRead    Action = "analysis:read-full"

	ActionPaymentIntentCreate Action = "payment:create-intent"
	ActionPaymentConfirm      Action = "payment:confirm"
	ActionPaymentRead         Action = "payment:read"
)

// Decision is the outcome of an authorization check.

type Decision int

const (
	Deny Decision = iota
	Allow
	// DenyPaymentRequired applies only to an owner reading gated analysis
	// content before the order is paid; it maps to HTTP 402 instead of 403.
	DenyPaymentRequired
)

type rule func(p entities.Principal, resourceOwnerID string, orderStatus entities.OrderStatus) Decision

func allowAlways(entities.Principal, string, entities.OrderStatus) Decision {
	return Allow
}

func allowOwner(p entities.Principal, ownerID string, _ entities.OrderStatus) Decision {
	if p.ID != "" && p.ID == ownerID {
		return Allow
	}
	return Deny
}

// clientPolicy is the rule table for the CLIENT role. Actions absent from
// the table are denied. Clients never get order:operator-edit or
// order:assign: status and operator assignment are staff-only mutations.
var clientPolicy = map[Action]rule{
	ActionOrderCreate:         allowAlways, // creates for self only; the use case sets client_id = principal id
	ActionOrderRead:           allowOwner,
	ActionOrderClientEdit:     allowOwner,
	ActionOrderDelete:         allowOwner,
	ActionAnalysisPreviewRead: allowOwner,
	ActionAnalysisFullRead: func(p entities.Principal, ownerID string, status entities.OrderStatus) Decision {
		if p.ID == "" || p.ID != ownerID {
			return Deny
		}
		if status != entities.OrderStatusCompleted {
			return DenyPaymentRequired
		}
		return Allow
	},
	ActionPaymentIntentCreate: allowOwner,
	ActionPaymentConfirm:      allowOwner,
	ActionPaymentRead:         allowOwner,
}

// operatorPolicy covers the OPERATOR role: all reads, assignment, analysis
// authoring and order edits (including direct status/operator overrides).
// Operators do not create orders on behalf of clients.
var operatorPolicy = map[Action]rule{
	ActionOrderRead:           allowAlways,
	ActionOrderOperatorEdit:   allowAlways,
	ActionOrderAssign:         allowAlways,
	ActionOrderDelete:         allowAlways,
	ActionAnalysisCreate:      allowAlways,
	ActionAnalysisUpdate:      allowAlways,
	ActionAnalysisPreviewRead: allowAlways,
	ActionAnalysisFullRead:    allowAlways,
	ActionPaymentIntentCreate: allowAlways,
	ActionPaymentConfirm:      allowAlways,
	ActionPaymentRead:         allowAlways,
}

// Authorize is the single access control decision point.
//
// It is a pure function of (principal, resource owner, action, order status)
// and must stay free of I/O so it can be tested without a persistence layer.
// Every entry point consults it before touching the store.
//
// Evaluation order: ADMIN is allowed unconditionally; OPERATOR and CLIENT
// are looked up in their rule tables; anything else is denied.
func Authorize(p entities.Principal, resourceOwnerID string, action Action, orderStatus entities.OrderStatus) Decision {
	switch p.Role {
	case entities.RoleAdmin:
		return Allow
	case entities.RoleOperator:
		if r, ok := operatorPolicy[action]; ok {
			return r(p, resourceOwnerID, orderStatus)
		}
		return Deny
	case entities.RoleClient:
		if r, ok := clientPolicy[action]; ok {
			return r(p, resourceOwnerID, orderStatus)
		}
		return Deny
	}
	return Deny
}
