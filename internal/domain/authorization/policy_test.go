package authorization

import (
	"testing"

	"legal_intake/internal/domain/entities"
)

func TestAuthorize_AdminAllowsEverything(t *testing.T) {
	admin := entities.Principal{ID: "a-1", Role: entities.RoleAdmin}
	actions := []Action{
		ActionOrderCreate, ActionOrderRead, ActionOrderClientEdit,
		ActionOrderOperatorEdit, ActionOrderAssign, ActionOrderDelete,
		ActionAnalysisCreate, ActionAnalysisUpdate, ActionAnalysisPreviewRead,
		ActionAnalysisFullRead, ActionPaymentIntentCreate, ActionPaymentConfirm,
		ActionPaymentRead,
	}
	for _, action := range actions {
		if d := Authorize(admin, "someone-else", action, entities.OrderStatusNew); d != Allow {
			t.Fatalf("expected Allow for admin %s, got %v", action, d)
		}
	}
}

func TestAuthorize_Operator(t *testing.T) {
	op := entities.Principal{ID: "op-1", Role: entities.RoleOperator}

	t.Run("staff actions allowed on any order", func(t *testing.T) {
		for _, action := range []Action{
			ActionOrderRead, ActionOrderOperatorEdit, ActionOrderAssign,
			ActionAnalysisCreate, ActionAnalysisFullRead, ActionPaymentConfirm,
		} {
			if d := Authorize(op, "client-7", action, entities.OrderStatusInProgress); d != Allow {
				t.Fatalf("expected Allow for operator %s, got %v", action, d)
			}
		}
	})

	t.Run("order create denied", func(t *testing.T) {
		if d := Authorize(op, "op-1", ActionOrderCreate, ""); d != Deny {
			t.Fatalf("expected Deny, got %v", d)
		}
	})

	t.Run("client edit denied", func(t *testing.T) {
		if d := Authorize(op, "client-7", ActionOrderClientEdit, entities.OrderStatusNew); d != Deny {
			t.Fatalf("expected Deny, got %v", d)
		}
	})

	t.Run("full analysis read ignores payment state", func(t *testing.T) {
		if d := Authorize(op, "client-7", ActionAnalysisFullRead, entities.OrderStatusAwaitingPayment); d != Allow {
			t.Fatalf("expected Allow, got %v", d)
		}
	})
}

func TestAuthorize_Client(t *testing.T) {
	owner := entities.Principal{ID: "client-7", Role: entities.RoleClient}
	stranger := entities.Principal{ID: "client-9", Role: entities.RoleClient}

	t.Run("create allowed", func(t *testing.T) {
		if d := Authorize(owner, "", ActionOrderCreate, ""); d != Allow {
			t.Fatalf("expected Allow, got %v", d)
		}
	})

	t.Run("own resources allowed", func(t *testing.T) {
		for _, action := range []Action{
			ActionOrderRead, ActionOrderClientEdit, ActionOrderDelete,
			ActionAnalysisPreviewRead, ActionPaymentIntentCreate, ActionPaymentRead,
		} {
			if d := Authorize(owner, "client-7", action, entities.OrderStatusInProgress); d != Allow {
				t.Fatalf("expected Allow for owner %s, got %v", action, d)
			}
		}
	})

	t.Run("foreign resources denied", func(t *testing.T) {
		for _, action := range []Action{
			ActionOrderRead, ActionOrderClientEdit, ActionOrderDelete,
			ActionAnalysisPreviewRead, ActionAnalysisFullRead, ActionPaymentIntentCreate,
		} {
			if d := Authorize(stranger, "client-7", action, entities.OrderStatusCompleted); d != Deny {
				t.Fatalf("expected Deny for stranger %s, got %v", action, d)
			}
		}
	})

	t.Run("status and assignment mutations denied", func(t *testing.T) {
		for _, action := range []Action{ActionOrderOperatorEdit, ActionOrderAssign, ActionAnalysisCreate, ActionAnalysisUpdate} {
			if d := Authorize(owner, "client-7", action, entities.OrderStatusNew); d != Deny {
				t.Fatalf("expected Deny for client %s, got %v", action, d)
			}
		}
	})

	t.Run("full analysis gated until completed", func(t *testing.T) {
		for _, status := range []entities.OrderStatus{
			entities.OrderStatusNew, entities.OrderStatusInProgress,
			entities.OrderStatusAwaitingClient, entities.OrderStatusAwaitingPayment,
			entities.OrderStatusCancelled,
		} {
			if d := Authorize(owner, "client-7", ActionAnalysisFullRead, status); d != DenyPaymentRequired {
				t.Fatalf("expected DenyPaymentRequired at %s, got %v", status, d)
			}
		}
		if d := Authorize(owner, "client-7", ActionAnalysisFullRead, entities.OrderStatusCompleted); d != Allow {
			t.Fatalf("expected Allow once completed, got %v", d)
		}
	})
}

func TestAuthorize_UnknownRoleDenied(t *testing.T) {
	ghost := entities.Principal{ID: "x", Role: "SUPPORT"}
	if d := Authorize(ghost, "x", ActionOrderRead, entities.OrderStatusNew); d != Deny {
		t.Fatalf("expected Deny, got %v", d)
	}
	if d := Authorize(entities.Principal{}, "", ActionOrderCreate, ""); d != Deny {
		t.Fatalf("expected Deny for empty principal, got %v", d)
	}
}
