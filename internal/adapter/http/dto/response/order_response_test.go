package response

import (
	"testing"
	"time"

	"legal_intake/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:         "ord-1",
		ClientID:   "client-1",
		OperatorID: "op-1",
		Title:      "Contract review",
		Status:     entities.OrderStatusInProgress,
		Price:      150.5,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res := FromOrder(o)
	if res.ID != "ord-1" || res.ClientID != "client-1" || res.OperatorID != "op-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "IN_PROGRESS" || res.Price != 150.5 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromOrders_Empty(t *testing.T) {
	res := FromOrders(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res)
	}
}
