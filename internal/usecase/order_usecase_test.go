package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"legal_intake/internal/domain/entities"
	mock_interfaces "legal_intake/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	client   = entities.Principal{ID: "client-1", Role: entities.RoleClient}
	operator = entities.Principal{ID: "op-1", Role: entities.RoleOperator}
	admin    = entities.Principal{ID: "adm-1", Role: entities.RoleAdmin}
)

func newOrder(id, clientID string, status entities.OrderStatus) entities.Order {
	now := time.Now().UTC()
	return entities.Order{
		ID:        id,
		ClientID:  clientID,
		Title:     "Contract review",
		Status:    status,
		Price:     150,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("operator cannot create", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.Create(context.Background(), operator, "Contract review", "", 100)
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})

	t.Run("empty title", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.Create(context.Background(), client, "   ", "", 100)
		if !errors.Is(err, ErrInvalidOrderTitle) {
			t.Fatalf("expected ErrInvalidOrderTitle, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.Create(context.Background(), client, "Contract review", "", -1)
		if !errors.Is(err, ErrInvalidOrderPrice) {
			t.Fatalf("expected ErrInvalidOrderPrice, got %v", err)
		}
	})

	t.Run("success starts in NEW owned by caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.ClientID != client.ID || o.Status != entities.OrderStatusNew {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Title != "Contract review" || o.Price != 150.5 {
					t.Fatalf("unexpected fields: %+v", o)
				}
				if o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return o, nil
			},
		)

		res, err := uc.Create(context.Background(), client, " Contract review ", "notes", 150.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OrderStatusNew {
			t.Fatalf("expected NEW, got %s", res.Status)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), client, "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), client, "ord-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("foreign client denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(newOrder("ord-1", "someone-else", entities.OrderStatusNew), nil)

		_, err := uc.GetByID(context.Background(), client, "ord-1")
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})

	t.Run("operator reads any order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(newOrder("ord-1", "someone-else", entities.OrderStatusInProgress), nil)

		res, err := uc.GetByID(context.Background(), operator, "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "ord-1" {
			t.Fatalf("unexpected order: %+v", res)
		}
	})
}

func TestOrderUseCase_List(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.List(context.Background(), operator, "BOGUS")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("client sees only own orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().ListByClientID(gomock.Any(), client.ID).Return([]entities.Order{
			newOrder("ord-1", client.ID, entities.OrderStatusNew),
		}, nil)

		res, err := uc.List(context.Background(), client, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "ord-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("staff list with status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Order{
			newOrder("ord-1", "c1", entities.OrderStatusNew),
			newOrder("ord-2", "c2", entities.OrderStatusInProgress),
			newOrder("ord-3", "c3", entities.OrderStatusNew),
		}, nil)

		res, err := uc.List(context.Background(), operator, entities.OrderStatusNew)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(res))
		}
	})
}

func TestOrderUseCase_Assign(t *testing.T) {
	t.Run("client cannot assign", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(newOrder("ord-1", client.ID, entities.OrderStatusNew), nil)

		_, err := uc.Assign(context.Background(), client, "ord-1")
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		_, err := uc.Assign(context.Background(), operator, "ord-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("guard lost means not new", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		// Read sees NEW but a concurrent assign wins before the conditional write.
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(newOrder("ord-1", client.ID, entities.OrderStatusNew), nil)
		repo.EXPECT().AssignIfNew(gomock.Any(), "ord-1", operator.ID).Return(entities.Order{}, nil)

		_, err := uc.Assign(context.Background(), operator, "ord-1")
		if !errors.Is(err, ErrOrderNotNew) {
			t.Fatalf("expected ErrOrderNotNew, got %v", err)
		}
	})

	t.Run("success pins operator and moves to IN_PROGRESS", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		assigned := newOrder("ord-1", client.ID, entities.OrderStatusInProgress)
		assigned.OperatorID = operator.ID
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(newOrder("ord-1", client.ID, entities.OrderStatusNew), nil)
		repo.EXPECT().AssignIfNew(gomock.Any(), "ord-1", operator.ID).Return(assigned, nil)

		res, err := uc.Assign(context.Background(), operator, "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OrderStatusInProgress || res.OperatorID != operator.ID {
			t.Fatalf("unexpected order: %+v", res)
		}
	})
}

func TestOrderUseCase_ClientUpdate(t *testing.T) {
	title := "Updated title"

	t.Run("foreign order denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(newOrder("ord-1", "someone-else", entities.OrderStatusNew), nil)

		_, err := uc.ClientUpdate(context.Background(), client, "ord-1", ClientOrderUpdate{Title: &title})
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})

	t.Run("terminal order rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(newOrder("ord-1", client.ID, entities.OrderStatusCompleted), nil)

		_, err := uc.ClientUpdate(context.Background(), client, "ord-1", ClientOrderUpdate{Title: &title})
		if !errors.Is(err, ErrOrderTerminal) {
			t.Fatalf("expected ErrOrderTerminal, got %v", err)
		}
	})

	t.Run("empty update rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(newOrder("ord-1", client.ID, entities.OrderStatusNew), nil)

		_, err := uc.ClientUpdate(context.Background(), client, "ord-1", ClientOrderUpdate{})
		if !errors.Is(err, ErrEmptyUpdate) {
			t.Fatalf("expected ErrEmptyUpdate, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		updated := newOrder("ord-1", client.ID, entities.OrderStatusNew)
		updated.Title = title
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(newOrder("ord-1", client.ID, entities.OrderStatusNew), nil)
		repo.EXPECT().UpdateFields(gomock.Any(), "ord-1", gomock.AssignableToTypeOf(entities.OrderUpdate{})).DoAndReturn(
			func(_ context.Context, _ string, upd entities.OrderUpdate) (entities.Order, error) {
				if upd.Title == nil || *upd.Title != title {
					t.Fatalf("unexpected update: %+v", upd)
				}
				if upd.Status != nil || upd.Price != nil || upd.OperatorID != nil {
					t.Fatalf("privileged fields must not leak into client updates: %+v", upd)
				}
				return updated, nil
			},
		)

		res, err := uc.ClientUpdate(context.Background(), client, "ord-1", ClientOrderUpdate{Title: &title})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Title != title {
			t.Fatalf("unexpected order: %+v", res)
		}
	})
}

func TestOrderUseCase_OperatorUpdate(t *testing.T) {
	t.Run("client denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(newOrder("ord-1", client.ID, entities.OrderStatusNew), nil)

		price := 99.0
		_, err := uc.OperatorUpdate(context.Background(), client, "ord-1", OperatorOrderUpdate{Price: &price})
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(newOrder("ord-1", client.ID, entities.OrderStatusNew), nil)

		bad := entities.OrderStatus("BOGUS")
		_, err := uc.OperatorUpdate(context.Background(), operator, "ord-1", OperatorOrderUpdate{Status: &bad})
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("admin force-sets status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		target := entities.OrderStatusCancelled
		updated := newOrder("ord-1", client.ID, target)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(newOrder("ord-1", client.ID, entities.OrderStatusInProgress), nil)
		repo.EXPECT().UpdateFields(gomock.Any(), "ord-1", gomock.Any()).Return(updated, nil)

		res, err := uc.OperatorUpdate(context.Background(), admin, "ord-1", OperatorOrderUpdate{Status: &target})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != target {
			t.Fatalf("expected %s, got %s", target, res.Status)
		}
	})
}

func TestOrderUseCase_Delete(t *testing.T) {
	t.Run("foreign client cannot delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(newOrder("ord-1", "someone-else", entities.OrderStatusNew), nil)

		err := uc.Delete(context.Background(), client, "ord-1")
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})

	t.Run("owner cascade includes payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		payRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewOrderUseCase(repo, payRepo)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(newOrder("ord-1", client.ID, entities.OrderStatusAwaitingPayment), nil)
		payRepo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.Payment{
			{ID: "pay-1", OrderID: "ord-1", Status: entities.PaymentStatusPending},
		}, nil)
		repo.EXPECT().DeleteWithChildren(gomock.Any(), "ord-1", []string{"pay-1"}).Return(nil)

		if err := uc.Delete(context.Background(), client, "ord-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		payRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewOrderUseCase(repo, payRepo)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(newOrder("ord-1", client.ID, entities.OrderStatusNew), nil)
		payRepo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
		repo.EXPECT().DeleteWithChildren(gomock.Any(), "ord-1", []string{}).Return(errors.New("db"))

		err := uc.Delete(context.Background(), client, "ord-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
