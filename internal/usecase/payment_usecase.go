package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"legal_intake/internal/domain/authorization"
	"legal_intake/internal/domain/entities"
	"legal_intake/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrInvalidPaymentID        = errors.New("invalid payment id")
	ErrOrderNotAwaitingPayment = errors.New("order is not ready for payment")
	ErrOrderAlreadyPaid        = errors.New("order already paid")
	ErrPaymentAlreadyCompleted = errors.New("payment already completed")
)

// IPaymentUseCase exposes the payment ledger operations that drive the order
// lifecycle.

type IPaymentUseCase interface {
	CreateIntent(ctx context.Context, p entities.Principal, orderID string) (payment entities.Payment, created bool, err error)
	Confirm(ctx context.Context, p entities.Principal, paymentID string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, p entities.Principal, orderID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	orderRepo interfaces.IOrderRepository
	gateway   interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, orderRepo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway}
}

// CreateIntent opens a PENDING payment for an order awaiting payment.
//
// Idempotence: an existing PENDING payment for the order is returned as-is
// (created = false); an existing COMPLETED payment means the order is
// already paid. Only orders in AWAITING_PAYMENT accept an intent.
func (u *PaymentUseCase) CreateIntent(ctx context.Context, p entities.Principal, orderID string) (entities.Payment, bool, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Payment{}, false, ErrInvalidOrderID
	}
	log.Printf("[payment][usecase] create-intent start order_id=%s principal=%s", orderID, p.ID)

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, false, err
	}
	if order.ID == "" {
		return entities.Payment{}, false, ErrOrderNotFound
	}
	if err := authorize(p, order.ClientID, authorization.ActionPaymentIntentCreate, order.Status); err != nil {
		log.Printf("[payment][usecase] create-intent denied order_id=%s principal=%s role=%s", orderID, p.ID, p.Role)
		return entities.Payment{}, false, err
	}
	if order.Status != entities.OrderStatusAwaitingPayment {
		log.Printf("[payment][usecase] create-intent wrong status order_id=%s status=%s", orderID, order.Status)
		return entities.Payment{}, false, ErrOrderNotAwaitingPayment
	}

	existing, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, false, err
	}
	for _, pay := range existing {
		if pay.Status == entities.PaymentStatusCompleted {
			return entities.Payment{}, false, ErrOrderAlreadyPaid
		}
	}
	for _, pay := range existing {
		if pay.Status == entities.PaymentStatusPending {
			log.Printf("[payment][usecase] create-intent idempotent order_id=%s payment_id=%s", orderID, pay.ID)
			return pay, false, nil
		}
	}

	now := time.Now().UTC()
	payment := entities.Payment{
		ID:            uuid.NewString(),
		OrderID:       order.ID,
		Amount:        order.Price,
		Status:        entities.PaymentStatusPending,
		PaymentMethod: "mercadopago",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if u.gateway != nil {
		chargeID, err := u.registerIntent(ctx, order, payment.ID)
		if err != nil {
			log.Printf("[payment][usecase] gateway intent failed order_id=%s err=%v", orderID, err)
			return entities.Payment{}, false, err
		}
		payment.GatewayChargeID = chargeID
	}

	created, err := u.repo.Create(ctx, payment)
	if err != nil {
		return entities.Payment{}, false, err
	}
	log.Printf("[payment][usecase] create-intent success order_id=%s payment_id=%s amount=%.2f", orderID, created.ID, created.Amount)
	return created, true, nil
}

// Confirm marks the payment COMPLETED and completes its order. The two
// writes commit as one transaction; confirming twice fails.
func (u *PaymentUseCase) Confirm(ctx context.Context, p entities.Principal, paymentID string) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	payment, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if payment.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	order, err := u.orderRepo.GetByID(ctx, payment.OrderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if order.ID == "" {
		return entities.Payment{}, ErrOrderNotFound
	}
	if err := authorize(p, order.ClientID, authorization.ActionPaymentConfirm, order.Status); err != nil {
		log.Printf("[payment][usecase] confirm denied payment_id=%s principal=%s role=%s", paymentID, p.ID, p.Role)
		return entities.Payment{}, err
	}
	if payment.Status == entities.PaymentStatusCompleted {
		return entities.Payment{}, ErrPaymentAlreadyCompleted
	}
	if order.Status != entities.OrderStatusAwaitingPayment {
		log.Printf("[payment][usecase] confirm wrong order status payment_id=%s order_id=%s status=%s", paymentID, order.ID, order.Status)
		return entities.Payment{}, ErrOrderNotAwaitingPayment
	}

	chargeID := payment.GatewayChargeID
	if chargeID == "" {
		chargeID = fmt.Sprintf("mock_charge_%s", payment.ID)
	}
	confirmed, err := u.repo.ConfirmWithOrderCompletion(ctx, payment.ID, order.ID, chargeID)
	if err != nil {
		return entities.Payment{}, err
	}
	if confirmed.ID == "" {
		// Lost a concurrent confirmation or cancellation; the transaction
		// guards are the arbiter.
		return entities.Payment{}, ErrPaymentAlreadyCompleted
	}
	log.Printf("[payment][usecase] confirmed payment_id=%s order_id=%s by=%s", confirmed.ID, order.ID, p.ID)
	return confirmed, nil
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, p entities.Principal, orderID string) ([]entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, ErrOrderNotFound
	}
	if err := authorize(p, order.ClientID, authorization.ActionPaymentRead, order.Status); err != nil {
		return nil, err
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

// registerIntent creates the provider-side charge for the intent. The charge
// stays unconfirmed on the provider too; only the id is kept for
// reconciliation.
func (u *PaymentUseCase) registerIntent(ctx context.Context, order entities.Order, paymentID string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"transaction_amount": order.Price,
		"description":        fmt.Sprintf("Order %s analysis", order.ID),
		"external_reference": paymentID,
	})
	if err != nil {
		return "", err
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		return "", err
	}
	log.Printf("[payment][usecase] gateway intent registered payment_id=%s provider_payment_id=%s provider_status=%s", paymentID, providerID, providerStatus)
	return providerID, nil
}
