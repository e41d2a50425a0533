package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"legal_intake/internal/domain/authorization"
	"legal_intake/internal/domain/entities"
	"legal_intake/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidOrderTitle = errors.New("invalid order title")
	ErrInvalidOrderPrice = errors.New("invalid order price")
	ErrOrderNotNew       = errors.New("order is not in NEW status")
	ErrOrderTerminal     = errors.New("order is in a terminal status")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrEmptyUpdate       = errors.New("no fields to update")
)

// ClientOrderUpdate is the edit command available to the owning client.
// Status and assignment are deliberately absent.

type ClientOrderUpdate struct {
	Title       *string
	Description *string
}

// OperatorOrderUpdate is the privileged edit command. Status and operator
// overrides bypass the transition table; every such override is an explicit,
// logged force-set rather than a silent generic patch.

type OperatorOrderUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	Status      *entities.OrderStatus
	OperatorID  *string
}

// IOrderUseCase exposes the order lifecycle operations.

type IOrderUseCase interface {
	Create(ctx context.Context, p entities.Principal, title, description string, price float64) (entities.Order, error)
	GetByID(ctx context.Context, p entities.Principal, id string) (entities.Order, error)
	List(ctx context.Context, p entities.Principal, status entities.OrderStatus) ([]entities.Order, error)
	Assign(ctx context.Context, p entities.Principal, orderID string) (entities.Order, error)
	ClientUpdate(ctx context.Context, p entities.Principal, orderID string, upd ClientOrderUpdate) (entities.Order, error)
	OperatorUpdate(ctx context.Context, p entities.Principal, orderID string, upd OperatorOrderUpdate) (entities.Order, error)
	Delete(ctx context.Context, p entities.Principal, orderID string) error
}

type OrderUseCase struct {
	repo        interfaces.IOrderRepository
	paymentRepo interfaces.IPaymentRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, paymentRepo interfaces.IPaymentRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, paymentRepo: paymentRepo}
}

func (u *OrderUseCase) Create(ctx context.Context, p entities.Principal, title, description string, price float64) (entities.Order, error) {
	if err := authorize(p, p.ID, authorization.ActionOrderCreate, ""); err != nil {
		log.Printf("[order][usecase] create denied principal=%s role=%s", p.ID, p.Role)
		return entities.Order{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Order{}, ErrInvalidOrderTitle
	}
	if price < 0 {
		return entities.Order{}, ErrInvalidOrderPrice
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:          uuid.NewString(),
		ClientID:    p.ID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Status:      entities.OrderStatusNew,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] created order_id=%s client_id=%s", created.ID, created.ClientID)
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, p entities.Principal, id string) (entities.Order, error) {
	o, err := u.load(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if err := authorize(p, o.ClientID, authorization.ActionOrderRead, o.Status); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

// List returns the orders visible to the principal: clients see their own,
// staff see everything. An optional status narrows the result.
func (u *OrderUseCase) List(ctx context.Context, p entities.Principal, status entities.OrderStatus) ([]entities.Order, error) {
	if status != "" && !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	var (
		orders []entities.Order
		err    error
	)
	if p.Role.IsStaff() {
		orders, err = u.repo.List(ctx)
	} else if p.Role == entities.RoleClient {
		orders, err = u.repo.ListByClientID(ctx, p.ID)
	} else {
		return nil, ErrAccessDenied
	}
	if err != nil {
		return nil, err
	}
	if status == "" {
		return orders, nil
	}

	filtered := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// Assign moves a NEW order to IN_PROGRESS and pins the calling operator.
// The status guard and the write are one conditional update, so of two
// concurrent callers exactly one wins; the loser sees ErrOrderNotNew.
func (u *OrderUseCase) Assign(ctx context.Context, p entities.Principal, orderID string) (entities.Order, error) {
	o, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if err := authorize(p, o.ClientID, authorization.ActionOrderAssign, o.Status); err != nil {
		log.Printf("[order][usecase] assign denied order_id=%s principal=%s role=%s", orderID, p.ID, p.Role)
		return entities.Order{}, err
	}

	assigned, err := u.repo.AssignIfNew(ctx, o.ID, p.ID)
	if err != nil {
		return entities.Order{}, err
	}
	if assigned.ID == "" {
		log.Printf("[order][usecase] assign lost guard order_id=%s status=%s", o.ID, o.Status)
		return entities.Order{}, ErrOrderNotNew
	}
	log.Printf("[order][usecase] assigned order_id=%s operator_id=%s", assigned.ID, assigned.OperatorID)
	return assigned, nil
}

func (u *OrderUseCase) ClientUpdate(ctx context.Context, p entities.Principal, orderID string, upd ClientOrderUpdate) (entities.Order, error) {
	o, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if err := authorize(p, o.ClientID, authorization.ActionOrderClientEdit, o.Status); err != nil {
		return entities.Order{}, err
	}
	if o.Status.IsTerminal() {
		return entities.Order{}, ErrOrderTerminal
	}

	fields := entities.OrderUpdate{Title: upd.Title, Description: upd.Description}
	if fields.IsZero() {
		return entities.Order{}, ErrEmptyUpdate
	}
	if fields.Title != nil && strings.TrimSpace(*fields.Title) == "" {
		return entities.Order{}, ErrInvalidOrderTitle
	}
	return u.applyUpdate(ctx, o.ID, fields)
}

func (u *OrderUseCase) OperatorUpdate(ctx context.Context, p entities.Principal, orderID string, upd OperatorOrderUpdate) (entities.Order, error) {
	o, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if err := authorize(p, o.ClientID, authorization.ActionOrderOperatorEdit, o.Status); err != nil {
		return entities.Order{}, err
	}

	fields := entities.OrderUpdate{
		Title:       upd.Title,
		Description: upd.Description,
		Price:       upd.Price,
		Status:      upd.Status,
		OperatorID:  upd.OperatorID,
	}
	if fields.IsZero() {
		return entities.Order{}, ErrEmptyUpdate
	}
	if fields.Status != nil {
		if !fields.Status.IsValid() {
			return entities.Order{}, ErrInvalidStatus
		}
		// Administrative override outside the transition table.
		log.Printf("[order][usecase] force-set status order_id=%s from=%s to=%s by=%s role=%s", o.ID, o.Status, *fields.Status, p.ID, p.Role)
	}
	if fields.OperatorID != nil {
		log.Printf("[order][usecase] force-set operator order_id=%s operator_id=%s by=%s", o.ID, *fields.OperatorID, p.ID)
	}
	if fields.Price != nil && *fields.Price < 0 {
		return entities.Order{}, ErrInvalidOrderPrice
	}
	return u.applyUpdate(ctx, o.ID, fields)
}

// Delete removes the order together with its analysis and payments; the
// cascade is a single transaction against the store.
func (u *OrderUseCase) Delete(ctx context.Context, p entities.Principal, orderID string) error {
	o, err := u.load(ctx, orderID)
	if err != nil {
		return err
	}
	if err := authorize(p, o.ClientID, authorization.ActionOrderDelete, o.Status); err != nil {
		return err
	}

	payments, err := u.paymentRepo.ListByOrderID(ctx, o.ID)
	if err != nil {
		return err
	}
	paymentIDs := make([]string, 0, len(payments))
	for _, pay := range payments {
		paymentIDs = append(paymentIDs, pay.ID)
	}

	if err := u.repo.DeleteWithChildren(ctx, o.ID, paymentIDs); err != nil {
		return err
	}
	log.Printf("[order][usecase] deleted order_id=%s payments=%d by=%s", o.ID, len(paymentIDs), p.ID)
	return nil
}

func (u *OrderUseCase) load(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) applyUpdate(ctx context.Context, id string, fields entities.OrderUpdate) (entities.Order, error) {
	updated, err := u.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}
