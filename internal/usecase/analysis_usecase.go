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
	ErrAnalysisNotFound      = errors.New("analysis not found")
	ErrAnalysisAlreadyExists = errors.New("analysis already exists for this order")
	ErrInvalidAnalysisInput  = errors.New("invalid analysis input")
)

// AnalysisPreview is the ungated view of an analysis: the public fragment
// plus a flag telling the client whether paid content exists.

type AnalysisPreview struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"order_id"`
	PreviewContent string    `json:"preview_content,omitempty"`
	HasFullContent bool      `json:"has_full_content"`
	CreatedAt      time.Time `json:"created_at"`
}

// IAnalysisUseCase exposes analysis authoring and the visibility gate.

type IAnalysisUseCase interface {
	Create(ctx context.Context, p entities.Principal, orderID, previewContent, fullContent string) (entities.Analysis, error)
	Preview(ctx context.Context, p entities.Principal, orderID string) (AnalysisPreview, error)
	Full(ctx context.Context, p entities.Principal, orderID string) (entities.Analysis, error)
	UpdateContent(ctx context.Context, p entities.Principal, orderID string, upd entities.AnalysisUpdate) (entities.Analysis, error)
}

type AnalysisUseCase struct {
	repo      interfaces.IAnalysisRepository
	orderRepo interfaces.IOrderRepository
}

var _ IAnalysisUseCase = (*AnalysisUseCase)(nil)

func NewAnalysisUseCase(repo interfaces.IAnalysisRepository, orderRepo interfaces.IOrderRepository) *AnalysisUseCase {
	return &AnalysisUseCase{repo: repo, orderRepo: orderRepo}
}

// Create attaches the analysis to its order and moves the order to
// AWAITING_PAYMENT. The insert and the status change commit together; the
// duplicate check rides on the analyses table keying by order id.
func (u *AnalysisUseCase) Create(ctx context.Context, p entities.Principal, orderID, previewContent, fullContent string) (entities.Analysis, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Analysis{}, ErrInvalidOrderID
	}
	if strings.TrimSpace(fullContent) == "" {
		return entities.Analysis{}, ErrInvalidAnalysisInput
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Analysis{}, err
	}
	if order.ID == "" {
		return entities.Analysis{}, ErrOrderNotFound
	}
	if err := authorize(p, order.ClientID, authorization.ActionAnalysisCreate, order.Status); err != nil {
		log.Printf("[analysis][usecase] create denied order_id=%s principal=%s role=%s", orderID, p.ID, p.Role)
		return entities.Analysis{}, err
	}
	if order.Status.IsTerminal() {
		log.Printf("[analysis][usecase] create rejected order_id=%s status=%s", orderID, order.Status)
		return entities.Analysis{}, ErrOrderTerminal
	}

	if existing, err := u.repo.GetByOrderID(ctx, orderID); err != nil {
		return entities.Analysis{}, err
	} else if existing.ID != "" {
		return entities.Analysis{}, ErrAnalysisAlreadyExists
	}

	now := time.Now().UTC()
	a := entities.Analysis{
		ID:             uuid.NewString(),
		OrderID:        order.ID,
		PreviewContent: previewContent,
		FullContent:    fullContent,
		CreatedBy:      p.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.CreateWithOrderAwaitingPayment(ctx, a)
	if err != nil {
		return entities.Analysis{}, err
	}
	if created.ID == "" {
		// Lost a concurrent create; the conditional put is the arbiter.
		return entities.Analysis{}, ErrAnalysisAlreadyExists
	}
	log.Printf("[analysis][usecase] created analysis_id=%s order_id=%s by=%s", created.ID, created.OrderID, p.ID)
	return created, nil
}

// Preview returns the public fragment for anyone passing the ownership/role
// check, regardless of payment state.
func (u *AnalysisUseCase) Preview(ctx context.Context, p entities.Principal, orderID string) (AnalysisPreview, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return AnalysisPreview{}, err
	}
	if err := authorize(p, order.ClientID, authorization.ActionAnalysisPreviewRead, order.Status); err != nil {
		return AnalysisPreview{}, err
	}
	a, err := u.loadAnalysis(ctx, order.ID)
	if err != nil {
		return AnalysisPreview{}, err
	}
	return AnalysisPreview{
		ID:             a.ID,
		OrderID:        a.OrderID,
		PreviewContent: a.PreviewContent,
		HasFullContent: a.HasFullContent(),
		CreatedAt:      a.CreatedAt,
	}, nil
}

// Full returns the paid content. Staff always pass; the owning client passes
// only once the order is COMPLETED (ErrPaymentRequired before that); anyone
// else is denied.
func (u *AnalysisUseCase) Full(ctx context.Context, p entities.Principal, orderID string) (entities.Analysis, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Analysis{}, err
	}
	if err := authorize(p, order.ClientID, authorization.ActionAnalysisFullRead, order.Status); err != nil {
		log.Printf("[analysis][usecase] full read denied order_id=%s principal=%s role=%s status=%s err=%v", orderID, p.ID, p.Role, order.Status, err)
		return entities.Analysis{}, err
	}
	return u.loadAnalysis(ctx, order.ID)
}

func (u *AnalysisUseCase) UpdateContent(ctx context.Context, p entities.Principal, orderID string, upd entities.AnalysisUpdate) (entities.Analysis, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Analysis{}, err
	}
	if err := authorize(p, order.ClientID, authorization.ActionAnalysisUpdate, order.Status); err != nil {
		return entities.Analysis{}, err
	}
	if upd.IsZero() {
		return entities.Analysis{}, ErrEmptyUpdate
	}
	if upd.FullContent != nil && strings.TrimSpace(*upd.FullContent) == "" {
		return entities.Analysis{}, ErrInvalidAnalysisInput
	}

	updated, err := u.repo.UpdateContentByOrderID(ctx, order.ID, upd)
	if err != nil {
		return entities.Analysis{}, err
	}
	if updated.ID == "" {
		return entities.Analysis{}, ErrAnalysisNotFound
	}
	log.Printf("[analysis][usecase] updated order_id=%s by=%s", order.ID, p.ID)
	return updated, nil
}

func (u *AnalysisUseCase) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *AnalysisUseCase) loadAnalysis(ctx context.Context, orderID string) (entities.Analysis, error) {
	a, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Analysis{}, err
	}
	if a.ID == "" {
		return entities.Analysis{}, ErrAnalysisNotFound
	}
	return a, nil
}
