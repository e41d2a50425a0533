package handlers

import (
	"errors"
	"log"
	"net/http"

	request "legal_intake/internal/adapter/http/dto/request"
	response "legal_intake/internal/adapter/http/dto/response"
	"legal_intake/internal/domain/entities"
	"legal_intake/internal/usecase"
	"legal_intake/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for intake orders and their lifecycle.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder opens a new order for the authenticated client.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var payload request.OrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidOrderPayload)
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), p, payload.Title, payload.Description, payload.Price)
	if err != nil {
		writeAppError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListOrders returns the orders visible to the principal, optionally
// narrowed by ?status=.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	orders, err := h.usecase.List(c.Request.Context(), p, entities.OrderStatus(c.Query("status")))
	if err != nil {
		writeAppError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	order, err := h.usecase.GetByID(c.Request.Context(), p, c.Param("order_id"))
	if err != nil {
		writeAppError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateOrder routes the edit to the role-appropriate command. A client
// payload touching status, operator or price is rejected with Forbidden
// before any lookup happens.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var payload request.OrderUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidOrderPayload)
		return
	}
	if payload.IsEmpty() {
		writeAppError(c, pkg.NewDomainErrorSimple("EMPTY_UPDATE", "No fields to update", http.StatusBadRequest))
		return
	}

	orderID := c.Param("order_id")
	if p.Role == entities.RoleClient {
		if payload.HasPrivilegedFields() {
			log.Printf("[order][handler] client attempted privileged fields order_id=%s principal=%s", orderID, p.ID)
			writeAppError(c, pkg.NewDomainErrorSimple("FORBIDDEN", "Clients cannot change status, price or operator", http.StatusForbidden))
			return
		}
		order, err := h.usecase.ClientUpdate(c.Request.Context(), p, orderID, usecase.ClientOrderUpdate{
			Title:       payload.Title,
			Description: payload.Description,
		})
		if err != nil {
			writeAppError(c, mapOrderError(err))
			return
		}
		c.JSON(http.StatusOK, response.FromOrder(order))
		return
	}

	var status *entities.OrderStatus
	if payload.Status != nil {
		s := entities.OrderStatus(*payload.Status)
		status = &s
	}
	order, err := h.usecase.OperatorUpdate(c.Request.Context(), p, orderID, usecase.OperatorOrderUpdate{
		Title:       payload.Title,
		Description: payload.Description,
		Price:       payload.Price,
		Status:      status,
		OperatorID:  payload.OperatorID,
	})
	if err != nil {
		writeAppError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// AssignOrder claims a NEW order for the calling operator.
func (h *OrderHandler) AssignOrder(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	order, err := h.usecase.Assign(c.Request.Context(), p, c.Param("order_id"))
	if err != nil {
		writeAppError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), p, c.Param("order_id")); err != nil {
		writeAppError(c, mapOrderError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderTitle),
		errors.Is(err, usecase.ErrInvalidOrderPrice), errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrEmptyUpdate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotNew):
		return pkg.NewDomainErrorSimple("ORDER_NOT_NEW", "Order is not in NEW status", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderTerminal):
		return pkg.NewDomainErrorSimple("ORDER_TERMINAL", "Order is in a terminal status", http.StatusConflict)
	case errors.Is(err, usecase.ErrAccessDenied):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Access denied", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
