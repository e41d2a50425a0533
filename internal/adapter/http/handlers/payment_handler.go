package handlers

import (
	"errors"
	"log"
	"net/http"

	response "legal_intake/internal/adapter/http/dto/response"
	"legal_intake/internal/usecase"
	"legal_intake/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for the payment ledger.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePaymentIntent opens (or idempotently returns) the pending payment
// for an order awaiting payment. 201 on a fresh intent, 200 when an existing
// pending payment is returned.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	orderID := c.Param("id")
	log.Printf("[payment][handler] create-intent start order_id=%s principal=%s", orderID, p.ID)

	payment, created, err := h.usecase.CreateIntent(c.Request.Context(), p, orderID)
	if err != nil {
		log.Printf("[payment][handler] create-intent failed order_id=%s err=%v", orderID, err)
		writeAppError(c, mapPaymentError(err))
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	c.JSON(status, response.FromPayment(payment))
}

// ConfirmPayment completes the payment and its order in one transaction.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	paymentID := c.Param("id")
	log.Printf("[payment][handler] confirm start payment_id=%s principal=%s", paymentID, p.ID)

	payment, err := h.usecase.Confirm(c.Request.Context(), p, paymentID)
	if err != nil {
		log.Printf("[payment][handler] confirm failed payment_id=%s err=%v", paymentID, err)
		writeAppError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// GetOrderPayments returns the payment history of an order.
func (h *PaymentHandler) GetOrderPayments(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	payments, err := h.usecase.ListByOrderID(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		writeAppError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotAwaitingPayment):
		return pkg.NewDomainErrorSimple("ORDER_NOT_AWAITING_PAYMENT", "Order is not ready for payment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order already paid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentAlreadyCompleted):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_COMPLETED", "Payment already completed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAccessDenied):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Access denied", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
