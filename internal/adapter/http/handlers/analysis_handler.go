package handlers

import (
	"errors"
	"net/http"

	request "legal_intake/internal/adapter/http/dto/request"
	response "legal_intake/internal/adapter/http/dto/response"
	"legal_intake/internal/domain/entities"
	"legal_intake/internal/usecase"
	"legal_intake/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAnalysisPayload = pkg.NewDomainErrorSimple("INVALID_ANALYSIS_INPUT", "Invalid analysis payload", http.StatusBadRequest)

// AnalysisHandler handles HTTP requests for analyses and the visibility
// gate over their content.

type AnalysisHandler struct {
	usecase usecase.IAnalysisUseCase
}

func NewAnalysisHandler(uc usecase.IAnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{usecase: uc}
}

// CreateAnalysis attaches the analysis to its order; the order moves to
// AWAITING_PAYMENT in the same commit.
func (h *AnalysisHandler) CreateAnalysis(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var payload request.AnalysisCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidAnalysisPayload)
		return
	}

	a, err := h.usecase.Create(c.Request.Context(), p, payload.OrderID, payload.PreviewContent, payload.FullContent)
	if err != nil {
		writeAppError(c, mapAnalysisError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromAnalysis(a))
}

// GetAnalysisPreview returns the public fragment for the order owner or
// staff, regardless of payment state.
func (h *AnalysisHandler) GetAnalysisPreview(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	preview, err := h.usecase.Preview(c.Request.Context(), p, c.Param("order_id"))
	if err != nil {
		writeAppError(c, mapAnalysisError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromAnalysisPreview(preview))
}

// GetFullAnalysis returns the paid content; an owner gets 402 until the
// order is COMPLETED.
func (h *AnalysisHandler) GetFullAnalysis(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	a, err := h.usecase.Full(c.Request.Context(), p, c.Param("order_id"))
	if err != nil {
		writeAppError(c, mapAnalysisError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromAnalysis(a))
}

// UpdateAnalysis edits the analysis content (staff only).
func (h *AnalysisHandler) UpdateAnalysis(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var payload request.AnalysisUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidAnalysisPayload)
		return
	}
	if payload.IsEmpty() {
		writeAppError(c, pkg.NewDomainErrorSimple("EMPTY_UPDATE", "No fields to update", http.StatusBadRequest))
		return
	}

	a, err := h.usecase.UpdateContent(c.Request.Context(), p, c.Param("order_id"), entities.AnalysisUpdate{
		PreviewContent: payload.PreviewContent,
		FullContent:    payload.FullContent,
	})
	if err != nil {
		writeAppError(c, mapAnalysisError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromAnalysis(a))
}

func mapAnalysisError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidAnalysisInput),
		errors.Is(err, usecase.ErrEmptyUpdate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAnalysisNotFound):
		return pkg.NewDomainErrorSimple("ANALYSIS_NOT_FOUND", "Analysis not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderTerminal):
		return pkg.NewDomainErrorSimple("ORDER_TERMINAL", "Order is in a terminal status", http.StatusConflict)
	case errors.Is(err, usecase.ErrAnalysisAlreadyExists):
		return pkg.NewDomainErrorSimple("ANALYSIS_ALREADY_EXISTS", "Analysis already exists for this order", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentRequired):
		return pkg.NewDomainErrorSimple("PAYMENT_REQUIRED", "Payment required to access full analysis", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrAccessDenied):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Access denied", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
