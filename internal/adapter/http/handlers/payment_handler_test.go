package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"legal_intake/internal/adapter/http/handlers/mocks"
	"legal_intake/internal/domain/entities"
	"legal_intake/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func samplePayment(status entities.PaymentStatus) entities.Payment {
	now := time.Now().UTC()
	return entities.Payment{
		ID:            "pay-1",
		OrderID:       "ord-1",
		Amount:        150,
		Status:        status,
		PaymentMethod: "mercadopago",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestPaymentHandler_CreatePaymentIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("fresh intent returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newRouter(clientPrincipal)
		r.POST("/v1/payments/:id/create-payment-intent", h.CreatePaymentIntent)

		uc.EXPECT().CreateIntent(gomock.Any(), clientPrincipal, "ord-1").Return(samplePayment(entities.PaymentStatusPending), true, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ord-1/create-payment-intent", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("existing pending intent returns 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newRouter(clientPrincipal)
		r.POST("/v1/payments/:id/create-payment-intent", h.CreatePaymentIntent)

		uc.EXPECT().CreateIntent(gomock.Any(), clientPrincipal, "ord-1").Return(samplePayment(entities.PaymentStatusPending), false, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ord-1/create-payment-intent", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("wrong order status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newRouter(clientPrincipal)
		r.POST("/v1/payments/:id/create-payment-intent", h.CreatePaymentIntent)

		uc.EXPECT().CreateIntent(gomock.Any(), clientPrincipal, "ord-1").Return(entities.Payment{}, false, usecase.ErrOrderNotAwaitingPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ord-1/create-payment-intent", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already paid maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newRouter(clientPrincipal)
		r.POST("/v1/payments/:id/create-payment-intent", h.CreatePaymentIntent)

		uc.EXPECT().CreateIntent(gomock.Any(), clientPrincipal, "ord-1").Return(entities.Payment{}, false, usecase.ErrOrderAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ord-1/create-payment-intent", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if res["code"] != "ORDER_ALREADY_PAID" {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("foreign client forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newRouter(clientPrincipal)
		r.POST("/v1/payments/:id/create-payment-intent", h.CreatePaymentIntent)

		uc.EXPECT().CreateIntent(gomock.Any(), clientPrincipal, "ord-1").Return(entities.Payment{}, false, usecase.ErrAccessDenied)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ord-1/create-payment-intent", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ConfirmPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newRouter(clientPrincipal)
		r.POST("/v1/payments/:id/confirm", h.ConfirmPayment)

		confirmed := samplePayment(entities.PaymentStatusCompleted)
		confirmed.GatewayChargeID = "mock_charge_pay-1"
		uc.EXPECT().Confirm(gomock.Any(), clientPrincipal, "pay-1").Return(confirmed, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pay-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if res["status"] != "COMPLETED" {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("unknown payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newRouter(clientPrincipal)
		r.POST("/v1/payments/:id/confirm", h.ConfirmPayment)

		uc.EXPECT().Confirm(gomock.Any(), clientPrincipal, "pay-404").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pay-404/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("double confirmation maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newRouter(clientPrincipal)
		r.POST("/v1/payments/:id/confirm", h.ConfirmPayment)

		uc.EXPECT().Confirm(gomock.Any(), clientPrincipal, "pay-1").Return(entities.Payment{}, usecase.ErrPaymentAlreadyCompleted)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pay-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetOrderPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newRouter(clientPrincipal)
		r.GET("/v1/payments/:id", h.GetOrderPayments)

		uc.EXPECT().ListByOrderID(gomock.Any(), clientPrincipal, "ord-1").Return([]entities.Payment{
			samplePayment(entities.PaymentStatusCompleted),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if len(res) != 1 || res[0]["id"] != "pay-1" {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("empty history is an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newRouter(clientPrincipal)
		r.GET("/v1/payments/:id", h.GetOrderPayments)

		uc.EXPECT().ListByOrderID(gomock.Any(), clientPrincipal, "ord-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})
}
