package routes

import (
	"legal_intake/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathAnalyses = "/analyses"
	PathPayments = "/payments"
)

func addIntakeRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, analysisHandler *handlers.AnalysisHandler, paymentHandler *handlers.PaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PUT("/:order_id", orderHandler.UpdateOrder)
		orders.POST("/:order_id/assign", orderHandler.AssignOrder)
		orders.DELETE("/:order_id", orderHandler.DeleteOrder)
	}

	analyses := rg.Group(PathAnalyses)
	{
		analyses.POST("", analysisHandler.CreateAnalysis)
		analyses.GET("/:order_id/preview", analysisHandler.GetAnalysisPreview)
		analyses.GET("/:order_id/full", analysisHandler.GetFullAnalysis)
		analyses.PUT("/:order_id", analysisHandler.UpdateAnalysis)
	}

	payments := rg.Group(PathPayments)
	{
		// Gin does not allow mixed wildcard names on the same segment, so the
		// payment routes share ":id" (an order id or a payment id per route).
		payments.POST("/:id/create-payment-intent", paymentHandler.CreatePaymentIntent)
		payments.POST("/:id/confirm", paymentHandler.ConfirmPayment)
		payments.GET("/:id", paymentHandler.GetOrderPayments)
	}
}
