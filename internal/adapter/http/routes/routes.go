package routes

import (
	"log"
	_ "legal_intake/docs" // This will be auto-generated
	"legal_intake/internal/adapter/http/handlers"
	"legal_intake/internal/adapter/http/middleware"
	repository2 "legal_intake/internal/adapter/persistence/repository"
	"legal_intake/internal/infrastructure/database"
	"legal_intake/internal/infrastructure/payments"
	"legal_intake/internal/usecase"
	"legal_intake/internal/usecase/interfaces"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	analysisRepo := repository2.NewAnalysisDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, paymentRepo)
	analysisUseCase := usecase.NewAnalysisUseCase(analysisRepo, orderRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, paymentGateway)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	analysisHandler := handlers.NewAnalysisHandler(analysisUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas: every intake endpoint requires a bearer token.
	authed := v1.Group("", middleware.AuthRequired(middleware.JWTSecretFromEnv()))
	addIntakeRoutes(authed, orderHandler, analysisHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
