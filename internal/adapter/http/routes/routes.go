package routes

import (
	"context"
	_ "decidir_refunds/docs" // This will be auto-generated
	"decidir_refunds/internal/adapter/http/handlers"
	"decidir_refunds/internal/adapter/persistence/repository"
	"decidir_refunds/internal/infrastructure/database"
	"decidir_refunds/internal/infrastructure/decidir"
	"decidir_refunds/internal/infrastructure/payments"
	"decidir_refunds/internal/usecase"
	"decidir_refunds/internal/usecase/interfaces"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	ProviderDecidir     = "decidir"
	ProviderMercadoPago = "mercadopago"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", defaultPort)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	api := newRefundAPI(getenvDefault("REFUND_PROVIDER", ProviderDecidir))

	var operationRepo interfaces.IRefundOperationRepository
	ddb, err := database.ConnectDynamoDB(context.Background())
	if err != nil {
		log.Printf("[refund-audit][dynamodb] not configured, audit trail disabled: %v", err)
	} else {
		operationRepo = repository.NewRefundOperationDynamoRepository(ddb)
	}

	refundsUseCase := usecase.NewAuditedRefundsUseCase(usecase.NewRefundsUseCase(api), operationRepo)
	operationUseCase := usecase.NewRefundOperationUseCase(operationRepo)

	refundHandler := handlers.NewRefundHandler(refundsUseCase, operationUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRefundRoutes(v1, refundHandler)
}

// newRefundAPI returns nil when the provider cannot be configured; the facade then
// answers every call with a transport fault.
func newRefundAPI(provider string) interfaces.IRefundAPI {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case ProviderMercadoPago:
		api, err := payments.NewMercadoPagoRefundAPI(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
		if err != nil {
			log.Printf("Mercado Pago refund API not configured: %v", err)
			return nil
		}
		return api
	case ProviderDecidir:
		api, err := decidir.NewRefundAPIClientFromEnv()
		if err != nil {
			log.Printf("Decidir refund API not configured: %v", err)
			return nil
		}
		return api
	default:
		log.Printf("unknown REFUND_PROVIDER=%q", provider)
		return nil
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
