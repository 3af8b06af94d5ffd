package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "daon_interior/docs" // This will be auto-generated
	"daon_interior/internal/adapter/http/handlers"
	"daon_interior/internal/adapter/persistence/localstore"
	repository2 "daon_interior/internal/adapter/persistence/repository"
	"daon_interior/internal/domain/calc"
	"daon_interior/internal/infrastructure/database"
	"daon_interior/internal/infrastructure/payments"
	"daon_interior/internal/usecase"
	"daon_interior/internal/usecase/interfaces"

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

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	formulaRepo := repository2.NewFormulaDynamoRepository(ddb)
	paymentRepo := repository2.NewDepositPaymentDynamoRepository(ddb)
	fallbackStore := localstore.New()

	formulaTable := calc.NewFormulaTable()
	formulaUseCase := usecase.NewFormulaUseCase(formulaTable, formulaRepo)
	formulaUseCase.LoadOverrides(context.Background())

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, fallbackStore, productRepo, formulaTable)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewDepositPaymentUseCase(paymentRepo, estimateRepo, paymentGateway)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	formulaHandler := handlers.NewFormulaHandler(formulaUseCase)
	depositPaymentHandler := handlers.NewDepositPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, estimateHandler, catalogHandler, formulaHandler, depositPaymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
