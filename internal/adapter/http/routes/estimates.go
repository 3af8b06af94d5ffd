package routes

import (
	"daon_interior/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathProducts  = "/products"
	PathFormulas  = "/formulas"
	PathPayments  = "/payments"
)

func addEstimateRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	catalogHandler *handlers.CatalogHandler,
	formulaHandler *handlers.FormulaHandler,
	paymentHandler *handlers.DepositPaymentHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/watch", estimateHandler.WatchEstimates)
		estimates.GET("/:number", estimateHandler.GetEstimate)
		estimates.POST("/:number/revisions", estimateHandler.CreateRevision)
		estimates.PUT("/:number/rows", estimateHandler.SaveRows)
		estimates.POST("/:number/rows", estimateHandler.InsertRow)
		estimates.PATCH("/:number/rows/:row_id", estimateHandler.EditRowField)
		estimates.DELETE("/:number/rows/:row_id", estimateHandler.DeleteRow)
		estimates.POST("/:number/rows/:row_id/options", estimateHandler.InsertOptionRow)
		estimates.POST("/:number/rows/:row_id/divide", estimateHandler.DivideRow)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:code", catalogHandler.GetProductByCode)
	}

	formulas := rg.Group(PathFormulas)
	{
		formulas.GET("", formulaHandler.ListFormulas)
		formulas.PUT("/:key", formulaHandler.PutFormula)
		formulas.DELETE("/:key", formulaHandler.DeleteFormula)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:number", paymentHandler.CreatePaymentByEstimateNumber)
		payments.GET("/:number", paymentHandler.GetPaymentByEstimateNumber)
	}
}
