package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "daon_interior/internal/adapter/http/dto/response"
	"daon_interior/internal/domain/entities"
	"daon_interior/internal/usecase"
	"daon_interior/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for the product catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) GetProductByCode(c *gin.Context) {
	product, err := h.usecase.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

// ListProducts returns the whole catalog, or a name-prefix search when the
// "name" query parameter is present.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var (
		products []entities.Product
		err      error
	)
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		products, err = h.usecase.SearchByName(c.Request.Context(), name)
	} else {
		products, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductCode), errors.Is(err, usecase.ErrInvalidSearchTerm):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
