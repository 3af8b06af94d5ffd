package handlers

import (
	"errors"
	"net/http"

	request "daon_interior/internal/adapter/http/dto/request"
	"daon_interior/internal/usecase"
	"daon_interior/pkg"

	"github.com/gin-gonic/gin"
)

// FormulaHandler handles HTTP requests for pleat-count formula overrides.

type FormulaHandler struct {
	usecase usecase.IFormulaUseCase
}

func NewFormulaHandler(uc usecase.IFormulaUseCase) *FormulaHandler {
	return &FormulaHandler{usecase: uc}
}

// ListFormulas returns every formula key with its effective expression,
// builtin or override.
func (h *FormulaHandler) ListFormulas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"formulas": h.usecase.List(c.Request.Context())})
}

// PutFormula stores an override expression for a formula key.
func (h *FormulaHandler) PutFormula(c *gin.Context) {
	var payload request.PutFormulaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_FORMULA_INPUT", "Invalid formula payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	key := c.Param("key")
	if err := h.usecase.Put(c.Request.Context(), key, payload.ResolveExpression()); err != nil {
		appErr := mapFormulaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "expression": payload.ResolveExpression()})
}

// DeleteFormula removes an override; builtin keys fall back to their factory
// expression and cannot be deleted outright.
func (h *FormulaHandler) DeleteFormula(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("key")); err != nil {
		appErr := mapFormulaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapFormulaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFormulaKey), errors.Is(err, usecase.ErrInvalidFormulaExpr):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProtectedFormula):
		return pkg.NewDomainErrorSimple("FORMULA_PROTECTED", "Builtin formulas cannot be deleted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
