package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	request "daon_interior/internal/adapter/http/dto/request"
	response "daon_interior/internal/adapter/http/dto/response"
	"daon_interior/internal/domain/calc"
	"daon_interior/internal/domain/entities"
	"daon_interior/internal/usecase"
	"daon_interior/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for estimate documents.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate opens a new estimate with the next serial number of the day.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Create(c.Request.Context(), payload.CustomerName, payload.CustomerPhone, payload.Address)
	h.respond(c, http.StatusCreated, estimate, err)
}

// CreateRevision clones an estimate under the next revision suffix of its
// serial number.
func (h *EstimateHandler) CreateRevision(c *gin.Context) {
	estimate, err := h.usecase.CreateRevision(c.Request.Context(), c.Param("number"))
	h.respond(c, http.StatusCreated, estimate, err)
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByNumber(c.Request.Context(), c.Param("number"))
	h.respond(c, http.StatusOK, estimate, err)
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	estimates, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

// SaveRows replaces the row list and recomputes every derived field before
// persisting.
func (h *EstimateHandler) SaveRows(c *gin.Context) {
	var payload request.SaveRowsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.SaveRows(c.Request.Context(), c.Param("number"), payload.Rows)
	h.respond(c, http.StatusOK, estimate, err)
}

// EditRowField applies a single field edit and returns the recomputed
// document.
func (h *EstimateHandler) EditRowField(c *gin.Context) {
	var payload request.EditRowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.EditRowField(c.Request.Context(), c.Param("number"), c.Param("row_id"), calc.Field(payload.Field), payload.Value)
	h.respond(c, http.StatusOK, estimate, err)
}

// InsertRow appends a product row, prefilled from the catalog when a product
// code is given. An empty body inserts a blank row.
func (h *EstimateHandler) InsertRow(c *gin.Context) {
	var payload request.InsertRowRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.InsertRow(c.Request.Context(), c.Param("number"), payload.ResolveProductCode())
	h.respond(c, http.StatusCreated, estimate, err)
}

// InsertOptionRow appends an option row attached to the product row in path.
func (h *EstimateHandler) InsertOptionRow(c *gin.Context) {
	estimate, err := h.usecase.InsertOptionRow(c.Request.Context(), c.Param("number"), c.Param("row_id"))
	h.respond(c, http.StatusCreated, estimate, err)
}

func (h *EstimateHandler) DeleteRow(c *gin.Context) {
	estimate, err := h.usecase.DeleteRow(c.Request.Context(), c.Param("number"), c.Param("row_id"))
	h.respond(c, http.StatusOK, estimate, err)
}

// DivideRow splits a product row into equal widths, or duplicates it when
// mode is "copy".
func (h *EstimateHandler) DivideRow(c *gin.Context) {
	var payload request.DivideRowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.DivideRow(c.Request.Context(), c.Param("number"), c.Param("row_id"), payload.ResolveMode(), payload.Count)
	h.respond(c, http.StatusOK, estimate, err)
}

// WatchEstimates streams the reconciled estimate collection as server-sent
// events whenever it changes.
func (h *EstimateHandler) WatchEstimates(c *gin.Context) {
	ctx := c.Request.Context()
	updates := h.usecase.Watch(ctx, 5*time.Second)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case estimates, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("estimates", response.FromEstimates(estimates))
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// respond renders an estimate result, downgrading a local fallback save to a
// success with the savedLocally flag set.
func (h *EstimateHandler) respond(c *gin.Context, status int, estimate entities.Estimate, err error) {
	if errors.Is(err, usecase.ErrSavedLocally) {
		c.JSON(status, response.FromEstimateSavedLocally(estimate))
		return
	}
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(status, response.FromEstimate(estimate))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateNumber), errors.Is(err, usecase.ErrInvalidRowField), errors.Is(err, usecase.ErrInvalidDivideCount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRowNotFound):
		return pkg.NewDomainErrorSimple("ROW_NOT_FOUND", "Estimate row not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
