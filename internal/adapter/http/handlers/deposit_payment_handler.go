package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "daon_interior/internal/adapter/http/dto/response"
	"daon_interior/internal/infrastructure/payments"
	"daon_interior/internal/usecase"
	"daon_interior/pkg"

	"github.com/gin-gonic/gin"
)

// DepositPaymentHandler handles HTTP requests for contract deposit payments.

type DepositPaymentHandler struct {
	usecase usecase.IDepositPaymentUseCase
}

func NewDepositPaymentHandler(uc usecase.IDepositPaymentUseCase) *DepositPaymentHandler {
	return &DepositPaymentHandler{usecase: uc}
}

// CreatePaymentByEstimateNumber creates and approves a deposit payment for
// the estimate in path. The deposit amount always comes from the document
// total, never from the request body.
func (h *DepositPaymentHandler) CreatePaymentByEstimateNumber(c *gin.Context) {
	number := c.Param("number")
	log.Printf("[deposit][handler] create start number=%s", number)
	mockMode := payments.GatewayMockEnabled()
	payload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[deposit][handler] payload invalid in mock mode; fallback to empty payload number=%s err=%v", number, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[deposit][handler] invalid payload number=%s err=%v", number, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), number, payload)
	if err != nil {
		log.Printf("[deposit][handler] create failed number=%s err=%v", number, err)
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] create success number=%s payment_id=%s status=%s", number, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromDepositPayment(created))
}

// GetPaymentByEstimateNumber returns the latest deposit payment for an
// estimate.
func (h *DepositPaymentHandler) GetPaymentByEstimateNumber(c *gin.Context) {
	number := c.Param("number")
	log.Printf("[deposit][handler] get-by-estimate start number=%s", number)

	found, err := h.usecase.ListByEstimateNumber(c.Request.Context(), number)
	if err != nil {
		log.Printf("[deposit][handler] get-by-estimate failed number=%s err=%v", number, err)
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(found) == 0 {
		log.Printf("[deposit][handler] get-by-estimate not-found number=%s", number)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := found[0]
	for _, p := range found[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[deposit][handler] get-by-estimate success number=%s payment_id=%s status=%s", number, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromDepositPayment(latest))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDepositPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentNumber), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateHasNoTotal):
		return pkg.NewDomainErrorSimple("ESTIMATE_HAS_NO_TOTAL", "Estimate has no billable total", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
