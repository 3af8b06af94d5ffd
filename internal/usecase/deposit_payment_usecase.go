package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"daon_interior/internal/domain/entities"
	"daon_interior/internal/usecase/interfaces"
)

var (
	ErrDepositPaymentNotFound     = errors.New("deposit payment not found")
	ErrInvalidPaymentNumber       = errors.New("invalid estimate number for payment")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrEstimateHasNoTotal         = errors.New("estimate has no billable total")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

const defaultDepositRate = 0.1

// IDepositPaymentUseCase charges the contract deposit for an estimate and
// records the provider response.
//
// The deposit amount is derived from the document total at charge time, never
// from the caller's payload: DEPOSIT_RATE (default 0.1) × the sum of row
// totals, rounded to whole currency.

type IDepositPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, number string, payload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByEstimateNumber(ctx context.Context, number string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo      interfaces.IDepositPaymentRepository
	estimates interfaces.IEstimateRepository
	gateway   interfaces.IPaymentGateway
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(repo interfaces.IDepositPaymentRepository, estimates interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway) *DepositPaymentUseCase {
	return &DepositPaymentUseCase{repo: repo, estimates: estimates, gateway: gateway}
}

func (u *DepositPaymentUseCase) CreateAndApprove(ctx context.Context, number string, payload json.RawMessage) (entities.DepositPayment, error) {
	log.Printf("[deposit][usecase] create-and-approve start number=%q payload_len=%d", number, len(payload))
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.DepositPayment{}, ErrInvalidPaymentNumber
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		log.Printf("[deposit][usecase] invalid payload (not-json) number=%s", number)
		return entities.DepositPayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		log.Printf("[deposit][usecase] gateway not configured number=%s", number)
		return entities.DepositPayment{}, errors.New("payment gateway not configured")
	}

	est, err := u.estimates.GetByNumber(ctx, number)
	if err != nil {
		log.Printf("[deposit][usecase] failed loading estimate number=%s err=%v", number, err)
		return entities.DepositPayment{}, err
	}
	if est.Number == "" {
		log.Printf("[deposit][usecase] estimate not found number=%s", number)
		return entities.DepositPayment{}, ErrEstimateNotFound
	}

	total := documentTotal(est)
	if total <= 0 {
		log.Printf("[deposit][usecase] estimate has no total number=%s", number)
		return entities.DepositPayment{}, ErrEstimateHasNoTotal
	}
	amount := math.Round(total * depositRate())
	log.Printf("[deposit][usecase] estimate loaded number=%s total=%.0f deposit=%.0f", number, total, amount)

	// The stored document is the source of truth for the amount. The payload
	// only carries provider-specific fields (payment method, payer).
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = number
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("견적 %s 계약금", number)
		}
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[deposit][usecase] payment gateway failed number=%s err=%v", number, err)
		if isGatewayUnauthorized(err) {
			return entities.DepositPayment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.DepositPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.DepositPayment{}, err
	}
	log.Printf("[deposit][usecase] payment gateway success number=%s provider_payment_id=%s provider_status=%s", number, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[deposit][usecase] provider response unmarshal failed number=%s err=%v", number, err)
	}

	p := entities.DepositPayment{
		ID:                 providerPaymentID,
		EstimateNumber:     number,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[deposit][usecase] payment repository create failed number=%s payment_id=%s err=%v", number, p.ID, err)
		return entities.DepositPayment{}, err
	}
	log.Printf("[deposit][usecase] create-and-approve success number=%s payment_id=%s", number, created.ID)
	return created, nil
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByEstimateNumber(ctx context.Context, number string) ([]entities.DepositPayment, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrInvalidPaymentNumber
	}
	return u.repo.ListByEstimateNumber(ctx, number)
}

// documentTotal sums the persisted row totals, products and options alike.
func documentTotal(e entities.Estimate) float64 {
	total := 0.0
	for _, r := range e.Rows {
		total += r.TotalPrice
	}
	return total
}

func depositRate() float64 {
	if v := strings.TrimSpace(os.Getenv("DEPOSIT_RATE")); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate > 0 && rate <= 1 {
			return rate
		}
	}
	return defaultDepositRate
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
