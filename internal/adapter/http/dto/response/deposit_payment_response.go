package response

import (
	"time"

	"daon_interior/internal/domain/entities"
)

type DepositPaymentResponse struct {
	PaymentID      string    `json:"payment_id"`
	ID             string    `json:"id"`
	EstimateNumber string    `json:"estimate_number"`
	Amount         float64   `json:"amount"`
	PaymentDate    time.Time `json:"payment_date"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromDepositPayment(p entities.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		EstimateNumber:     p.EstimateNumber,
		Amount:             p.Amount,
		PaymentDate:        p.Date,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
