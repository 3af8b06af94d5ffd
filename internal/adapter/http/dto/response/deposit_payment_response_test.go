package response

import (
	"encoding/json"
	"testing"
	"time"

	"daon_interior/internal/domain/entities"
)

func TestFromDepositPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"payment_method_id": "pix"}
	raw := json.RawMessage(`{"id":"mp-1"}`)

	p := entities.DepositPayment{
		ID:                 "mp-1",
		EstimateNumber:     "E20250314-001",
		Amount:             60000,
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: raw,
		ProviderPayload:    payload,
	}

	res := FromDepositPayment(p)
	if res.ID != "mp-1" || res.PaymentID != "mp-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.EstimateNumber != "E20250314-001" || res.Amount != 60000 || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.ProviderPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.ProviderPayloadRaw)
	}
	if res.ProviderPayload["payment_method_id"] != "pix" {
		t.Fatalf("unexpected parsed payload: %+v", res.ProviderPayload)
	}
}
