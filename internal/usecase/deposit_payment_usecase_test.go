package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"daon_interior/internal/domain/entities"
	mock_interfaces "daon_interior/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func confirmedEstimate() entities.Estimate {
	return entities.Estimate{
		Number: "E20250314-001",
		Rows: []entities.EstimateRow{
			{ID: "row-1", Type: entities.RowTypeProduct, TotalPrice: 500000},
			{ID: "opt-1", Type: entities.RowTypeOption, ProductRef: "row-1", TotalPrice: 100000},
		},
	}
}

func TestDepositPaymentUseCase_CreateAndApprove(t *testing.T) {
	t.Run("invalid number", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "  ", nil)
		if !errors.Is(err, ErrInvalidPaymentNumber) {
			t.Fatalf("expected ErrInvalidPaymentNumber, got %v", err)
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(nil, estimates, gateway)

		estimates.EXPECT().GetByNumber(gomock.Any(), "E20250314-001").Return(entities.Estimate{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "E20250314-001", nil)
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("estimate without totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(nil, estimates, gateway)

		estimates.EXPECT().GetByNumber(gomock.Any(), "E20250314-001").Return(entities.Estimate{Number: "E20250314-001"}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "E20250314-001", nil)
		if !errors.Is(err, ErrEstimateHasNoTotal) {
			t.Fatalf("expected ErrEstimateHasNoTotal, got %v", err)
		}
	})

	t.Run("amount comes from the document, not the payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, estimates, gateway)

		estimates.EXPECT().GetByNumber(gomock.Any(), "E20250314-001").Return(confirmedEstimate(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				// 10% of the 600000 document total, overriding the caller's value.
				if m["transaction_amount"] != float64(60000) {
					t.Fatalf("transaction_amount = %v, want 60000", m["transaction_amount"])
				}
				if m["external_reference"] != "E20250314-001" {
					t.Fatalf("external_reference = %v", m["external_reference"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
				if p.ID != "mp-1" || p.EstimateNumber != "E20250314-001" || p.Amount != 60000 {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.Status != entities.PaymentStatusApproved {
					t.Fatalf("status = %s", p.Status)
				}
				return p, nil
			},
		)

		created, err := uc.CreateAndApprove(context.Background(), "E20250314-001", json.RawMessage(`{"transaction_amount":1,"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "mp-1" {
			t.Fatalf("unexpected result: %+v", created)
		}
	})

	t.Run("gateway unauthorized maps to sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(nil, estimates, gateway)

		estimates.EXPECT().GetByNumber(gomock.Any(), "E20250314-001").Return(confirmedEstimate(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.CreateAndApprove(context.Background(), "E20250314-001", nil)
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "E20250314-001", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})
}

func TestDepositPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		uc := NewDepositPaymentUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.DepositPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "pay-1")
		if !errors.Is(err, ErrDepositPaymentNotFound) {
			t.Fatalf("expected ErrDepositPaymentNotFound, got %v", err)
		}
	})

	t.Run("ListByEstimateNumber", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		uc := NewDepositPaymentUseCase(repo, nil, nil)
		repo.EXPECT().ListByEstimateNumber(gomock.Any(), "E20250314-001").Return([]entities.DepositPayment{{ID: "pay-1"}}, nil)

		got, err := uc.ListByEstimateNumber(context.Background(), " E20250314-001 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "pay-1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
