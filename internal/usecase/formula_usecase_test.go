package usecase

import (
	"context"
	"errors"
	"testing"

	"daon_interior/internal/domain/calc"
	mock_interfaces "daon_interior/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const narrowPlainKey = "겉커튼-민자-2000이하"

func TestFormulaUseCase_ListOverlaysOverrides(t *testing.T) {
	table := calc.NewFormulaTable()
	uc := NewFormulaUseCase(table, nil)

	base := uc.List(context.Background())
	if base[narrowPlainKey] != "widthMM*1.4/productWidth" {
		t.Fatalf("builtin missing from listing: %q", base[narrowPlainKey])
	}

	if err := table.Set(narrowPlainKey, "widthMM*3/productWidth"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := uc.List(context.Background())
	if got[narrowPlainKey] != "widthMM*3/productWidth" {
		t.Fatalf("override not overlaid: %q", got[narrowPlainKey])
	}
}

func TestFormulaUseCase_Put(t *testing.T) {
	t.Run("persists and takes effect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		table := calc.NewFormulaTable()
		uc := NewFormulaUseCase(table, repo)

		repo.EXPECT().Save(gomock.Any(), narrowPlainKey, "widthMM*3/productWidth").Return(nil)

		if err := uc.Put(context.Background(), narrowPlainKey, "widthMM*3/productWidth"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v, ok := table.Evaluate(narrowPlainKey, 1370, 1370); !ok || v != 3 {
			t.Fatalf("table not updated: %v ok=%v", v, ok)
		}
	})

	t.Run("malformed expression", func(t *testing.T) {
		uc := NewFormulaUseCase(calc.NewFormulaTable(), nil)
		err := uc.Put(context.Background(), narrowPlainKey, "widthMM*/2")
		if !errors.Is(err, ErrInvalidFormulaExpr) {
			t.Fatalf("expected ErrInvalidFormulaExpr, got %v", err)
		}
	})

	t.Run("empty key", func(t *testing.T) {
		uc := NewFormulaUseCase(calc.NewFormulaTable(), nil)
		if err := uc.Put(context.Background(), "  ", "1+1"); !errors.Is(err, ErrInvalidFormulaKey) {
			t.Fatalf("expected ErrInvalidFormulaKey, got %v", err)
		}
	})
}

func TestFormulaUseCase_Delete(t *testing.T) {
	t.Run("builtin keys are protected", func(t *testing.T) {
		uc := NewFormulaUseCase(calc.NewFormulaTable(), nil)
		err := uc.Delete(context.Background(), narrowPlainKey)
		if !errors.Is(err, ErrProtectedFormula) {
			t.Fatalf("expected ErrProtectedFormula, got %v", err)
		}
	})

	t.Run("override removal falls back to builtin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
		table := calc.NewFormulaTable()
		uc := NewFormulaUseCase(table, repo)

		repo.EXPECT().Save(gomock.Any(), narrowPlainKey, "widthMM*3/productWidth").Return(nil)
		repo.EXPECT().Delete(gomock.Any(), narrowPlainKey).Return(nil)

		if err := uc.Put(context.Background(), narrowPlainKey, "widthMM*3/productWidth"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.Delete(context.Background(), narrowPlainKey); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v, ok := table.Evaluate(narrowPlainKey, 1370, 1370); !ok || v != 1.4 {
			t.Fatalf("builtin not restored: %v ok=%v", v, ok)
		}
	})
}

func TestFormulaUseCase_LoadOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIFormulaRepository(ctrl)
	table := calc.NewFormulaTable()
	uc := NewFormulaUseCase(table, repo)

	repo.EXPECT().Load(gomock.Any()).Return(map[string]string{
		narrowPlainKey: "widthMM*3/productWidth",
		"broken":       "widthMM*/2", // skipped, never breaks startup
	}, nil)

	uc.LoadOverrides(context.Background())

	if v, ok := table.Evaluate(narrowPlainKey, 1370, 1370); !ok || v != 3 {
		t.Fatalf("override not loaded: %v ok=%v", v, ok)
	}
	if _, ok := table.Evaluate("broken", 1, 1); ok {
		t.Fatalf("malformed stored formula must be skipped")
	}
}
