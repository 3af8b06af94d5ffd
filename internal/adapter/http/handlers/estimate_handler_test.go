package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"daon_interior/internal/adapter/http/handlers/mocks"
	"daon_interior/internal/domain/calc"
	"daon_interior/internal/domain/entities"
	"daon_interior/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func testEstimate() entities.Estimate {
	return entities.Estimate{
		Number:       "E20250314-001",
		CustomerName: "김다온",
		Rows: []entities.EstimateRow{
			{ID: "row-1", Type: entities.RowTypeProduct, TotalPrice: 50000, Cost: 30000, Margin: 15455},
		},
		SavedAt: time.Now().UTC(),
	}
}

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"address":"서울시"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		uc.EXPECT().Create(gomock.Any(), "김다온", "010-1234-5678", "서울시").Return(testEstimate(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"customerName":"김다온","customerPhone":"010-1234-5678","address":"서울시"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["number"] != "E20250314-001" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["totalPrice"] != float64(50000) {
			t.Fatalf("unexpected totals: %s", w.Body.String())
		}
	})

	t.Run("fallback save reports savedLocally", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		uc.EXPECT().Create(gomock.Any(), "김다온", "", "").Return(testEstimate(), usecase.ErrSavedLocally)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"customerName":"김다온"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["savedLocally"] != true {
			t.Fatalf("expected savedLocally flag: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_GetEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:number", h.GetEstimate)

		uc.EXPECT().GetByNumber(gomock.Any(), "E20250314-009").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/E20250314-009", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:number", h.GetEstimate)

		uc.EXPECT().GetByNumber(gomock.Any(), "E20250314-001").Return(testEstimate(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/E20250314-001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_RowOperations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("edit row field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimates/:number/rows/:row_id", h.EditRowField)

		uc.EXPECT().EditRowField(gomock.Any(), "E20250314-001", "row-1", calc.FieldWidthMM, "2200").Return(testEstimate(), nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/E20250314-001/rows/row-1", bytes.NewBufferString(`{"field":"widthMM","value":"2200"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("edit unknown field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimates/:number/rows/:row_id", h.EditRowField)

		uc.EXPECT().EditRowField(gomock.Any(), "E20250314-001", "row-1", calc.Field("bogus"), "1").Return(entities.Estimate{}, usecase.ErrInvalidRowField)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/E20250314-001/rows/row-1", bytes.NewBufferString(`{"field":"bogus","value":"1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("insert row with empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:number/rows", h.InsertRow)

		uc.EXPECT().InsertRow(gomock.Any(), "E20250314-001", "").Return(testEstimate(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/E20250314-001/rows", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("insert row from catalog code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:number/rows", h.InsertRow)

		uc.EXPECT().InsertRow(gomock.Any(), "E20250314-001", "CT-100").Return(testEstimate(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/E20250314-001/rows", bytes.NewBufferString(`{"productCode":" CT-100 "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("divide row split", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:number/rows/:row_id/divide", h.DivideRow)

		uc.EXPECT().DivideRow(gomock.Any(), "E20250314-001", "row-1", usecase.DivideSplit, 2).Return(testEstimate(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/E20250314-001/rows/row-1/divide", bytes.NewBufferString(`{"count":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("divide row invalid count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:number/rows/:row_id/divide", h.DivideRow)

		uc.EXPECT().DivideRow(gomock.Any(), "E20250314-001", "row-1", usecase.DivideSplit, 1).Return(entities.Estimate{}, usecase.ErrInvalidDivideCount)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/E20250314-001/rows/row-1/divide", bytes.NewBufferString(`{"count":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete row not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.DELETE("/v1/estimates/:number/rows/:row_id", h.DeleteRow)

		uc.EXPECT().DeleteRow(gomock.Any(), "E20250314-001", "row-9").Return(entities.Estimate{}, usecase.ErrRowNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/E20250314-001/rows/row-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapEstimateError(t *testing.T) {
	if got := mapEstimateError(usecase.ErrInvalidEstimateNumber); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrInvalidRowField); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrEstimateNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEstimateError(usecase.ErrRowNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEstimateError(usecase.ErrProductNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEstimateError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
