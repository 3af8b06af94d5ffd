package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"daon_interior/internal/adapter/http/handlers/mocks"
	"daon_interior/internal/domain/entities"
	"daon_interior/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var catalogProduct = entities.Product{
	Code:      "CT-100",
	Name:      "루아즈 겉커튼",
	Category:  entities.ProductTypeCurtain,
	SalePrice: 25000,
	WidthMM:   1370,
}

func TestCatalogHandler_GetProductByCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/products/:code", h.GetProductByCode)

		uc.EXPECT().GetByCode(gomock.Any(), "NO-SUCH").Return(entities.Product{}, usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/NO-SUCH", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/products/:code", h.GetProductByCode)

		uc.EXPECT().GetByCode(gomock.Any(), "CT-100").Return(catalogProduct, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/CT-100", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["name"] != "루아즈 겉커튼" || body["category"] != "커튼" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("name query searches by prefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/products", h.ListProducts)

		uc.EXPECT().SearchByName(gomock.Any(), "루아즈").Return([]entities.Product{catalogProduct}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/products?name=루아즈", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no query lists everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/products", h.ListProducts)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Product{catalogProduct}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["code"] != "CT-100" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
