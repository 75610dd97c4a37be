package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"illusphere_backend/internal/adapter/http/handlers/mocks"
	"illusphere_backend/internal/domain/entities"
	"illusphere_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ListServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/services", h.ListServices)

		uc.EXPECT().ListServices(gomock.Any()).Return([]usecase.ServiceWithOptions{
			{
				Service: entities.Service{ID: "svc-1", Slug: "web-dev", Name: "Website Development", Category: entities.ServiceCategoryTech, IsActive: true},
				ComplexityOptions: []entities.ComplexityOption{
					{ID: "cx-1", ServiceID: "svc-1", Slug: "landing", MinPrice: 3000000, MaxPrice: 7000000},
				},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 || body[0]["slug"] != "web-dev" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/services", h.ListServices)

		uc.EXPECT().ListServices(gomock.Any()).Return(nil, errors.New("scan failed"))

		req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_ListAdditionalServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/additional-services", h.ListAdditionalServices)

	uc.EXPECT().ListAdditionalServices(gomock.Any()).Return([]entities.AdditionalService{
		{ID: "add-1", Slug: "seo", Name: "SEO Optimization", MinPrice: 2000000, MaxPrice: 8000000},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/additional-services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 1 || body[0]["slug"] != "seo" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
