package handlers

import (
	"bytes"
	"context"
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

const validSubmissionBody = `{
	"clientName": "Ahmad Rizki",
	"clientEmail": "Ahmad@Example.com",
	"clientPhone": "+6281234567890",
	"projectName": "Company profile website",
	"description": "A marketing site for our manufacturing company in Surabaya.",
	"timeline": "RUSH",
	"budgetMin": 5000000,
	"budgetMax": 15000000,
	"selectedServices": [
		{"serviceId": "3b241101-e2bb-4255-8caf-4136c566a962", "complexityId": "b8f1a5ce-6c2e-4bbf-9f3e-2a3d9c1e7a4b"}
	]
}`

func newSubmitRouter(h *ProjectHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/projects/submit", h.SubmitProject)
	r.GET("/v1/projects/:reference_id", h.GetProjectByReference)
	return r
}

func postSubmission(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/projects/submit", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProjectHandler_SubmitProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectSubmissionUseCase(ctrl)
		r := newSubmitRouter(NewProjectHandler(uc))

		w := postSubmission(r, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("binding rejects missing selections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectSubmissionUseCase(ctrl)
		r := newSubmitRouter(NewProjectHandler(uc))

		body := `{
			"clientName": "Ahmad Rizki",
			"clientEmail": "ahmad@example.com",
			"clientPhone": "+6281234567890",
			"projectName": "Company profile website",
			"description": "A marketing site for our manufacturing company in Surabaya.",
			"selectedServices": []
		}`
		w := postSubmission(r, body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("binding rejects budget max below min", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectSubmissionUseCase(ctrl)
		r := newSubmitRouter(NewProjectHandler(uc))

		body := `{
			"clientName": "Ahmad Rizki",
			"clientEmail": "ahmad@example.com",
			"clientPhone": "+6281234567890",
			"projectName": "Company profile website",
			"description": "A marketing site for our manufacturing company in Surabaya.",
			"budgetMin": 15000000,
			"budgetMax": 5000000,
			"selectedServices": [
				{"serviceId": "3b241101-e2bb-4255-8caf-4136c566a962", "complexityId": "b8f1a5ce-6c2e-4bbf-9f3e-2a3d9c1e7a4b"}
			]
		}`
		w := postSubmission(r, body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown complexity option maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectSubmissionUseCase(ctrl)
		r := newSubmitRouter(NewProjectHandler(uc))

		uc.EXPECT().SubmitProject(gomock.Any(), gomock.Any()).
			Return(usecase.SubmissionResult{}, usecase.ErrComplexityOptionNotFound)

		w := postSubmission(r, validSubmissionBody)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("reference exhaustion maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectSubmissionUseCase(ctrl)
		r := newSubmitRouter(NewProjectHandler(uc))

		uc.EXPECT().SubmitProject(gomock.Any(), gomock.Any()).
			Return(usecase.SubmissionResult{}, usecase.ErrReferenceExhausted)

		w := postSubmission(r, validSubmissionBody)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectSubmissionUseCase(ctrl)
		r := newSubmitRouter(NewProjectHandler(uc))

		uc.EXPECT().SubmitProject(gomock.Any(), gomock.Any()).
			Return(usecase.SubmissionResult{}, errors.New("dynamodb unavailable"))

		w := postSubmission(r, validSubmissionBody)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectSubmissionUseCase(ctrl)
		r := newSubmitRouter(NewProjectHandler(uc))

		uc.EXPECT().SubmitProject(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sub usecase.ProjectSubmission) (usecase.SubmissionResult, error) {
				if sub.Client.Email != "ahmad@example.com" {
					t.Fatalf("email not normalized: %q", sub.Client.Email)
				}
				if len(sub.SelectedServices) != 1 {
					t.Fatalf("expected 1 selection, got %d", len(sub.SelectedServices))
				}
				return usecase.SubmissionResult{
					ReferenceID: "ILS-2026-4242",
					Project: entities.Project{
						ID:           "proj-1",
						ReferenceID:  "ILS-2026-4242",
						EstimatedMin: 13000000,
						EstimatedMax: 26000000,
					},
				}, nil
			})

		w := postSubmission(r, validSubmissionBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["referenceId"] != "ILS-2026-4242" {
			t.Fatalf("unexpected referenceId: %v", body["referenceId"])
		}
		if body["estimatedMin"] != float64(13000000) || body["estimatedMax"] != float64(26000000) {
			t.Fatalf("unexpected estimate: %v / %v", body["estimatedMin"], body["estimatedMax"])
		}
		if body["message"] == "" {
			t.Fatal("expected a confirmation message")
		}
	})
}

func TestProjectHandler_GetProjectByReference(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectSubmissionUseCase(ctrl)
		r := newSubmitRouter(NewProjectHandler(uc))

		uc.EXPECT().GetByReferenceID(gomock.Any(), "ILS-2026-9999").
			Return(entities.Project{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/ILS-2026-9999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectSubmissionUseCase(ctrl)
		r := newSubmitRouter(NewProjectHandler(uc))

		uc.EXPECT().GetByReferenceID(gomock.Any(), "ILS-2026-4242").Return(entities.Project{
			ID:          "proj-1",
			ReferenceID: "ILS-2026-4242",
			ProjectName: "Company profile website",
			Status:      entities.ProjectStatusPendingReview,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/ILS-2026-4242", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["referenceId"] != "ILS-2026-4242" || body["status"] != "PENDING_REVIEW" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
