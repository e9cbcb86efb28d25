package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "careerdesk/pkg/errors"
	"careerdesk/pkg/logger"
	"careerdesk/pkg/model"
)

// Mock service for testing
type mockCareerService struct {
	createFunc  func(ctx context.Context, raw map[string]any) (*model.Career, error)
	updateFunc  func(ctx context.Context, id string, raw map[string]any) (map[string]any, error)
	getByIDFunc func(ctx context.Context, id string) (*model.Career, error)
	listFunc    func(ctx context.Context, orgID string, status string, limit int, offset int) ([]*model.Career, int64, error)
}

func (m *mockCareerService) Create(ctx context.Context, raw map[string]any) (*model.Career, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, raw)
	}
	return &model.Career{}, nil
}

func (m *mockCareerService) Update(ctx context.Context, id string, raw map[string]any) (map[string]any, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, raw)
	}
	return map[string]any{}, nil
}

func (m *mockCareerService) GetByID(ctx context.Context, id string) (*model.Career, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &model.Career{}, nil
}

func (m *mockCareerService) List(ctx context.Context, orgID string, status string, limit int, offset int) ([]*model.Career, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, orgID, status, limit, offset)
	}
	return []*model.Career{}, 0, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
}

func TestCreate_ReturnsCreatedCareer(t *testing.T) {
	mockService := &mockCareerService{
		createFunc: func(ctx context.Context, raw map[string]any) (*model.Career, error) {
			return &model.Career{JobTitle: "Backend Engineer", Status: model.CareerStatusActive}, nil
		},
	}
	handler := NewCareerHandler(mockService, testLogger())

	body := `{"jobTitle":"Backend Engineer","orgID":"507f1f77bcf86cd799439011"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/careers", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	var resp struct {
		Data model.Career `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.JobTitle != "Backend Engineer" {
		t.Errorf("expected job title 'Backend Engineer', got %q", resp.Data.JobTitle)
	}
}

func TestCreate_InvalidJSONBody(t *testing.T) {
	handler := NewCareerHandler(&mockCareerService{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/careers", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestCreate_ServiceErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "validation error",
			serviceErr: apperrors.InvalidInput("Missing required field: jobTitle"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "plan limit reached",
			serviceErr: apperrors.LimitExceeded("Job posting limit reached for the current plan"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "organization missing",
			serviceErr: apperrors.NotFoundWithID("Organization", "507f1f77bcf86cd799439011"),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mockCareerService{
				createFunc: func(ctx context.Context, raw map[string]any) (*model.Career, error) {
					return nil, tt.serviceErr
				},
			}
			handler := NewCareerHandler(mockService, testLogger())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/careers", strings.NewReader(`{}`))
			w := httptest.NewRecorder()

			handler.Create(w, req, httprouter.Params{})

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestGetByID_MissingID(t *testing.T) {
	handler := NewCareerHandler(&mockCareerService{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/careers/id/", nil)
	w := httptest.NewRecorder()

	handler.GetByID(w, req, httprouter.Params{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestGetByID_Success(t *testing.T) {
	var receivedID string
	mockService := &mockCareerService{
		getByIDFunc: func(ctx context.Context, id string) (*model.Career, error) {
			receivedID = id
			return &model.Career{PublicID: id, JobTitle: "Product Designer"}, nil
		},
	}
	handler := NewCareerHandler(mockService, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/careers/id/abc-123", nil)
	w := httptest.NewRecorder()

	handler.GetByID(w, req, httprouter.Params{{Key: "id", Value: "abc-123"}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if receivedID != "abc-123" {
		t.Errorf("expected service to receive id 'abc-123', got %q", receivedID)
	}
}

func TestList_RequiresOrgID(t *testing.T) {
	handler := NewCareerHandler(&mockCareerService{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/careers", nil)
	w := httptest.NewRecorder()

	handler.List(w, req, httprouter.Params{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestList_InvalidPagination(t *testing.T) {
	handler := NewCareerHandler(&mockCareerService{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/careers?orgID=507f1f77bcf86cd799439011&limit=abc", nil)
	w := httptest.NewRecorder()

	handler.List(w, req, httprouter.Params{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestList_PassesQueryParameters(t *testing.T) {
	var gotOrgID, gotStatus string
	var gotLimit, gotOffset int
	mockService := &mockCareerService{
		listFunc: func(ctx context.Context, orgID string, status string, limit int, offset int) ([]*model.Career, int64, error) {
			gotOrgID = orgID
			gotStatus = status
			gotLimit = limit
			gotOffset = offset
			return []*model.Career{{JobTitle: "QA Analyst"}}, 1, nil
		},
	}
	handler := NewCareerHandler(mockService, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/careers?orgID=507f1f77bcf86cd799439011&status=inactive&limit=20&offset=40", nil)
	w := httptest.NewRecorder()

	handler.List(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if gotOrgID != "507f1f77bcf86cd799439011" {
		t.Errorf("unexpected orgID: %q", gotOrgID)
	}
	if gotStatus != "inactive" {
		t.Errorf("unexpected status: %q", gotStatus)
	}
	if gotLimit != 20 || gotOffset != 40 {
		t.Errorf("expected limit=20 offset=40, got limit=%d offset=%d", gotLimit, gotOffset)
	}
}

func TestUpdate_ReturnsUpdatedFields(t *testing.T) {
	mockService := &mockCareerService{
		updateFunc: func(ctx context.Context, id string, raw map[string]any) (map[string]any, error) {
			return map[string]any{"jobTitle": "Senior Engineer"}, nil
		},
	}
	handler := NewCareerHandler(mockService, testLogger())

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/careers/id/abc-123", strings.NewReader(`{"jobTitle":"Senior Engineer"}`))
	w := httptest.NewRecorder()

	handler.Update(w, req, httprouter.Params{{Key: "id", Value: "abc-123"}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data["jobTitle"] != "Senior Engineer" {
		t.Errorf("expected updated jobTitle in response, got %v", resp.Data)
	}
}

func TestUpdate_NotFoundMapsTo404(t *testing.T) {
	mockService := &mockCareerService{
		updateFunc: func(ctx context.Context, id string, raw map[string]any) (map[string]any, error) {
			return nil, apperrors.NotFoundWithID("Career", id)
		},
	}
	handler := NewCareerHandler(mockService, testLogger())

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/careers/id/missing", strings.NewReader(`{"jobTitle":"x"}`))
	w := httptest.NewRecorder()

	handler.Update(w, req, httprouter.Params{{Key: "id", Value: "missing"}})

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}
