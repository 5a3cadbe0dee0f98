package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campusops/ssis/internal/app/models"
	"github.com/campusops/ssis/internal/app/repositories"
	"github.com/campusops/ssis/internal/pkg/apperrors"
)

type MockCollegeService struct {
	mock.Mock
}

func (m *MockCollegeService) ListColleges(ctx context.Context, params repositories.ListParams) ([]models.College, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.College), args.Get(1).(int64), args.Error(2)
}

func (m *MockCollegeService) ListCollegeCodes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCollegeService) GetCollege(ctx context.Context, code string) (*models.College, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.College), args.Error(1)
}

func (m *MockCollegeService) CreateCollege(ctx context.Context, college *models.College) error {
	return m.Called(ctx, college).Error(0)
}

func (m *MockCollegeService) UpdateCollege(ctx context.Context, code string, college *models.College) error {
	return m.Called(ctx, code, college).Error(0)
}

func (m *MockCollegeService) DeleteCollege(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}

func newCollegeTestRouter(svc *MockCollegeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewCollegeController(svc)

	colleges := router.Group("/api/colleges")
	colleges.GET("", controller.ListColleges)
	colleges.GET("/:code", controller.GetCollege)
	colleges.POST("", controller.CreateCollege)
	colleges.PUT("/:code", controller.UpdateCollege)
	colleges.DELETE("/:code", controller.DeleteCollege)

	return router
}

func TestCollegeController_ListColleges(t *testing.T) {
	t.Run("returns the pagination envelope", func(t *testing.T) {
		svc := new(MockCollegeService)
		svc.On("ListColleges", mock.Anything, mock.MatchedBy(func(p repositories.ListParams) bool {
			return p.Page == 2 && p.PerPage == 5 && p.Search == "eng" && p.SortBy == "college_name" && p.Order == "desc"
		})).Return([]models.College{
			{Code: "COE", Name: "College of Engineering"},
		}, int64(11), nil).Once()

		router := newCollegeTestRouter(svc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/api/colleges?page=2&per_page=5&search=eng&sort_by=college_name&order=desc", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data       []models.College `json:"data"`
			Total      int64            `json:"total"`
			Page       int              `json:"page"`
			PerPage    int              `json:"per_page"`
			TotalPages int              `json:"total_pages"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, int64(11), body.Total)
		assert.Equal(t, 2, body.Page)
		assert.Equal(t, 5, body.PerPage)
		assert.Equal(t, 3, body.TotalPages)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "COE", body.Data[0].Code)
	})

	t.Run("only_codes short-circuits to the code list", func(t *testing.T) {
		svc := new(MockCollegeService)
		svc.On("ListCollegeCodes", mock.Anything).Return([]string{"CCS", "COE"}, nil).Once()

		router := newCollegeTestRouter(svc)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/colleges?only_codes=true", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":["CCS","COE"]}`, w.Body.String())
		svc.AssertNotCalled(t, "ListColleges", mock.Anything, mock.Anything)
	})
}

func TestCollegeController_GetCollege(t *testing.T) {
	t.Run("unknown code is a 404", func(t *testing.T) {
		svc := new(MockCollegeService)
		svc.On("GetCollege", mock.Anything, "NOPE").Return(nil, apperrors.ErrCollegeNotFound).Once()

		router := newCollegeTestRouter(svc)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/colleges/NOPE", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"college not found"}`, w.Body.String())
	})
}

func TestCollegeController_CreateCollege(t *testing.T) {
	t.Run("valid payload creates and returns the college", func(t *testing.T) {
		svc := new(MockCollegeService)
		svc.On("CreateCollege", mock.Anything, &models.College{
			Code: "CCS", Name: "College of Computer Studies",
		}).Return(nil).Once()

		router := newCollegeTestRouter(svc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/colleges",
			strings.NewReader(`{"college_code":"CCS","college_name":"College of Computer Studies"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"college_code":"CCS","college_name":"College of Computer Studies"}`, w.Body.String())
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		svc := new(MockCollegeService)
		router := newCollegeTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/colleges", strings.NewReader(`{"college_code":"CCS"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "CreateCollege", mock.Anything, mock.Anything)
	})

	t.Run("duplicate code is a 409", func(t *testing.T) {
		svc := new(MockCollegeService)
		svc.On("CreateCollege", mock.Anything, mock.Anything).Return(apperrors.ErrCollegeAlreadyExists).Once()

		router := newCollegeTestRouter(svc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/colleges",
			strings.NewReader(`{"college_code":"CCS","college_name":"College of Computer Studies"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCollegeController_DeleteCollege(t *testing.T) {
	t.Run("college with programs is a 409", func(t *testing.T) {
		svc := new(MockCollegeService)
		svc.On("DeleteCollege", mock.Anything, "CCS").Return(apperrors.ErrCollegeHasPrograms).Once()

		router := newCollegeTestRouter(svc)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/colleges/CCS", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"college has associated programs and cannot be deleted"}`, w.Body.String())
	})

	t.Run("successful delete returns a message", func(t *testing.T) {
		svc := new(MockCollegeService)
		svc.On("DeleteCollege", mock.Anything, "CCS").Return(nil).Once()

		router := newCollegeTestRouter(svc)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/colleges/CCS", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"college deleted"}`, w.Body.String())
	})
}
