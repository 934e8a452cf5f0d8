package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodtime/internal/errors"
	"foodtime/internal/model"
	"foodtime/internal/service"
	"foodtime/internal/stats"
)

type testValidator struct {
	v *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.v.Struct(i)
}

// MockMealService is a mock implementation of service.MealService.
type MockMealService struct {
	mock.Mock
}

func (m *MockMealService) Save(ctx context.Context, userID uint, in service.MealInput) (*model.Meal, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Meal), args.Error(1)
}

func (m *MockMealService) Get(ctx context.Context, userID, id uint) (*model.Meal, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Meal), args.Error(1)
}

func (m *MockMealService) GetByDate(ctx context.Context, userID uint, date time.Time) (*model.Meal, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Meal), args.Error(1)
}

func (m *MockMealService) History(ctx context.Context, userID uint, days int) ([]model.Meal, error) {
	args := m.Called(ctx, userID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Meal), args.Error(1)
}

func (m *MockMealService) Update(ctx context.Context, userID, id uint, patch service.MealPatch) (*model.Meal, error) {
	args := m.Called(ctx, userID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Meal), args.Error(1)
}

func (m *MockMealService) Delete(ctx context.Context, userID, id uint) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) DailyNutrition(ctx context.Context, user *model.User) (*stats.NutritionReport, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.NutritionReport), args.Error(1)
}

func (m *MockReportService) Dashboard(ctx context.Context, userID uint) (*stats.DashboardStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.DashboardStats), args.Error(1)
}

func (m *MockReportService) Weekly(ctx context.Context, user *model.User, weekOffset int) (*stats.WeeklyReport, error) {
	args := m.Called(ctx, user, weekOffset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.WeeklyReport), args.Error(1)
}

var testUser = &model.User{ID: 7, Email: "u@example.com", IsActive: true}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(UserContextKey, testUser)
	return c, rec
}

func requireHTTPError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	assert.Equal(t, status, he.Code)
	body, ok := he.Message.(errors.ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, code, body.Code)
}

func TestCurrentUser_Missing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := currentUser(c)
	requireHTTPError(t, err, http.StatusUnauthorized, "UNAUTHENTICATED")
}

func TestMealHandler_History(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		days   int
		status int
	}{
		{"default", "", service.DefaultHistoryDays, http.StatusOK},
		{"explicit", "?days=30", 30, http.StatusOK},
		{"too many", "?days=31", 0, http.StatusBadRequest},
		{"zero", "?days=0", 0, http.StatusBadRequest},
		{"not a number", "?days=ten", 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockMealService)
			if tt.status == http.StatusOK {
				svc.On("History", mock.Anything, testUser.ID, tt.days).Return([]model.Meal{}, nil)
			}
			h := NewMealHandler(svc)

			c, rec := newContext(http.MethodGet, "/api/meals/history"+tt.query, "")
			err := h.History(c)

			if tt.status == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `[]`, rec.Body.String())
			} else {
				requireHTTPError(t, err, tt.status, "VALIDATION_ERROR")
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestMealHandler_Create(t *testing.T) {
	svc := new(MockMealService)
	date := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	oats := "oats"
	svc.On("Save", mock.Anything, testUser.ID, mock.MatchedBy(func(in service.MealInput) bool {
		return in.MealDate.Equal(date) && in.MorningMeal != nil && *in.MorningMeal == oats && in.EveningMeal == nil
	})).Return(&model.Meal{ID: 3, UserID: testUser.ID, MealDate: date, MorningMeal: &oats}, nil)
	h := NewMealHandler(svc)

	c, rec := newContext(http.MethodPost, "/api/meals/", `{"meal_date":"2026-10-17","morning_meal":"oats"}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"meal_date":"2026-10-17"`)
	assert.NotContains(t, rec.Body.String(), `"analyses"`)
	svc.AssertExpectations(t)
}

func TestMealHandler_CreateRejectsBadDate(t *testing.T) {
	h := NewMealHandler(new(MockMealService))

	c, _ := newContext(http.MethodPost, "/api/meals/", `{"meal_date":"17/10/2026"}`)
	requireHTTPError(t, h.Create(c), http.StatusBadRequest, "VALIDATION_ERROR")

	c, _ = newContext(http.MethodPost, "/api/meals/", `{"meal_date":`)
	requireHTTPError(t, h.Create(c), http.StatusBadRequest, "INVALID_REQUEST")
}

func TestMealHandler_GetMapsNotFound(t *testing.T) {
	svc := new(MockMealService)
	svc.On("Get", mock.Anything, testUser.ID, uint(9)).Return(nil, errors.ErrMealNotFound)
	h := NewMealHandler(svc)

	c, _ := newContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	requireHTTPError(t, h.Get(c), http.StatusNotFound, "MEAL_NOT_FOUND")

	c, _ = newContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	requireHTTPError(t, h.Get(c), http.StatusBadRequest, "VALIDATION_ERROR")
	svc.AssertExpectations(t)
}

func TestReportHandler_Weekly(t *testing.T) {
	svc := new(MockReportService)
	svc.On("Weekly", mock.Anything, testUser, -1).Return(&stats.WeeklyReport{WeekStart: "2026-10-05"}, nil)
	h := NewReportHandler(svc)

	c, rec := newContext(http.MethodGet, "/api/reports/weekly?week_offset=-1", "")
	require.NoError(t, h.Weekly(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"week_start":"2026-10-05"`)

	c, _ = newContext(http.MethodGet, "/api/reports/weekly?week_offset=2", "")
	requireHTTPError(t, h.Weekly(c), http.StatusBadRequest, "VALIDATION_ERROR")
	svc.AssertExpectations(t)
}

func TestReportHandler_DashboardError(t *testing.T) {
	svc := new(MockReportService)
	svc.On("Dashboard", mock.Anything, testUser.ID).Return(nil, errors.ErrAIUnavailable)
	h := NewReportHandler(svc)

	c, _ := newContext(http.MethodGet, "/api/dashboard/stats", "")
	requireHTTPError(t, h.Dashboard(c), http.StatusBadGateway, "AI_UNAVAILABLE")
}
