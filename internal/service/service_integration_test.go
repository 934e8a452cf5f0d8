package service

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"foodtime/internal/ai"
	"foodtime/internal/auth"
	"foodtime/internal/db"
	apperrors "foodtime/internal/errors"
	"foodtime/internal/extract"
	"foodtime/internal/model"
	"foodtime/internal/repository"
	"foodtime/internal/stats"
)

// 2026-10-17 is a Saturday.
var fixedNow = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func strPtr(s string) *string { return &s }

func numPtr(v float64) *float64 { return &v }

type fixture struct {
	db       *gorm.DB
	users    repository.UserRepository
	meals    repository.MealRepository
	analyses repository.AnalysisRepository
	user     *model.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb, err := db.Open(":memory:", db.Options{LogLevel: gormLogger.Silent})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	f := &fixture{
		db:       gdb,
		users:    repository.NewUserRepository(gdb),
		meals:    repository.NewMealRepository(gdb),
		analyses: repository.NewAnalysisRepository(gdb),
	}
	f.user = &model.User{
		Email:              "u@example.com",
		Name:               "U",
		PasswordHash:       "x",
		IsActive:           true,
		Goal:               strPtr("lose weight"),
		DailyCalorieTarget: model.DefaultCalorieTarget,
		DailyProteinTarget: model.DefaultProteinTarget,
		DailyCarbsTarget:   model.DefaultCarbsTarget,
		DailyFatTarget:     model.DefaultFatTarget,
	}
	require.NoError(t, f.users.Create(context.Background(), f.user))
	return f
}

func (f *fixture) mealRows(t *testing.T, date time.Time) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&model.Meal{}).Where("user_id = ? AND meal_date = ?", f.user.ID, model.DateOf(date)).Count(&n).Error)
	return n
}

func TestMealService_SaveUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewMealService(f.meals, fixedClock)

	first, err := svc.Save(ctx, f.user.ID, MealInput{MealDate: fixedNow, MorningMeal: strPtr("toast"), EveningMeal: strPtr("pasta")})
	require.NoError(t, err)

	second, err := svc.Save(ctx, f.user.ID, MealInput{MealDate: fixedNow.Add(3 * time.Hour), MorningMeal: strPtr("oats")})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(1), f.mealRows(t, fixedNow))
	assert.Equal(t, "oats", *second.MorningMeal)
	assert.Nil(t, second.EveningMeal)
}

func TestMealService_NotFoundForOtherUsers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewMealService(f.meals, fixedClock)

	other := &model.User{Email: "other@example.com", Name: "O", PasswordHash: "x"}
	require.NoError(t, f.users.Create(ctx, other))

	meal, err := svc.Save(ctx, f.user.ID, MealInput{MealDate: fixedNow, MorningMeal: strPtr("eggs")})
	require.NoError(t, err)

	_, err = svc.Get(ctx, other.ID, meal.ID)
	assert.ErrorIs(t, err, apperrors.ErrMealNotFound)
	_, err = svc.GetByDate(ctx, other.ID, fixedNow)
	assert.ErrorIs(t, err, apperrors.ErrMealNotFound)
	_, err = svc.Update(ctx, other.ID, meal.ID, MealPatch{MorningMeal: strPtr("x")})
	assert.ErrorIs(t, err, apperrors.ErrMealNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, other.ID, meal.ID), apperrors.ErrMealNotFound)

	got, err := svc.Get(ctx, f.user.ID, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, "eggs", *got.MorningMeal)
}

func TestMealService_PatchAndHistory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewMealService(f.meals, fixedClock)

	for _, ago := range []int{0, 2, 5, 12} {
		_, err := svc.Save(ctx, f.user.ID, MealInput{MealDate: fixedNow.AddDate(0, 0, -ago), MorningMeal: strPtr("m")})
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, f.user.ID, 5)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "2026-10-17", history[0].Date())
	assert.Equal(t, "2026-10-12", history[2].Date())

	defaulted, err := svc.History(ctx, f.user.ID, 0)
	require.NoError(t, err)
	assert.Len(t, defaulted, 3)

	patched, err := svc.Update(ctx, f.user.ID, history[0].ID, MealPatch{EveningMeal: strPtr("soup")})
	require.NoError(t, err)
	assert.Equal(t, "m", *patched.MorningMeal)
	assert.Equal(t, "soup", *patched.EveningMeal)
}

func TestAuth_TokenOfDeletedUserIsUnauthenticated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	users := NewUserService(f.users, nil)
	jwtService := auth.NewJWTService("secret", 30*time.Minute)
	authSvc := NewAuthService(f.users, users, jwtService, auth.NewTokenStore(nil), nil)

	token, err := authSvc.Signup(ctx, SignupInput{Email: "a@example.com", Password: "password123", Name: "A"})
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)

	user, err := authSvc.Authenticate(ctx, claims)
	require.NoError(t, err)
	_, err = NewMealService(f.meals, fixedClock).Save(ctx, user.ID, MealInput{MealDate: fixedNow})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, user.ID))

	_, err = authSvc.Authenticate(ctx, claims)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	assert.ErrorIs(t, users.Delete(ctx, user.ID), apperrors.ErrUserNotFound)
}

func TestUserService_UpdateKeepsPasswordHash(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	users := NewUserService(f.users, nil)

	target := 1800
	updated, err := users.Update(ctx, f.user.ID, UpdateUserInput{Name: strPtr("New"), DailyCalorieTarget: &target})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, 1800, updated.DailyCalorieTarget)
	assert.Equal(t, model.DefaultProteinTarget, updated.DailyProteinTarget)

	reloaded, err := f.users.FindByID(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, "x", reloaded.PasswordHash)

	_, err = users.Update(ctx, 999, UpdateUserInput{})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestAnalysisService_DailySavesMealAndAnalysis(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	gateway := new(MockGateway)
	meals := NewMealService(f.meals, fixedClock)
	svc := NewAnalysisService(gateway, meals, f.meals, f.analyses, fixedClock)

	_, err := meals.Save(ctx, f.user.ID, MealInput{MealDate: fixedNow.AddDate(0, 0, -1), MorningMeal: strPtr("eggs")})
	require.NoError(t, err)

	gateway.On("ReviewDailyMeals", mock.Anything, mock.MatchedBy(func(in ai.DailyInput) bool {
		return in.Morning == "oats" && in.Feelings.Evening == "tired" &&
			len(in.History) == 1 && in.History[0].Date == "2026-10-16" && in.History[0].Morning == "eggs"
	})).Return(&ai.Review{
		Narrative: "Good day",
		Metrics:   extract.Result{HealthScore: numPtr(8), Calories: numPtr(1900)},
	}, nil)

	analysis, err := svc.Daily(ctx, f.user.ID, DailyRequest{
		MorningMeal:    "oats",
		AfternoonMeal:  "salad",
		EveningMeal:    "fish",
		EveningFeeling: strPtr("tired"),
	})
	require.NoError(t, err)
	gateway.AssertExpectations(t)

	assert.Equal(t, model.AnalysisTypeDaily, analysis.AnalysisType)
	assert.Equal(t, 8.0, *analysis.HealthScore)
	assert.Nil(t, analysis.Protein)
	require.NotNil(t, analysis.MealID)

	today, err := meals.GetByDate(ctx, f.user.ID, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, *analysis.MealID, today.ID)
	assert.Equal(t, "fish", *today.EveningMeal)
	require.Len(t, today.Analyses, 1)
}

func TestAnalysisService_GatewayFailureStoresNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	gateway := new(MockGateway)
	svc := NewAnalysisService(gateway, NewMealService(f.meals, fixedClock), f.meals, f.analyses, fixedClock)

	gateway.On("ReviewDailyMeals", mock.Anything, mock.Anything).Return(nil, apperrors.ErrAIUnavailable)

	_, err := svc.Daily(ctx, f.user.ID, DailyRequest{MorningMeal: "a", AfternoonMeal: "b", EveningMeal: "c"})
	assert.ErrorIs(t, err, apperrors.ErrAIUnavailable)
	assert.Equal(t, int64(0), f.mealRows(t, fixedNow))
}

func TestAnalysisService_FoodAndPhotoAreStandalone(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	gateway := new(MockGateway)
	svc := NewAnalysisService(gateway, NewMealService(f.meals, fixedClock), f.meals, f.analyses, fixedClock)

	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
	gateway.On("ReviewSingleFood", mock.Anything, "banana").Return(&ai.Review{Narrative: "fine", Metrics: extract.Result{HealthScore: numPtr(9)}}, nil)
	gateway.On("ReviewPhoto", mock.Anything, mock.MatchedBy(func(img ai.Image) bool {
		return img.MIMEType == "image/png" && len(img.Data) == len(png)
	})).Return(&ai.Review{Narrative: "pizza"}, nil)

	food, err := svc.Food(ctx, f.user.ID, "banana")
	require.NoError(t, err)
	assert.Nil(t, food.MealID)
	assert.Equal(t, model.AnalysisTypeFoodQuery, food.AnalysisType)

	photo, err := svc.Photo(ctx, f.user.ID, PhotoRequest{ImageBase64: base64.StdEncoding.EncodeToString(png)})
	require.NoError(t, err)
	assert.Equal(t, model.AnalysisTypePhoto, photo.AnalysisType)
	assert.Nil(t, photo.HealthScore)

	history, err := svc.History(ctx, f.user.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, photo.ID, history[0].ID)
	gateway.AssertExpectations(t)
}

func TestDecodeImage(t *testing.T) {
	jpeg := append([]byte{0xff, 0xd8, 0xff, 0xe0}, make([]byte, 16)...)
	encoded := base64.StdEncoding.EncodeToString(jpeg)

	img, err := decodeImage(PhotoRequest{ImageBase64: encoded})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", img.MIMEType)

	img, err = decodeImage(PhotoRequest{ImageBase64: "data:image/webp;base64," + encoded})
	require.NoError(t, err)
	assert.Equal(t, "image/webp", img.MIMEType)

	_, err = decodeImage(PhotoRequest{ImageBase64: "%%%not base64"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidImage)

	_, err = decodeImage(PhotoRequest{ImageBase64: base64.StdEncoding.EncodeToString([]byte("just some text"))})
	assert.ErrorIs(t, err, apperrors.ErrInvalidImage)
}

func TestReportService_Weekly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	gateway := new(MockGateway)
	reports := NewReportService(f.meals, gateway, fixedClock)

	empty, err := reports.Weekly(ctx, f.user, 0)
	require.NoError(t, err)
	assert.Equal(t, NoWeeklyDataMessage, empty.Insights)
	assert.Nil(t, empty.Trends.BestDay)

	meal := &model.Meal{UserID: f.user.ID, MealDate: fixedNow, MorningMeal: strPtr("oats")}
	require.NoError(t, f.meals.Create(ctx, meal))
	require.NoError(t, f.analyses.Create(ctx, &model.FoodAnalysis{
		UserID: f.user.ID, MealID: &meal.ID, AnalysisType: model.AnalysisTypeDaily,
		HealthScore: numPtr(7), Calories: numPtr(2100),
	}))

	gateway.On("SummarizeWeek", mock.Anything,
		[]ai.DaySummary{{Date: "2026-10-17", Morning: "oats"}},
		ai.WeekStats{AvgHealthScore: 7, TotalCalories: 2100, AvgCalories: 300, TotalMeals: 1},
		ai.Goals{Goal: "lose weight", DailyCalorieTarget: model.DefaultCalorieTarget},
	).Return("Keep going", nil)

	report, err := reports.Weekly(ctx, f.user, 0)
	require.NoError(t, err)
	assert.Equal(t, "Keep going", report.Insights)
	assert.Equal(t, "2026-10-12", report.WeekStart)
	assert.Equal(t, "2026-10-17", *report.Trends.BestDay)
	gateway.AssertExpectations(t)

	previous, err := reports.Weekly(ctx, f.user, -1)
	require.NoError(t, err)
	assert.Equal(t, NoWeeklyDataMessage, previous.Insights)
}

func TestReportService_DashboardAndNutrition(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	reports := NewReportService(f.meals, new(MockGateway), fixedClock)

	for _, ago := range []int{0, 1, 3} {
		meal := &model.Meal{UserID: f.user.ID, MealDate: fixedNow.AddDate(0, 0, -ago)}
		require.NoError(t, f.meals.Create(ctx, meal))
		require.NoError(t, f.analyses.Create(ctx, &model.FoodAnalysis{
			UserID: f.user.ID, MealID: &meal.ID, AnalysisType: model.AnalysisTypeDaily,
			HealthScore: numPtr(6), Calories: numPtr(1000), Protein: numPtr(75),
		}))
	}

	dashboard, err := reports.Dashboard(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, dashboard.Summary.StreakDays)
	assert.Equal(t, 3, dashboard.Summary.TotalMeals)
	assert.Len(t, dashboard.WeekTrend, 7)

	nutrition, err := reports.DailyNutrition(ctx, f.user)
	require.NoError(t, err)
	assert.Equal(t, stats.Macros{Calories: 1000, Protein: 75}, nutrition.Consumed)
	assert.Equal(t, 50.0, nutrition.Percentages.Calories)
	assert.Equal(t, 50.0, nutrition.Percentages.Protein)
}
