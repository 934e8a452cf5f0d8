package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"foodtime/internal/ai"
	"foodtime/internal/model"
	"foodtime/internal/repository"
	"foodtime/internal/stats"
)

// NoWeeklyDataMessage replaces the AI summary for weeks without meals.
const NoWeeklyDataMessage = "Not enough data for this week yet. Start logging your meals!"

// ReportService loads meals and runs the aggregations over them.
type ReportService interface {
	DailyNutrition(ctx context.Context, user *model.User) (*stats.NutritionReport, error)
	Dashboard(ctx context.Context, userID uint) (*stats.DashboardStats, error)
	Weekly(ctx context.Context, user *model.User, weekOffset int) (*stats.WeeklyReport, error)
}

type reportService struct {
	meals   repository.MealRepository
	gateway AIGateway
	clock   Clock
}

// NewReportService creates a new report service.
func NewReportService(meals repository.MealRepository, gateway AIGateway, clock Clock) ReportService {
	return &reportService{meals: meals, gateway: gateway, clock: clock}
}

func (s *reportService) DailyNutrition(ctx context.Context, user *model.User) (*stats.NutritionReport, error) {
	today := s.clock.today()
	meals, err := s.meals.ListRange(ctx, user.ID, today, today)
	if err != nil {
		return nil, fmt.Errorf("load today's meals: %w", err)
	}
	report := stats.DailyNutrition(meals, today, user.Targets())
	return &report, nil
}

func (s *reportService) Dashboard(ctx context.Context, userID uint) (*stats.DashboardStats, error) {
	meals, err := s.meals.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load meals: %w", err)
	}
	dashboard := stats.Dashboard(meals, s.clock.today())
	return &dashboard, nil
}

// Weekly builds the report for the week weekOffset weeks from the current one
// and asks the gateway for a narrative when the week has meals.
func (s *reportService) Weekly(ctx context.Context, user *model.User, weekOffset int) (*stats.WeeklyReport, error) {
	today := s.clock.today()
	start, end := stats.WeekRange(today, weekOffset)
	prevStart, prevEnd := stats.WeekRange(today, weekOffset-1)

	var current, previous []model.Meal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.meals.ListRange(gctx, user.ID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.meals.ListRange(gctx, user.ID, prevStart, prevEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load weekly meals: %w", err)
	}

	report := stats.Weekly(current, previous, start)
	if report.Summary.TotalMeals == 0 {
		report.Insights = NoWeeklyDataMessage
		return &report, nil
	}

	days := make([]ai.DaySummary, 0, len(current))
	for i := range current {
		days = append(days, daySummary(&current[i]))
	}
	summary := report.Summary
	insights, err := s.gateway.SummarizeWeek(ctx, days, ai.WeekStats{
		AvgHealthScore: summary.AvgHealthScore,
		TotalCalories:  summary.TotalCalories,
		AvgCalories:    summary.AvgCaloriesPerDay,
		TotalProtein:   summary.Macros.Protein,
		TotalCarbs:     summary.Macros.Carbs,
		TotalFat:       summary.Macros.Fat,
		TotalMeals:     summary.TotalMeals,
	}, ai.Goals{
		Goal:               deref(user.Goal),
		DailyCalorieTarget: user.DailyCalorieTarget,
	})
	if err != nil {
		return nil, err
	}
	report.Insights = insights
	return &report, nil
}
