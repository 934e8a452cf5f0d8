package stats

import (
	"sort"
	"strings"
	"time"

	"foodtime/internal/model"
)

const (
	trendDays       = 7
	recentMealCount = 5
	slotPreviewLen  = 50
	noMealDetails   = "No meal details"
)

type TodayStats struct {
	HealthScore float64 `json:"health_score"`
	MealsLogged int     `json:"meals_logged"`
	Date        string  `json:"date"`
}

type TrendPoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

type RecentMeal struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	HealthScore float64 `json:"health_score"`
}

type Summary struct {
	TotalMeals int     `json:"total_meals"`
	AvgScore   float64 `json:"avg_score"`
	WeekAvg    float64 `json:"week_avg"`
	StreakDays int     `json:"streak_days"`
}

// DashboardStats is the aggregated view shown on the dashboard.
type DashboardStats struct {
	Today       TodayStats   `json:"today"`
	WeekTrend   []TrendPoint `json:"week_trend"`
	RecentMeals []RecentMeal `json:"recent_meals"`
	Summary     Summary      `json:"summary"`
}

// Dashboard builds the dashboard from all of a user's meals.
func Dashboard(meals []model.Meal, today time.Time) DashboardStats {
	today = model.DateOf(today)
	days := byDate(meals)
	todayMeals := days[dateKey(today)]

	trend := make([]TrendPoint, 0, trendDays)
	var weekScores []float64
	for i := trendDays - 1; i >= 0; i-- {
		key := dateKey(today.AddDate(0, 0, -i))
		score := mean(scores(days[key]))
		trend = append(trend, TrendPoint{Date: key, Score: round1(score)})
		if score != 0 {
			weekScores = append(weekScores, score)
		}
	}

	return DashboardStats{
		Today: TodayStats{
			HealthScore: round1(mean(scores(todayMeals))),
			MealsLogged: len(todayMeals),
			Date:        dateKey(today),
		},
		WeekTrend:   trend,
		RecentMeals: recentMeals(meals),
		Summary: Summary{
			TotalMeals: len(meals),
			AvgScore:   round1(mean(scores(meals))),
			WeekAvg:    round1(mean(weekScores)),
			StreakDays: Streak(meals, today),
		},
	}
}

// Streak counts consecutive days with at least one meal, walking back from
// today and stopping at the first day without one.
func Streak(meals []model.Meal, today time.Time) int {
	logged := make(map[string]bool, len(meals))
	for _, m := range meals {
		logged[m.Date()] = true
	}
	n := 0
	for d := model.DateOf(today); logged[dateKey(d)]; d = d.AddDate(0, 0, -1) {
		n++
	}
	return n
}

func recentMeals(meals []model.Meal) []RecentMeal {
	sorted := make([]model.Meal, len(meals))
	copy(sorted, meals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MealDate.After(sorted[j].MealDate)
	})
	if len(sorted) > recentMealCount {
		sorted = sorted[:recentMealCount]
	}

	out := make([]RecentMeal, 0, len(sorted))
	for i := range sorted {
		m := &sorted[i]
		var score float64
		if len(m.Analyses) > 0 {
			score = value(m.Analyses[0].HealthScore)
		}
		out = append(out, RecentMeal{
			ID:          m.ID,
			Date:        m.Date(),
			Description: describe(m),
			HealthScore: round1(score),
		})
	}
	return out
}

var slotLabels = [3]string{"Morning", "Afternoon", "Evening"}

func describe(m *model.Meal) string {
	var parts []string
	for i, slot := range m.Slots() {
		if slot == "" {
			continue
		}
		parts = append(parts, slotLabels[i]+": "+truncate(slot, slotPreviewLen))
	}
	if len(parts) == 0 {
		return noMealDetails
	}
	return strings.Join(parts, " | ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
