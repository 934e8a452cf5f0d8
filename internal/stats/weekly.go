package stats

import (
	"time"

	"foodtime/internal/model"
)

const (
	TrendImproving  = "improving"
	TrendDeclining  = "declining"
	TrendStable     = "stable"
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"

	scoreTrendThreshold   = 0.5
	calorieTrendThreshold = 200
)

type MacroSummary struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

type WeekSummary struct {
	TotalMeals        int          `json:"total_meals"`
	AvgHealthScore    float64      `json:"avg_health_score"`
	TotalCalories     float64      `json:"total_calories"`
	AvgCaloriesPerDay float64      `json:"avg_calories_per_day"`
	Macros            MacroSummary `json:"macros"`
}

type DayBreakdown struct {
	Date        string  `json:"date"`
	HealthScore float64 `json:"health_score"`
	Calories    float64 `json:"calories"`
	MealCount   int     `json:"meal_count"`
}

// Trends compares the week with the one before it. BestDay and WorstDay are
// nil when no day of the week has a nonzero score.
type Trends struct {
	HealthScoreTrend string  `json:"health_score_trend"`
	CalorieTrend     string  `json:"calorie_trend"`
	BestDay          *string `json:"best_day"`
	WorstDay         *string `json:"worst_day"`
}

// WeeklyReport covers one Monday..Sunday week. Insights is filled in by the caller.
type WeeklyReport struct {
	WeekStart      string         `json:"week_start"`
	WeekEnd        string         `json:"week_end"`
	Summary        WeekSummary    `json:"summary"`
	DailyBreakdown []DayBreakdown `json:"daily_breakdown"`
	Insights       string         `json:"insights"`
	Trends         Trends         `json:"trends"`
}

// WeekRange returns the Monday and Sunday of the week containing today,
// shifted by offset weeks.
func WeekRange(today time.Time, offset int) (start, end time.Time) {
	today = model.DateOf(today)
	sinceMonday := (int(today.Weekday()) + 6) % 7
	start = today.AddDate(0, 0, -sinceMonday+7*offset)
	return start, start.AddDate(0, 0, 6)
}

// Weekly aggregates the week starting at weekStart. previous holds the
// preceding week's meals and is only used for trend classification.
func Weekly(current, previous []model.Meal, weekStart time.Time) WeeklyReport {
	start := model.DateOf(weekStart)
	days := byDate(current)

	var (
		totalMeals int
		allScores  []float64
		totals     macroTotals
		best       *TrendPoint
		worst      *TrendPoint
	)
	breakdown := make([]DayBreakdown, 0, 7)
	for i := 0; i < 7; i++ {
		key := dateKey(start.AddDate(0, 0, i))
		dayMeals := days[key]
		dayScores := scores(dayMeals)
		dayTotals := sumMacros(dayMeals)
		avg := mean(dayScores)

		totalMeals += len(dayMeals)
		allScores = append(allScores, dayScores...)
		totals.add(dayTotals)

		breakdown = append(breakdown, DayBreakdown{
			Date:        key,
			HealthScore: round1(avg),
			Calories:    round1(dayTotals.calories),
			MealCount:   len(dayMeals),
		})

		if avg == 0 {
			continue
		}
		if best == nil || avg > best.Score {
			best = &TrendPoint{Date: key, Score: avg}
		}
		if worst == nil || avg < worst.Score {
			worst = &TrendPoint{Date: key, Score: avg}
		}
	}

	avgScore := mean(allScores)
	avgCalories := totals.calories / 7

	prevScore := avgScore
	if prev := scores(previous); len(prev) > 0 {
		prevScore = mean(prev)
	}
	prevCalories := sumMacros(previous).calories / 7
	if prevCalories == 0 {
		prevCalories = avgCalories
	}

	trends := Trends{
		HealthScoreTrend: classify(avgScore-prevScore, scoreTrendThreshold, TrendImproving, TrendDeclining),
		CalorieTrend:     classify(avgCalories-prevCalories, calorieTrendThreshold, TrendIncreasing, TrendDecreasing),
	}
	if best != nil {
		trends.BestDay = &best.Date
		trends.WorstDay = &worst.Date
	}

	return WeeklyReport{
		WeekStart: dateKey(start),
		WeekEnd:   dateKey(start.AddDate(0, 0, 6)),
		Summary: WeekSummary{
			TotalMeals:        totalMeals,
			AvgHealthScore:    round1(avgScore),
			TotalCalories:     round1(totals.calories),
			AvgCaloriesPerDay: round1(avgCalories),
			Macros: MacroSummary{
				Protein: round1(totals.protein),
				Carbs:   round1(totals.carbs),
				Fat:     round1(totals.fat),
			},
		},
		DailyBreakdown: breakdown,
		Trends:         trends,
	}
}

func classify(delta, threshold float64, up, down string) string {
	switch {
	case delta > threshold:
		return up
	case delta < -threshold:
		return down
	default:
		return TrendStable
	}
}
