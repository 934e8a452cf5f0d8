package stats

import (
	"time"

	"foodtime/internal/model"
)

// Macros is a set of four nutrient quantities.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// NutritionReport compares today's consumption with the user's targets.
type NutritionReport struct {
	Date        string        `json:"date"`
	Consumed    Macros        `json:"consumed"`
	Targets     model.Targets `json:"targets"`
	Percentages Macros        `json:"percentages"`
}

// DailyNutrition sums the macros of today's analyses. A target of zero
// reports zero percent.
func DailyNutrition(meals []model.Meal, today time.Time, targets model.Targets) NutritionReport {
	key := dateKey(today)
	t := sumMacros(byDate(meals)[key])

	return NutritionReport{
		Date: key,
		Consumed: Macros{
			Calories: round1(t.calories),
			Protein:  round1(t.protein),
			Carbs:    round1(t.carbs),
			Fat:      round1(t.fat),
		},
		Targets: targets,
		Percentages: Macros{
			Calories: round1(percent(t.calories, targets.Calories)),
			Protein:  round1(percent(t.protein, targets.Protein)),
			Carbs:    round1(percent(t.carbs, targets.Carbs)),
			Fat:      round1(percent(t.fat, targets.Fat)),
		},
	}
}

func percent(consumed float64, target int) float64 {
	if target <= 0 {
		return 0
	}
	return consumed / float64(target) * 100
}
