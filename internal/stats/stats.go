// Package stats computes the dashboard, nutrition and weekly report views
// from a user's meals. Every function is pure: callers load meals with their
// analyses preloaded and pass "today" explicitly. Values are accumulated at
// full precision and rounded to one decimal only in the returned structs.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"foodtime/internal/model"
)

type macroTotals struct {
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

func (t *macroTotals) add(o macroTotals) {
	t.calories += o.calories
	t.protein += o.protein
	t.carbs += o.carbs
	t.fat += o.fat
}

func sumMacros(meals []model.Meal) macroTotals {
	var t macroTotals
	for _, m := range meals {
		for _, a := range m.Analyses {
			t.calories += value(a.Calories)
			t.protein += value(a.Protein)
			t.carbs += value(a.Carbs)
			t.fat += value(a.Fat)
		}
	}
	return t
}

// scores collects every present health score, including explicit zeros.
func scores(meals []model.Meal) []float64 {
	var out []float64
	for _, m := range meals {
		for _, a := range m.Analyses {
			if a.HealthScore != nil {
				out = append(out, *a.HealthScore)
			}
		}
	}
	return out
}

func byDate(meals []model.Meal) map[string][]model.Meal {
	out := make(map[string][]model.Meal, len(meals))
	for _, m := range meals {
		key := m.Date()
		out[key] = append(out[key], m)
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

func dateKey(t time.Time) string {
	return model.DateOf(t).Format(model.DateLayout)
}
