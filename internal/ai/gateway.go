// Package ai builds prompts for meal reviews and weekly summaries and sends
// them to a completion service.
package ai

import (
	"context"
	"fmt"
	"strings"

	apperrors "foodtime/internal/errors"
	"foodtime/internal/extract"
	"foodtime/internal/logger"
)

// Feelings are the optional per-slot feeling tags of a day.
type Feelings struct {
	Morning   string
	Afternoon string
	Evening   string
}

// DaySummary is one prior day given to the model as context.
type DaySummary struct {
	Date      string
	Morning   string
	Afternoon string
	Evening   string
}

// DailyInput is everything the daily review prompt needs.
type DailyInput struct {
	Morning   string
	Afternoon string
	Evening   string
	Feelings  Feelings
	History   []DaySummary
}

// WeekStats are the aggregate numbers handed to the weekly summary.
type WeekStats struct {
	AvgHealthScore float64
	TotalCalories  float64
	AvgCalories    float64
	TotalProtein   float64
	TotalCarbs     float64
	TotalFat       float64
	TotalMeals     int
}

// Goals frames the weekly summary.
type Goals struct {
	Goal               string
	DailyCalorieTarget int
}

// Review is a cleaned narrative plus whatever metrics could be extracted.
type Review struct {
	Narrative string
	Metrics   extract.Result
}

// Gateway turns domain requests into completion calls.
type Gateway struct {
	completer Completer
	log       *logger.Logger
}

func NewGateway(completer Completer, log *logger.Logger) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{completer: completer, log: log}
}

// ReviewDailyMeals scores a full day and extracts calories and macros.
func (g *Gateway) ReviewDailyMeals(ctx context.Context, in DailyInput) (*Review, error) {
	text, err := g.complete(ctx, "daily", dailyPrompt(in), nil)
	if err != nil {
		return nil, err
	}
	metrics := extract.Metrics(text)
	if missing := metrics.Missing(); len(missing) > 0 {
		g.log.Debug("daily review extraction incomplete", "missing", missing)
	}
	return &Review{Narrative: text, Metrics: metrics}, nil
}

// ReviewSingleFood scores one food description. Only the score is extracted.
func (g *Gateway) ReviewSingleFood(ctx context.Context, description string) (*Review, error) {
	text, err := g.complete(ctx, "food-query", foodPrompt(description), nil)
	if err != nil {
		return nil, err
	}
	return g.scored("food-query", text), nil
}

// ReviewPhoto scores the food shown in an image.
func (g *Gateway) ReviewPhoto(ctx context.Context, image Image) (*Review, error) {
	text, err := g.complete(ctx, "photo", photoPrompt(), &image)
	if err != nil {
		return nil, err
	}
	return g.scored("photo", text), nil
}

// SummarizeWeek returns a narrative for a week of meals.
func (g *Gateway) SummarizeWeek(ctx context.Context, days []DaySummary, stats WeekStats, goals Goals) (string, error) {
	return g.complete(ctx, "weekly", weeklyPrompt(days, stats, goals), nil)
}

func (g *Gateway) scored(kind, text string) *Review {
	score := extract.Score(text)
	if score == nil {
		g.log.Debug("no health score in review", "kind", kind)
	}
	return &Review{Narrative: text, Metrics: extract.Result{HealthScore: score}}
}

func (g *Gateway) complete(ctx context.Context, kind, prompt string, image *Image) (string, error) {
	raw, err := g.completer.Complete(ctx, prompt, image)
	if err != nil {
		g.log.Error("completion failed", "kind", kind, "error", err)
		return "", fmt.Errorf("%s review: %w", kind, apperrors.ErrAIUnavailable)
	}
	return Clean(raw), nil
}

var markup = strings.NewReplacer("*", "", "#", "")

// Clean removes emphasis markup and surrounding whitespace.
func Clean(s string) string {
	return strings.TrimSpace(markup.Replace(s))
}
