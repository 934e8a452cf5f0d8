package service

import (
	"context"
	"time"

	"foodtime/internal/ai"
	"foodtime/internal/model"
)

// Clock returns the current time. A nil Clock means time.Now.
type Clock func() time.Time

func (c Clock) today() time.Time {
	if c == nil {
		return model.DateOf(time.Now())
	}
	return model.DateOf(c())
}

// AIGateway is the subset of ai.Gateway the services depend on.
type AIGateway interface {
	ReviewDailyMeals(ctx context.Context, in ai.DailyInput) (*ai.Review, error)
	ReviewSingleFood(ctx context.Context, description string) (*ai.Review, error)
	ReviewPhoto(ctx context.Context, image ai.Image) (*ai.Review, error)
	SummarizeWeek(ctx context.Context, days []ai.DaySummary, stats ai.WeekStats, goals ai.Goals) (string, error)
}

var _ AIGateway = (*ai.Gateway)(nil)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
