package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "foodtime/internal/errors"
	"foodtime/internal/model"
	"foodtime/internal/repository"
)

const (
	DefaultHistoryDays = 10
	MaxHistoryDays     = 30
)

// MealInput is a full meal log for one date. Nil slots are stored as empty.
type MealInput struct {
	MealDate         time.Time
	MorningMeal      *string
	MorningFeeling   *string
	AfternoonMeal    *string
	AfternoonFeeling *string
	EveningMeal      *string
	EveningFeeling   *string
}

// MealPatch updates only the non-nil slots.
type MealPatch struct {
	MorningMeal      *string
	MorningFeeling   *string
	AfternoonMeal    *string
	AfternoonFeeling *string
	EveningMeal      *string
	EveningFeeling   *string
}

func (p MealPatch) fields() map[string]interface{} {
	fields := make(map[string]interface{})
	for column, v := range map[string]*string{
		"morning_meal":      p.MorningMeal,
		"morning_feeling":   p.MorningFeeling,
		"afternoon_meal":    p.AfternoonMeal,
		"afternoon_feeling": p.AfternoonFeeling,
		"evening_meal":      p.EveningMeal,
		"evening_feeling":   p.EveningFeeling,
	} {
		if v != nil {
			fields[column] = *v
		}
	}
	return fields
}

// MealService manages a user's daily meal logs.
type MealService interface {
	Save(ctx context.Context, userID uint, in MealInput) (*model.Meal, error)
	Get(ctx context.Context, userID, id uint) (*model.Meal, error)
	GetByDate(ctx context.Context, userID uint, date time.Time) (*model.Meal, error)
	History(ctx context.Context, userID uint, days int) ([]model.Meal, error)
	Update(ctx context.Context, userID, id uint, patch MealPatch) (*model.Meal, error)
	Delete(ctx context.Context, userID, id uint) error
}

type mealService struct {
	repo  repository.MealRepository
	clock Clock
}

// NewMealService creates a new meal service.
func NewMealService(repo repository.MealRepository, clock Clock) MealService {
	return &mealService{repo: repo, clock: clock}
}

// Save creates the meal for the date or, when one exists, overwrites all of
// its slots. The lookup and the write are separate statements, so two
// concurrent saves for the same date may both create; the last write wins.
func (s *mealService) Save(ctx context.Context, userID uint, in MealInput) (*model.Meal, error) {
	date := model.DateOf(in.MealDate)
	existing, err := s.repo.FindByDate(ctx, userID, date)
	switch {
	case err == nil:
		return s.repo.UpdateFields(ctx, userID, existing.ID, map[string]interface{}{
			"morning_meal":      in.MorningMeal,
			"morning_feeling":   in.MorningFeeling,
			"afternoon_meal":    in.AfternoonMeal,
			"afternoon_feeling": in.AfternoonFeeling,
			"evening_meal":      in.EveningMeal,
			"evening_feeling":   in.EveningFeeling,
		})
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("find meal by date: %w", err)
	}

	meal := &model.Meal{
		UserID:           userID,
		MealDate:         date,
		MorningMeal:      in.MorningMeal,
		MorningFeeling:   in.MorningFeeling,
		AfternoonMeal:    in.AfternoonMeal,
		AfternoonFeeling: in.AfternoonFeeling,
		EveningMeal:      in.EveningMeal,
		EveningFeeling:   in.EveningFeeling,
	}
	if err := s.repo.Create(ctx, meal); err != nil {
		return nil, fmt.Errorf("create meal: %w", err)
	}
	return meal, nil
}

func (s *mealService) Get(ctx context.Context, userID, id uint) (*model.Meal, error) {
	meal, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, mealError(err)
	}
	return meal, nil
}

func (s *mealService) GetByDate(ctx context.Context, userID uint, date time.Time) (*model.Meal, error) {
	meal, err := s.repo.FindByDate(ctx, userID, date)
	if err != nil {
		return nil, mealError(err)
	}
	return meal, nil
}

// History returns up to days meals dated from today-days onwards, newest first.
// Out of range values fall back to the default.
func (s *mealService) History(ctx context.Context, userID uint, days int) ([]model.Meal, error) {
	if days < 1 || days > MaxHistoryDays {
		days = DefaultHistoryDays
	}
	since := s.clock.today().AddDate(0, 0, -days)
	meals, err := s.repo.History(ctx, userID, since, days)
	if err != nil {
		return nil, fmt.Errorf("meal history: %w", err)
	}
	return meals, nil
}

func (s *mealService) Update(ctx context.Context, userID, id uint, patch MealPatch) (*model.Meal, error) {
	meal, err := s.repo.UpdateFields(ctx, userID, id, patch.fields())
	if err != nil {
		return nil, mealError(err)
	}
	return meal, nil
}

func (s *mealService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return mealError(err)
	}
	return nil
}

func mealError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrMealNotFound
	}
	return fmt.Errorf("meal store: %w", err)
}
