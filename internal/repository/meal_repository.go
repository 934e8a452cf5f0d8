package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "foodtime/internal/errors"
	"foodtime/internal/model"
)

// MealRepository stores one meal log per user per day. Every read is scoped
// to the owner; another user's meal is indistinguishable from a missing one.
type MealRepository interface {
	Create(ctx context.Context, meal *model.Meal) error
	FindByID(ctx context.Context, userID, id uint) (*model.Meal, error)
	FindByDate(ctx context.Context, userID uint, date time.Time) (*model.Meal, error)
	History(ctx context.Context, userID uint, since time.Time, limit int) ([]model.Meal, error)
	ListRange(ctx context.Context, userID uint, from, to time.Time) ([]model.Meal, error)
	ListAll(ctx context.Context, userID uint) ([]model.Meal, error)
	UpdateFields(ctx context.Context, userID, id uint, fields map[string]interface{}) (*model.Meal, error)
	Delete(ctx context.Context, userID, id uint) error
}

type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository creates a new meal repository.
func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

// Create fails with ErrMealExists when the user already has a meal on that date.
func (r *mealRepository) Create(ctx context.Context, meal *model.Meal) error {
	meal.MealDate = model.DateOf(meal.MealDate)
	_, err := r.FindByDate(ctx, meal.UserID, meal.MealDate)
	switch {
	case err == nil:
		return apperrors.ErrMealExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealRepository) FindByID(ctx context.Context, userID, id uint) (*model.Meal, error) {
	var meal model.Meal
	err := r.withAnalyses(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&meal).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) FindByDate(ctx context.Context, userID uint, date time.Time) (*model.Meal, error) {
	var meal model.Meal
	err := r.withAnalyses(ctx).
		Where("user_id = ? AND meal_date = ?", userID, model.DateOf(date)).
		First(&meal).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// History returns meals dated on or after since, newest first.
func (r *mealRepository) History(ctx context.Context, userID uint, since time.Time, limit int) ([]model.Meal, error) {
	var meals []model.Meal
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND meal_date >= ?", userID, model.DateOf(since)).
		Order("meal_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// ListRange returns meals in [from, to], oldest first, with analyses.
func (r *mealRepository) ListRange(ctx context.Context, userID uint, from, to time.Time) ([]model.Meal, error) {
	var meals []model.Meal
	err := r.withAnalyses(ctx).
		Where("user_id = ? AND meal_date >= ? AND meal_date <= ?", userID, model.DateOf(from), model.DateOf(to)).
		Order("meal_date ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}

// ListAll returns every meal of the user, newest first, with analyses.
func (r *mealRepository) ListAll(ctx context.Context, userID uint) ([]model.Meal, error) {
	var meals []model.Meal
	err := r.withAnalyses(ctx).
		Where("user_id = ?", userID).
		Order("meal_date DESC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}

// UpdateFields applies only the given columns and returns the reloaded meal.
func (r *mealRepository) UpdateFields(ctx context.Context, userID, id uint, fields map[string]interface{}) (*model.Meal, error) {
	meal, err := r.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return meal, nil
	}
	if err := r.db.WithContext(ctx).Model(meal).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, userID, id)
}

// Delete removes the meal and its analyses in one transaction.
func (r *mealRepository) Delete(ctx context.Context, userID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meal model.Meal
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&meal).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&model.FoodAnalysis{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meal).Error
	})
}

func (r *mealRepository) withAnalyses(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Analyses", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}
