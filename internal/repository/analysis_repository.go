package repository

import (
	"context"

	"gorm.io/gorm"

	"foodtime/internal/model"
)

// AnalysisRepository persists AI analysis results. Rows are append-only.
type AnalysisRepository interface {
	Create(ctx context.Context, analysis *model.FoodAnalysis) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]model.FoodAnalysis, error)
	ListByMeal(ctx context.Context, userID, mealID uint) ([]model.FoodAnalysis, error)
}

type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new analysis repository.
func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(ctx context.Context, analysis *model.FoodAnalysis) error {
	return r.db.WithContext(ctx).Create(analysis).Error
}

// ListByUser returns the newest analyses first.
func (r *analysisRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]model.FoodAnalysis, error) {
	var analyses []model.FoodAnalysis
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&analyses).Error; err != nil {
		return nil, err
	}
	return analyses, nil
}

func (r *analysisRepository) ListByMeal(ctx context.Context, userID, mealID uint) ([]model.FoodAnalysis, error) {
	var analyses []model.FoodAnalysis
	err := r.db.WithContext(ctx).
		Where("meal_id = ? AND user_id = ?", mealID, userID).
		Order("id ASC").
		Find(&analyses).Error
	if err != nil {
		return nil, err
	}
	return analyses, nil
}
