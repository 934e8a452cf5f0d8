package model

import "time"

// AnalysisType tags what produced a FoodAnalysis.
type AnalysisType string

const (
	AnalysisTypeDaily     AnalysisType = "daily"
	AnalysisTypeFoodQuery AnalysisType = "food-query"
	AnalysisTypePhoto     AnalysisType = "photo"
)

// FoodAnalysis is the stored result of one AI invocation. Rows are never
// updated; they are created and removed with their meal or owner.
// Nil metrics mean extraction found nothing.
type FoodAnalysis struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	UserID         uint         `json:"user_id" gorm:"not null;index"`
	MealID         *uint        `json:"meal_id,omitempty" gorm:"index"`
	AnalysisType   AnalysisType `json:"analysis_type" gorm:"type:varchar(20);not null"`
	AnalysisResult string       `json:"analysis_result" gorm:"type:text"`
	HealthScore    *float64     `json:"health_score"`
	Calories       *float64     `json:"calories"`
	Protein        *float64     `json:"protein"`
	Carbs          *float64     `json:"carbs"`
	Fat            *float64     `json:"fat"`
	CreatedAt      time.Time    `json:"created_at"`
}

func (FoodAnalysis) TableName() string {
	return "food_analyses"
}
