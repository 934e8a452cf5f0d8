package model

import "time"

// Default daily nutrient targets applied to new accounts.
const (
	DefaultCalorieTarget = 2000
	DefaultProteinTarget = 150
	DefaultCarbsTarget   = 250
	DefaultFatTarget     = 70
)

// User represents an account and its nutrition profile.
type User struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Email        string   `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name         string   `json:"name" gorm:"size:100;not null"`
	PasswordHash string   `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	IsActive     bool     `json:"is_active" gorm:"not null;default:true"`
	Weight       *float64 `json:"weight,omitempty"` // kg
	Height       *float64 `json:"height,omitempty"` // cm
	Gender       *string  `json:"gender,omitempty" gorm:"size:20"`
	Job          *string  `json:"job,omitempty" gorm:"size:100"`
	Goal         *string  `json:"goal,omitempty" gorm:"size:50"`

	DailyCalorieTarget int `json:"daily_calorie_target" gorm:"not null;default:2000"`
	DailyProteinTarget int `json:"daily_protein_target" gorm:"not null;default:150"`
	DailyCarbsTarget   int `json:"daily_carbs_target" gorm:"not null;default:250"`
	DailyFatTarget     int `json:"daily_fat_target" gorm:"not null;default:70"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Meals []Meal `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Targets returns the user's daily nutrient targets.
func (u *User) Targets() Targets {
	return Targets{
		Calories: u.DailyCalorieTarget,
		Protein:  u.DailyProteinTarget,
		Carbs:    u.DailyCarbsTarget,
		Fat:      u.DailyFatTarget,
	}
}

// Targets groups the four daily nutrient goals.
type Targets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}
