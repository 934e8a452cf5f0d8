package model

import (
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Meal is one user's log for a calendar day, split into three slots.
type Meal struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"user_id" gorm:"not null;index:idx_meals_user_date"`
	MealDate         time.Time `json:"-" gorm:"type:date;not null;index:idx_meals_user_date"`
	MorningMeal      *string   `json:"morning_meal" gorm:"type:text"`
	MorningFeeling   *string   `json:"morning_feeling" gorm:"size:100"`
	AfternoonMeal    *string   `json:"afternoon_meal" gorm:"type:text"`
	AfternoonFeeling *string   `json:"afternoon_feeling" gorm:"size:100"`
	EveningMeal      *string   `json:"evening_meal" gorm:"type:text"`
	EveningFeeling   *string   `json:"evening_feeling" gorm:"size:100"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	Analyses []FoodAnalysis `json:"analyses,omitempty" gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`
}

// Date returns the meal date formatted as YYYY-MM-DD.
func (m *Meal) Date() string {
	return m.MealDate.Format(DateLayout)
}

// Slots returns the three slot descriptions in time-of-day order, "" for empty slots.
func (m *Meal) Slots() [3]string {
	return [3]string{deref(m.MorningMeal), deref(m.AfternoonMeal), deref(m.EveningMeal)}
}

// DateOf truncates t to its calendar day, expressed as midnight UTC so that
// dates compare and persist identically across drivers.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a DateOf value.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
