package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodtime/internal/config"
	"foodtime/internal/db"
	"foodtime/internal/logger"
	"foodtime/internal/model"
	"foodtime/internal/repository"
)

const (
	demoEmail    = "demo@foodtime.dev"
	demoPassword = "demo-password"
	seedDays     = 14
)

// demoDaysJSON is cycled over the seeded fortnight.
const demoDaysJSON = `[
	{"morning": "Oatmeal with banana and walnuts", "afternoon": "Grilled chicken salad with olive oil", "evening": "Salmon, brown rice and broccoli", "feeling": "energetic", "score": 8.5, "calories": 1850, "protein": 115, "carbs": 190, "fat": 62},
	{"morning": "Croissant and latte", "afternoon": "Cheeseburger and fries", "evening": "Pepperoni pizza", "feeling": "sluggish", "score": 4, "calories": 2900, "protein": 95, "carbs": 310, "fat": 140},
	{"morning": "Greek yogurt with berries", "afternoon": "Lentil soup and wholegrain bread", "evening": "Tofu stir fry with vegetables", "feeling": "good", "score": 8, "calories": 1700, "protein": 90, "carbs": 200, "fat": 55},
	{"morning": "Scrambled eggs on toast", "afternoon": "Turkey sandwich and apple", "evening": "Pasta bolognese", "feeling": "ok", "score": 6.5, "calories": 2200, "protein": 120, "carbs": 250, "fat": 75},
	{"morning": "Smoothie with spinach and protein powder", "afternoon": "Quinoa bowl with chickpeas", "evening": "Grilled fish tacos", "feeling": "light", "score": 8, "calories": 1750, "protein": 110, "carbs": 195, "fat": 58},
	{"morning": "Pancakes with syrup", "afternoon": "Ramen", "evening": "Chicken curry with naan", "feeling": "full", "score": 5, "calories": 2600, "protein": 100, "carbs": 320, "fat": 95},
	{"morning": "Avocado toast", "afternoon": "Sushi set", "evening": "Vegetable omelette", "feeling": "good", "score": 7.5, "calories": 1900, "protein": 105, "carbs": 210, "fat": 70}
]`

// SeedDay is one sample day of meals and the analysis attached to it.
type SeedDay struct {
	Morning   string  `json:"morning"`
	Afternoon string  `json:"afternoon"`
	Evening   string  `json:"evening"`
	Feeling   string  `json:"feeling"`
	Score     float64 `json:"score"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
}

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("starting seed script")

	// Connect to database
	gormDB, err := db.Open(cfg.DatabaseURL, db.Options{})
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}

	var days []SeedDay
	if err := json.Unmarshal([]byte(demoDaysJSON), &days); err != nil {
		log.Fatal("failed to parse demo data", "error", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	mealRepo := repository.NewMealRepository(gormDB)
	analysisRepo := repository.NewAnalysisRepository(gormDB)

	user, err := demoUser(ctx, userRepo)
	if err != nil {
		log.Fatal("failed to prepare demo user", "error", err)
	}

	seeded, updated, err := seedMeals(ctx, mealRepo, analysisRepo, user.ID, days, model.DateOf(time.Now()))
	if err != nil {
		log.Fatal("failed to seed meals", "error", err)
	}

	log.Info("seed completed",
		"email", demoEmail,
		"meals_created", seeded,
		"meals_updated", updated,
	)
}

// demoUser returns the demo account, creating it on first run.
func demoUser(ctx context.Context, repo repository.UserRepository) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, demoEmail)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup demo user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	goal := "maintain weight"
	user := &model.User{
		Email:              demoEmail,
		Name:               "Demo User",
		PasswordHash:       string(hash),
		IsActive:           true,
		Goal:               &goal,
		DailyCalorieTarget: model.DefaultCalorieTarget,
		DailyProteinTarget: model.DefaultProteinTarget,
		DailyCarbsTarget:   model.DefaultCarbsTarget,
		DailyFatTarget:     model.DefaultFatTarget,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create demo user: %w", err)
	}
	return user, nil
}

// seedMeals writes one meal per day for the last seedDays days ending today.
// Existing meals get their slots refreshed; a day that already has an
// analysis is not given another.
func seedMeals(ctx context.Context, meals repository.MealRepository, analyses repository.AnalysisRepository, userID uint, days []SeedDay, today time.Time) (seeded int, updated int, err error) {
	for i := 0; i < seedDays; i++ {
		day := days[i%len(days)]
		date := today.AddDate(0, 0, -i)

		meal, err := meals.FindByDate(ctx, userID, date)
		switch {
		case err == nil:
			meal, err = meals.UpdateFields(ctx, userID, meal.ID, map[string]interface{}{
				"morning_meal":    day.Morning,
				"afternoon_meal":  day.Afternoon,
				"evening_meal":    day.Evening,
				"evening_feeling": day.Feeling,
			})
			if err != nil {
				return seeded, updated, fmt.Errorf("error updating meal %s: %w", date.Format(model.DateLayout), err)
			}
			updated++
		case errors.Is(err, gorm.ErrRecordNotFound):
			meal = &model.Meal{
				UserID:         userID,
				MealDate:       date,
				MorningMeal:    &day.Morning,
				AfternoonMeal:  &day.Afternoon,
				EveningMeal:    &day.Evening,
				EveningFeeling: &day.Feeling,
			}
			if err := meals.Create(ctx, meal); err != nil {
				return seeded, updated, fmt.Errorf("error creating meal %s: %w", date.Format(model.DateLayout), err)
			}
			seeded++
		default:
			return seeded, updated, fmt.Errorf("error checking meal %s: %w", date.Format(model.DateLayout), err)
		}

		existing, err := analyses.ListByMeal(ctx, userID, meal.ID)
		if err != nil {
			return seeded, updated, fmt.Errorf("error checking analyses for meal %d: %w", meal.ID, err)
		}
		if len(existing) > 0 {
			continue
		}
		analysis := &model.FoodAnalysis{
			UserID:         userID,
			MealID:         &meal.ID,
			AnalysisType:   model.AnalysisTypeDaily,
			AnalysisResult: fmt.Sprintf("Health score: %.1f/10. A sample day generated for the demo account.", day.Score),
			HealthScore:    &day.Score,
			Calories:       &day.Calories,
			Protein:        &day.Protein,
			Carbs:          &day.Carbs,
			Fat:            &day.Fat,
		}
		if err := analyses.Create(ctx, analysis); err != nil {
			return seeded, updated, fmt.Errorf("error creating analysis for meal %d: %w", meal.ID, err)
		}
	}
	return seeded, updated, nil
}
