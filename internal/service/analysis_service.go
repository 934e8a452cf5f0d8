package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"foodtime/internal/ai"
	apperrors "foodtime/internal/errors"
	"foodtime/internal/model"
	"foodtime/internal/repository"
)

const (
	dailyHistoryDays    = 10
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// DailyRequest is a full day of meals submitted for review.
type DailyRequest struct {
	MorningMeal      string
	MorningFeeling   *string
	AfternoonMeal    string
	AfternoonFeeling *string
	EveningMeal      string
	EveningFeeling   *string
}

// PhotoRequest carries a base64 image, optionally as a data URL. An empty
// MIMEType is detected from the decoded bytes.
type PhotoRequest struct {
	ImageBase64 string
	MIMEType    string
}

// AnalysisService runs AI reviews and records their results.
type AnalysisService interface {
	Daily(ctx context.Context, userID uint, req DailyRequest) (*model.FoodAnalysis, error)
	Food(ctx context.Context, userID uint, description string) (*model.FoodAnalysis, error)
	Photo(ctx context.Context, userID uint, req PhotoRequest) (*model.FoodAnalysis, error)
	History(ctx context.Context, userID uint, limit int) ([]model.FoodAnalysis, error)
}

type analysisService struct {
	gateway  AIGateway
	meals    MealService
	mealRepo repository.MealRepository
	repo     repository.AnalysisRepository
	clock    Clock
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(gateway AIGateway, meals MealService, mealRepo repository.MealRepository, repo repository.AnalysisRepository, clock Clock) AnalysisService {
	return &analysisService{
		gateway:  gateway,
		meals:    meals,
		mealRepo: mealRepo,
		repo:     repo,
		clock:    clock,
	}
}

// Daily reviews today's meals with recent history as context, saves them as
// today's meal and attaches the analysis. The meal save and the analysis
// insert are separate writes.
func (s *analysisService) Daily(ctx context.Context, userID uint, req DailyRequest) (*model.FoodAnalysis, error) {
	today := s.clock.today()
	history, err := s.mealRepo.History(ctx, userID, today.AddDate(0, 0, -dailyHistoryDays), dailyHistoryDays)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	summaries := make([]ai.DaySummary, 0, len(history))
	for i := range history {
		summaries = append(summaries, daySummary(&history[i]))
	}

	review, err := s.gateway.ReviewDailyMeals(ctx, ai.DailyInput{
		Morning:   req.MorningMeal,
		Afternoon: req.AfternoonMeal,
		Evening:   req.EveningMeal,
		Feelings: ai.Feelings{
			Morning:   deref(req.MorningFeeling),
			Afternoon: deref(req.AfternoonFeeling),
			Evening:   deref(req.EveningFeeling),
		},
		History: summaries,
	})
	if err != nil {
		return nil, err
	}

	meal, err := s.meals.Save(ctx, userID, MealInput{
		MealDate:         today,
		MorningMeal:      &req.MorningMeal,
		MorningFeeling:   req.MorningFeeling,
		AfternoonMeal:    &req.AfternoonMeal,
		AfternoonFeeling: req.AfternoonFeeling,
		EveningMeal:      &req.EveningMeal,
		EveningFeeling:   req.EveningFeeling,
	})
	if err != nil {
		return nil, err
	}

	return s.record(ctx, userID, &meal.ID, model.AnalysisTypeDaily, review)
}

func (s *analysisService) Food(ctx context.Context, userID uint, description string) (*model.FoodAnalysis, error) {
	review, err := s.gateway.ReviewSingleFood(ctx, description)
	if err != nil {
		return nil, err
	}
	return s.record(ctx, userID, nil, model.AnalysisTypeFoodQuery, review)
}

func (s *analysisService) Photo(ctx context.Context, userID uint, req PhotoRequest) (*model.FoodAnalysis, error) {
	image, err := decodeImage(req)
	if err != nil {
		return nil, err
	}
	review, err := s.gateway.ReviewPhoto(ctx, image)
	if err != nil {
		return nil, err
	}
	return s.record(ctx, userID, nil, model.AnalysisTypePhoto, review)
}

func (s *analysisService) History(ctx context.Context, userID uint, limit int) ([]model.FoodAnalysis, error) {
	if limit < 1 || limit > MaxHistoryLimit {
		limit = DefaultHistoryLimit
	}
	analyses, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	return analyses, nil
}

func (s *analysisService) record(ctx context.Context, userID uint, mealID *uint, kind model.AnalysisType, review *ai.Review) (*model.FoodAnalysis, error) {
	analysis := &model.FoodAnalysis{
		UserID:         userID,
		MealID:         mealID,
		AnalysisType:   kind,
		AnalysisResult: review.Narrative,
		HealthScore:    review.Metrics.HealthScore,
		Calories:       review.Metrics.Calories,
		Protein:        review.Metrics.Protein,
		Carbs:          review.Metrics.Carbs,
		Fat:            review.Metrics.Fat,
	}
	if err := s.repo.Create(ctx, analysis); err != nil {
		return nil, fmt.Errorf("save analysis: %w", err)
	}
	return analysis, nil
}

func decodeImage(req PhotoRequest) (ai.Image, error) {
	payload := strings.TrimSpace(req.ImageBase64)
	mimeType := strings.TrimSpace(req.MIMEType)
	if strings.HasPrefix(payload, "data:") {
		header, data, ok := strings.Cut(payload, ",")
		if !ok {
			return ai.Image{}, apperrors.ErrInvalidImage
		}
		if mimeType == "" {
			mimeType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		}
		payload = data
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return ai.Image{}, apperrors.ErrInvalidImage
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return ai.Image{}, apperrors.ErrInvalidImage
	}
	if mimeType == "" {
		mimeType = detected.String()
	}
	return ai.Image{Data: data, MIMEType: mimeType}, nil
}

func daySummary(m *model.Meal) ai.DaySummary {
	slots := m.Slots()
	return ai.DaySummary{
		Date:      m.Date(),
		Morning:   slots[0],
		Afternoon: slots[1],
		Evening:   slots[2],
	}
}
