package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"foodtime/internal/model"
	"foodtime/internal/service"
)

// MealHandler handles meal log endpoints.
type MealHandler struct {
	mealService service.MealService
}

// NewMealHandler creates a new meal handler.
func NewMealHandler(mealService service.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

// MealRequest is a full meal log for one date.
type MealRequest struct {
	MealDate         string  `json:"meal_date" validate:"required,datetime=2006-01-02"`
	MorningMeal      *string `json:"morning_meal" validate:"omitempty,max=2000"`
	MorningFeeling   *string `json:"morning_feeling" validate:"omitempty,max=100"`
	AfternoonMeal    *string `json:"afternoon_meal" validate:"omitempty,max=2000"`
	AfternoonFeeling *string `json:"afternoon_feeling" validate:"omitempty,max=100"`
	EveningMeal      *string `json:"evening_meal" validate:"omitempty,max=2000"`
	EveningFeeling   *string `json:"evening_feeling" validate:"omitempty,max=100"`
}

// MealPatchRequest updates only the supplied slots.
type MealPatchRequest struct {
	MorningMeal      *string `json:"morning_meal" validate:"omitempty,max=2000"`
	MorningFeeling   *string `json:"morning_feeling" validate:"omitempty,max=100"`
	AfternoonMeal    *string `json:"afternoon_meal" validate:"omitempty,max=2000"`
	AfternoonFeeling *string `json:"afternoon_feeling" validate:"omitempty,max=100"`
	EveningMeal      *string `json:"evening_meal" validate:"omitempty,max=2000"`
	EveningFeeling   *string `json:"evening_feeling" validate:"omitempty,max=100"`
}

// MealResponse is the wire form of a meal.
type MealResponse struct {
	ID               uint                 `json:"id"`
	UserID           uint                 `json:"user_id"`
	MealDate         string               `json:"meal_date"`
	MorningMeal      *string              `json:"morning_meal"`
	MorningFeeling   *string              `json:"morning_feeling"`
	AfternoonMeal    *string              `json:"afternoon_meal"`
	AfternoonFeeling *string              `json:"afternoon_feeling"`
	EveningMeal      *string              `json:"evening_meal"`
	EveningFeeling   *string              `json:"evening_feeling"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
	Analyses         []model.FoodAnalysis `json:"analyses,omitempty"`
}

func toMealResponse(m *model.Meal) MealResponse {
	return MealResponse{
		ID:               m.ID,
		UserID:           m.UserID,
		MealDate:         m.Date(),
		MorningMeal:      m.MorningMeal,
		MorningFeeling:   m.MorningFeeling,
		AfternoonMeal:    m.AfternoonMeal,
		AfternoonFeeling: m.AfternoonFeeling,
		EveningMeal:      m.EveningMeal,
		EveningFeeling:   m.EveningFeeling,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		Analyses:         m.Analyses,
	}
}

// Create godoc
// @Summary Save the meal log for a date (creates or replaces)
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MealRequest true "Meal"
// @Success 201 {object} MealResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /meals/ [post]
func (h *MealHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req MealRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	date, err := model.ParseDate(req.MealDate)
	if err != nil {
		return validationError("meal_date must be YYYY-MM-DD")
	}

	meal, err := h.mealService.Save(c.Request().Context(), user.ID, service.MealInput{
		MealDate:         date,
		MorningMeal:      req.MorningMeal,
		MorningFeeling:   req.MorningFeeling,
		AfternoonMeal:    req.AfternoonMeal,
		AfternoonFeeling: req.AfternoonFeeling,
		EveningMeal:      req.EveningMeal,
		EveningFeeling:   req.EveningFeeling,
	})
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusCreated, toMealResponse(meal))
}

// History godoc
// @Summary Recent meals, newest first
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param days query int false "Number of days (1-30)" default(10)
// @Success 200 {array} MealResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /meals/history [get]
func (h *MealHandler) History(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	days := service.DefaultHistoryDays
	if err := echo.QueryParamsBinder(c).Int("days", &days).BindError(); err != nil {
		return validationError("days must be an integer")
	}
	if days < 1 || days > service.MaxHistoryDays {
		return validationError(fmt.Sprintf("days must be between 1 and %d", service.MaxHistoryDays))
	}

	meals, err := h.mealService.History(c.Request().Context(), user.ID, days)
	if err != nil {
		return errorResponse(err)
	}
	out := make([]MealResponse, 0, len(meals))
	for i := range meals {
		out = append(out, toMealResponse(&meals[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// GetByDate godoc
// @Summary Meal for a date
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} MealResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /meals/date/{date} [get]
func (h *MealHandler) GetByDate(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	date, err := model.ParseDate(c.Param("date"))
	if err != nil {
		return validationError("date must be YYYY-MM-DD")
	}

	meal, err := h.mealService.GetByDate(c.Request().Context(), user.ID, date)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, toMealResponse(meal))
}

// Get godoc
// @Summary Meal by ID
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meal ID"
// @Success 200 {object} MealResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /meals/{id} [get]
func (h *MealHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := mealID(c)
	if err != nil {
		return err
	}

	meal, err := h.mealService.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, toMealResponse(meal))
}

// Update godoc
// @Summary Update some slots of a meal
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meal ID"
// @Param request body MealPatchRequest true "Slots to change"
// @Success 200 {object} MealResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /meals/{id} [patch]
func (h *MealHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := mealID(c)
	if err != nil {
		return err
	}
	var req MealPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	meal, err := h.mealService.Update(c.Request().Context(), user.ID, id, service.MealPatch{
		MorningMeal:      req.MorningMeal,
		MorningFeeling:   req.MorningFeeling,
		AfternoonMeal:    req.AfternoonMeal,
		AfternoonFeeling: req.AfternoonFeeling,
		EveningMeal:      req.EveningMeal,
		EveningFeeling:   req.EveningFeeling,
	})
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, toMealResponse(meal))
}

// Delete godoc
// @Summary Delete a meal and its analyses
// @Tags meals
// @Security BearerAuth
// @Param id path int true "Meal ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /meals/{id} [delete]
func (h *MealHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := mealID(c)
	if err != nil {
		return err
	}

	if err := h.mealService.Delete(c.Request().Context(), user.ID, id); err != nil {
		return errorResponse(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func mealID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, validationError("invalid meal id")
	}
	return uint(id), nil
}
