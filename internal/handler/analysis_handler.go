package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"foodtime/internal/service"
)

// AnalysisHandler serves the AI-backed scoring endpoints.
type AnalysisHandler struct {
	analysisService service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// DailyAnalysisRequest is today's three meals with optional feelings.
type DailyAnalysisRequest struct {
	MorningMeal      string  `json:"morning_meal" validate:"required,max=2000"`
	MorningFeeling   *string `json:"morning_feeling" validate:"omitempty,max=100"`
	AfternoonMeal    string  `json:"afternoon_meal" validate:"required,max=2000"`
	AfternoonFeeling *string `json:"afternoon_feeling" validate:"omitempty,max=100"`
	EveningMeal      string  `json:"evening_meal" validate:"required,max=2000"`
	EveningFeeling   *string `json:"evening_feeling" validate:"omitempty,max=100"`
}

// FoodQueryRequest asks about a single food or ingredient.
type FoodQueryRequest struct {
	FoodDescription string `json:"food_description" validate:"required,max=2000"`
}

// PhotoAnalysisRequest carries a base64 encoded food photo.
type PhotoAnalysisRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required"`
	MimeType    string `json:"mime_type" validate:"omitempty,startswith=image/"`
}

// Daily godoc
// @Summary Review today's meals
// @Description Saves the meals as today's log and stores the analysis with extracted score and macros.
// @Tags analysis
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DailyAnalysisRequest true "Today's meals"
// @Success 200 {object} model.FoodAnalysis
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /analysis/daily [post]
func (h *AnalysisHandler) Daily(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req DailyAnalysisRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	analysis, err := h.analysisService.Daily(c.Request().Context(), user.ID, service.DailyRequest{
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
	return c.JSON(http.StatusOK, analysis)
}

// Food godoc
// @Summary Review a single food
// @Tags analysis
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FoodQueryRequest true "Food description"
// @Success 200 {object} model.FoodAnalysis
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /analysis/food [post]
func (h *AnalysisHandler) Food(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req FoodQueryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	analysis, err := h.analysisService.Food(c.Request().Context(), user.ID, req.FoodDescription)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, analysis)
}

// Photo godoc
// @Summary Review a food photo
// @Tags analysis
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PhotoAnalysisRequest true "Base64 image"
// @Success 200 {object} model.FoodAnalysis
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /analysis/photo [post]
func (h *AnalysisHandler) Photo(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req PhotoAnalysisRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	analysis, err := h.analysisService.Photo(c.Request().Context(), user.ID, service.PhotoRequest{
		ImageBase64: req.ImageBase64,
		MIMEType:    req.MimeType,
	})
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, analysis)
}

// History godoc
// @Summary Stored analyses, newest first
// @Tags analysis
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rows (1-100)" default(20)
// @Success 200 {array} model.FoodAnalysis
// @Failure 400 {object} errors.ErrorResponse
// @Router /analysis/history [get]
func (h *AnalysisHandler) History(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	limit := service.DefaultHistoryLimit
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return validationError("limit must be an integer")
	}
	if limit < 1 || limit > service.MaxHistoryLimit {
		return validationError(fmt.Sprintf("limit must be between 1 and %d", service.MaxHistoryLimit))
	}

	analyses, err := h.analysisService.History(c.Request().Context(), user.ID, limit)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, analyses)
}
