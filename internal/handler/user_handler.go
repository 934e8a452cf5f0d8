package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodtime/internal/service"
)

// UserHandler serves the current user's profile.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUserRequest is a partial profile update; omitted fields are kept.
type UpdateUserRequest struct {
	Name               *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Weight             *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height             *float64 `json:"height" validate:"omitempty,gt=0"`
	Gender             *string  `json:"gender" validate:"omitempty,max=20"`
	Job                *string  `json:"job" validate:"omitempty,max=100"`
	Goal               *string  `json:"goal" validate:"omitempty,max=50"`
	DailyCalorieTarget *int     `json:"daily_calorie_target" validate:"omitempty,gt=0"`
	DailyProteinTarget *int     `json:"daily_protein_target" validate:"omitempty,gt=0"`
	DailyCarbsTarget   *int     `json:"daily_carbs_target" validate:"omitempty,gt=0"`
	DailyFatTarget     *int     `json:"daily_fat_target" validate:"omitempty,gt=0"`
}

// GetMe godoc
// @Summary Get current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary Update current user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.userService.Update(c.Request().Context(), user.ID, service.UpdateUserInput{
		Name:               req.Name,
		Weight:             req.Weight,
		Height:             req.Height,
		Gender:             req.Gender,
		Job:                req.Job,
		Goal:               req.Goal,
		DailyCalorieTarget: req.DailyCalorieTarget,
		DailyProteinTarget: req.DailyProteinTarget,
		DailyCarbsTarget:   req.DailyCarbsTarget,
		DailyFatTarget:     req.DailyFatTarget,
	})
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteMe godoc
// @Summary Delete current user with all meals and analyses
// @Tags users
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/me [delete]
func (h *UserHandler) DeleteMe(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.userService.Delete(c.Request().Context(), user.ID); err != nil {
		return errorResponse(err)
	}
	return c.NoContent(http.StatusNoContent)
}
