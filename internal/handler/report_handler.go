package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodtime/internal/service"
)

// ReportHandler serves the dashboard, nutrition and weekly report views.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Dashboard godoc
// @Summary Dashboard statistics
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} stats.DashboardStats
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard/stats [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	out, err := h.reportService.Dashboard(c.Request().Context(), user.ID)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, out)
}

// DailyNutrition godoc
// @Summary Today's nutrition against targets
// @Tags nutrition
// @Produce json
// @Security BearerAuth
// @Success 200 {object} stats.NutritionReport
// @Failure 401 {object} errors.ErrorResponse
// @Router /nutrition/daily [get]
func (h *ReportHandler) DailyNutrition(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	out, err := h.reportService.DailyNutrition(c.Request().Context(), user)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, out)
}

// Weekly godoc
// @Summary Weekly report with AI insights
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param week_offset query int false "0 = current week, -1 = previous week" default(0)
// @Success 200 {object} stats.WeeklyReport
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /reports/weekly [get]
func (h *ReportHandler) Weekly(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	offset := 0
	if err := echo.QueryParamsBinder(c).Int("week_offset", &offset).BindError(); err != nil {
		return validationError("week_offset must be an integer")
	}
	if offset > 0 {
		return validationError("week_offset must be zero or negative")
	}

	out, err := h.reportService.Weekly(c.Request().Context(), user, offset)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, out)
}
