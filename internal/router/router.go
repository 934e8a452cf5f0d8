package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"foodtime/internal/auth"
	"foodtime/internal/config"
	apperrors "foodtime/internal/errors"
	"foodtime/internal/handler"
	"foodtime/internal/logger"
	"foodtime/internal/model"
	"foodtime/internal/service"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Meal     *handler.MealHandler
	Analysis *handler.AnalysisHandler
	Report   *handler.ReportHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *logger.Logger,
	jwtService *auth.JWTService,
	authService service.AuthService,
	h Handlers,
) {
	if log == nil {
		log = logger.Nop()
	}

	e.HTTPErrorHandler = errorHandler(e, log)
	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", h.Auth.Signup)
	api.POST("/auth/login", h.Auth.Login)

	// Secured routes (require a valid, unrevoked token of an active user)
	secured := api.Group("", bearerAuth(jwtService), currentUser(authService))

	secured.GET("/auth/me", h.Auth.Me)
	secured.POST("/auth/logout", h.Auth.Logout)

	secured.GET("/users/me", h.User.GetMe)
	secured.PUT("/users/me", h.User.UpdateMe)
	secured.DELETE("/users/me", h.User.DeleteMe)

	meals := secured.Group("/meals")
	meals.POST("/", h.Meal.Create)
	meals.GET("/history", h.Meal.History)
	meals.GET("/date/:date", h.Meal.GetByDate)
	meals.GET("/:id", h.Meal.Get)
	meals.PATCH("/:id", h.Meal.Update)
	meals.DELETE("/:id", h.Meal.Delete)

	analysis := secured.Group("/analysis")
	analysis.POST("/daily", h.Analysis.Daily)
	analysis.POST("/food", h.Analysis.Food)
	analysis.POST("/photo", h.Analysis.Photo)
	analysis.GET("/history", h.Analysis.History)

	secured.GET("/dashboard/stats", h.Report.Dashboard)
	secured.GET("/nutrition/daily", h.Report.DailyNutrition)
	secured.GET("/reports/weekly", h.Report.Weekly)
}

// bearerAuth extracts and verifies the access token. Verified claims are
// stored under the echo-jwt default context key.
func bearerAuth(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return unauthorized()
		},
	})
}

// currentUser resolves the token owner and exposes both the claims and the
// user to handlers.
func currentUser(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			if !ok {
				return unauthorized()
			}
			user, err := authService.Authenticate(c.Request().Context(), claims)
			if err != nil {
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
			}
			c.Set(handler.ClaimsContextKey, claims)
			c.Set(handler.UserContextKey, user)
			return next(c)
		}
	}
}

func unauthorized() error {
	httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUnauthenticated)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func requestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/healthz" || strings.HasPrefix(c.Path(), "/swagger")
		},
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			path := v.RoutePath
			if path == "" {
				path = v.URI
			}
			fields := []interface{}{
				"method", v.Method,
				"path", path,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
			}
			if user, ok := c.Get(handler.UserContextKey).(*model.User); ok {
				fields = append(fields, "user_id", user.ID)
			}

			switch {
			case v.Status >= 500:
				log.Error("HTTP request", fields...)
			case v.Status >= 400:
				log.Warn("HTTP request", fields...)
			default:
				log.Info("HTTP request", fields...)
			}
			return nil
		},
	})
}

// errorHandler logs the cause of server-side failures before echo renders the response.
func errorHandler(e *echo.Echo, log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if he, ok := err.(*echo.HTTPError); ok {
			if he.Code >= http.StatusInternalServerError && he.Internal != nil {
				log.Error("request failed", "path", c.Path(), "error", he.Internal)
			}
		} else {
			log.Error("request failed", "path", c.Path(), "error", err)
			httpErr := apperrors.MapErrorToHTTP(err)
			err = echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
