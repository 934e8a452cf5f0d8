package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"foodtime/docs" // swagger docs
	"foodtime/internal/ai"
	"foodtime/internal/auth"
	"foodtime/internal/cache"
	"foodtime/internal/config"
	"foodtime/internal/db"
	"foodtime/internal/handler"
	"foodtime/internal/logger"
	"foodtime/internal/repository"
	"foodtime/internal/router"
	"foodtime/internal/service"
)

// @title FoodTime API
// @version 1.0
// @description Meal logging and AI-assisted nutrition coaching with JWT authentication.
// @host localhost:8000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	gormDB, err := db.Open(cfg.DatabaseURL, db.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		log.Fatal("database init", "error", err)
	}

	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.Warn("failed to drop tables (may not exist)", "error", err)
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("auto-migrate", "error", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Warn("redis unreachable, running without cache and token revocation", "addr", cfg.RedisAddr, "error", err)
	}
	cancel()

	var completer ai.Completer
	gemini, err := ai.NewGeminiCompleter(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Warn("AI completions disabled", "error", err)
		completer = ai.Unavailable{}
	} else {
		completer = gemini
	}
	gateway := ai.NewGateway(completer, log.With("component", "ai"))

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	mealRepo := repository.NewMealRepository(gormDB)
	analysisRepo := repository.NewAnalysisRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenExpiry)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient)
	authService := service.NewAuthService(userRepo, userService, jwtService, tokenStore, log.With("component", "auth"))
	mealService := service.NewMealService(mealRepo, nil)
	analysisService := service.NewAnalysisService(gateway, mealService, mealRepo, analysisRepo, nil)
	reportService := service.NewReportService(mealRepo, gateway, nil)

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(e, cfg, log, jwtService, authService, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		User:     handler.NewUserHandler(userService),
		Meal:     handler.NewMealHandler(mealService),
		Analysis: handler.NewAnalysisHandler(analysisService),
		Report:   handler.NewReportHandler(reportService),
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	log.Info("swagger documentation available", "url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html")

	addr := ":" + cfg.ServerPort
	log.Info("server starting", "addr", addr)
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server start", "error", err)
	}
}
