package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/airqualityai/backend/internal/config"
	httpdelivery "github.com/airqualityai/backend/internal/delivery/http"
	"github.com/airqualityai/backend/internal/domain"
	"github.com/airqualityai/backend/internal/logger"
	"github.com/airqualityai/backend/internal/predictor"
	"github.com/airqualityai/backend/internal/repository/postgres"
	"github.com/airqualityai/backend/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog := logger.New(cfg.App.LogLevel, cfg.App.Env)

	// Database connection
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer cancel()

	var pool *pgxpool.Pool
	if cfg.Database.URL != "" {
		pool, err = pgxpool.New(ctx, cfg.Database.URL)
		if err != nil {
			appLog.Warnf("Could not connect to database: %v", err)
			pool = nil
		}
	}

	// Dependency Injection: prediction store
	var store service.PredictionStore
	if pool != nil {
		defer pool.Close()
		appLog.Info("Connected to PostgreSQL")
		store = postgres.NewStore(pool)
	} else {
		appLog.Info("No database configured, prediction logs will not be persisted")
		store = postgres.NewMockStore()
	}

	// Dependency Injection: predictor
	pred := buildPredictor(cfg, appLog)
	predictionSvc := service.NewPredictionService(pred, store, appLog)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "AirQuality AI API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	handler := httpdelivery.NewHandler(predictionSvc, appLog)
	httpdelivery.SetupRoutes(app, handler)

	// Graceful shutdown
	go func() {
		addr := ":" + strconv.Itoa(cfg.App.Port)
		appLog.Infof("Server starting on %s", addr)
		if err := app.Listen(addr); err != nil {
			appLog.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(cfg.App.ShutdownTimeout); err != nil {
		appLog.Errorf("Server forced to shutdown: %v", err)
	}
	appLog.Info("Server exited gracefully")
}

// buildPredictor constructs the predictor for the configured mode. A
// failed artifact load is not fatal: the server starts with the
// prediction path disabled and reports model-unavailable per request.
func buildPredictor(cfg *config.Config, appLog logger.Logger) domain.Predictor {
	switch cfg.Predictor.Mode {
	case config.PredictorModeRemote:
		appLog.Infof("Using remote scoring service at %s", cfg.Predictor.ServiceURL)
		return predictor.NewRemote(cfg.Predictor.ServiceURL, cfg.Predictor.Timeout)
	default:
		artifact, err := predictor.LoadArtifact(cfg.Predictor.ArtifactPath)
		if err != nil {
			appLog.Errorf("Model artifact not loaded, predictions disabled: %v", err)
			return predictor.NewUnavailable(err)
		}
		appLog.Infof("Loaded model artifact %s (version %s)", cfg.Predictor.ArtifactPath, artifact.Version)
		return predictor.NewLocal(artifact)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
