// @title Survey Console API
// @version 1.0
// @description Administration API for users, roles, surveys and the survey structuring editor.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Static API key issued to the console.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	schema "survey-console/database"
	"survey-console/internal/adapter"
	"survey-console/internal/cache"
	"survey-console/internal/config"
	"survey-console/internal/database"
	"survey-console/internal/handler"
	"survey-console/internal/logger"
	"survey-console/internal/middleware"
	"survey-console/internal/repository"
	"survey-console/internal/service"
	"survey-console/internal/validation"

	_ "survey-console/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Connect to database
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// SQLite files are created on first run, so bring the schema up before serving.
	if cfg.DB.Driver == config.DriverSQLite {
		files, err := schema.Migrations(cfg.DB.Driver)
		if err != nil {
			appLogger.Fatal("Failed to load migrations", zap.Error(err))
		}
		if err := database.RunMigrations(ctx, db, cfg.DB.Driver, files); err != nil {
			appLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// Initialize Redis Client
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize repositories
	userRepository := repository.NewSQLXUserRepository(db)
	roleRepository := repository.NewSQLXRoleRepository(db)
	surveyRepository := repository.NewSQLXSurveyRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize services
	validator := validation.NewValidator()
	userService := service.NewUserService(userRepository, roleRepository, validator)
	roleService := service.NewRoleService(roleRepository, txManager, validator)
	surveyService := service.NewSurveyService(surveyRepository, validator, cfg.Editor)
	structureService := service.NewStructureService(surveyRepository, cacheAdapter, validator, cfg.Editor.SessionTTL)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.APIKeyHeader + "," + middleware.RequestIDHeader,
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.SetupRoutes(app, handler.Handlers{
		Users:   handler.NewUserHandler(userService),
		Roles:   handler.NewRoleHandler(roleService),
		Surveys: handler.NewSurveyHandler(surveyService, structureService),
		Health:  handler.NewHealthHandler(db, handler.PingFunc(cacheAdapter.Ping)),
	}, cfg.Server.APIKeys)

	if len(cfg.Server.APIKeys) == 0 {
		appLogger.Warn("No API keys configured; every /api request except /api/health will be rejected")
	}

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env), zap.String("db_driver", cfg.DB.Driver))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
