package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"survey-console/cmd/seed_initial_data/internal/seedmodels"
	schema "survey-console/database"
	"survey-console/internal/config"
	"survey-console/internal/database"
	"survey-console/internal/logger"
	"survey-console/internal/repository"
	"survey-console/internal/service"
	"survey-console/internal/validation"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	defaultSeedFilePath = "configs/seed_data/initial_data.yaml"
)

func loadSeedData(path string) (seedmodels.SeedData, error) {
	var data seedmodels.SeedData
	raw, err := os.ReadFile(path)
	if err != nil {
		return data, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return data, nil
}

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "YAML seed file")
	migrate := flag.Bool("migrate", false, "Apply migrations before seeding")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if *migrate {
		files, err := schema.Migrations(cfg.DB.Driver)
		if err != nil {
			log.Fatal("Failed to load migrations", zap.Error(err))
		}
		if err := database.RunMigrations(ctx, db, cfg.DB.Driver, files); err != nil {
			log.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	log.Info("Loading seed data from file", zap.String("path", *seedFilePath))
	data, err := loadSeedData(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to load seed data", zap.Error(err))
	}

	userRepo := repository.NewSQLXUserRepository(db)
	roleRepo := repository.NewSQLXRoleRepository(db)
	surveyRepo := repository.NewSQLXSurveyRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)
	validator := validation.NewValidator()

	s := &seeder{
		roles:      service.NewRoleService(roleRepo, txManager, validator),
		users:      service.NewUserService(userRepo, roleRepo, validator),
		surveys:    service.NewSurveyService(surveyRepo, validator, cfg.Editor),
		surveyRepo: surveyRepo,
		validator:  validator,
		log:        log,
	}

	// One transaction for the whole file; a failure leaves the database untouched.
	var summary seedmodels.Summary
	err = txManager.WithTransaction(ctx, func(ctx context.Context) error {
		var runErr error
		summary, runErr = s.run(ctx, data)
		return runErr
	})
	if err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}

	log.Info("Initial data seeding process completed.",
		zap.Int("roles_created", summary.RolesCreated),
		zap.Int("users_created", summary.UsersCreated),
		zap.Int("surveys_created", summary.SurveysCreated),
		zap.Int("skipped", summary.Skipped))
}
