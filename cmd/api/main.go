package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ouaf-asso/ouaf-api/internal/config"
	"github.com/ouaf-asso/ouaf-api/internal/database"
	"github.com/ouaf-asso/ouaf-api/internal/handler"
	"github.com/ouaf-asso/ouaf-api/internal/middleware"
	"github.com/ouaf-asso/ouaf-api/internal/models"
	"github.com/ouaf-asso/ouaf-api/internal/repository"
	"github.com/ouaf-asso/ouaf-api/internal/router"
	"github.com/ouaf-asso/ouaf-api/internal/service"
	cloud "github.com/ouaf-asso/ouaf-api/pkg/cloudinary"
	"github.com/ouaf-asso/ouaf-api/pkg/mailer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Animal{},
		&models.AnimalMedia{},
		&models.Event{},
		&models.ActivityCategory{},
		&models.Activity{},
		&models.OrganisationChartEntry{},
		&models.UploadRecord{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Redis is optional: without it the rate limiter falls back to an
	// in-process window, which is fine for a single instance.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logger.Warn().Msg("redis not configured, using in-process rate limiting")
	}

	uploader, err := cloud.New(cloud.Config{
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
		Folder:    cfg.CloudinaryUploadFolder,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create cloudinary client: %v", err)
	}

	smtpSender, err := mailer.NewSMTPSender(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create smtp sender: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	animalRepo := repository.NewAnimalRepository(db)
	eventRepo := repository.NewEventRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	chartRepo := repository.NewChartRepository(db)
	uploadRepo := repository.NewUploadRepository(db)

	limiter := service.NewRateLimiter(redisClient, cfg.IntakeRateLimitMax, cfg.IntakeRateLimitWindow, logger)
	notifier, err := service.NewIntakeNotifier(smtpSender, service.NotifierConfig{
		From:          cfg.MailFrom,
		Recipients:    cfg.MailRecipients,
		SubjectPrefix: cfg.MailSubjectPrefix,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create intake notifier: %v", err)
	}

	intakeService := service.NewIntakeService(limiter, notifier, validate, cfg.PhoneRegion, logger)
	animalService := service.NewAnimalService(animalRepo, validate, logger)
	eventService := service.NewEventService(eventRepo, validate, logger)
	activityService := service.NewActivityService(activityRepo, validate, logger)
	chartService := service.NewChartService(chartRepo, validate, logger)
	mediaService := service.NewMediaService(uploader, uploadRepo, cfg.UploadMaxSizeMB, logger)

	intakeHandler := handler.NewIntakeHandler(intakeService, logger)
	animalHandler := handler.NewAnimalHandler(animalService, logger)
	eventHandler := handler.NewEventHandler(eventService, logger)
	activityHandler := handler.NewActivityHandler(activityService, logger)
	chartHandler := handler.NewChartHandler(chartService, logger)
	backofficeHandler := handler.NewBackofficeHandler(animalService, eventService, activityService, chartService, mediaService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		IntakeHandler:     intakeHandler,
		AnimalHandler:     animalHandler,
		EventHandler:      eventHandler,
		ActivityHandler:   activityHandler,
		ChartHandler:      chartHandler,
		BackofficeHandler: backofficeHandler,
		JWTMiddleware:     middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
