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
	"github.com/rs/zerolog"

	"github.com/smarthire/placement-api/internal/config"
	"github.com/smarthire/placement-api/internal/database"
	"github.com/smarthire/placement-api/internal/events"
	"github.com/smarthire/placement-api/internal/handler"
	"github.com/smarthire/placement-api/internal/middleware"
	"github.com/smarthire/placement-api/internal/models"
	"github.com/smarthire/placement-api/internal/repository"
	"github.com/smarthire/placement-api/internal/router"
	"github.com/smarthire/placement-api/internal/service"
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
		&models.Student{},
		&models.Company{},
		&models.Registration{},
		&models.History{},
		&models.Notice{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	var publisher events.Publisher
	if cfg.NATSURL != "" {
		natsConn, err := database.ConnectNATS(cfg.NATSURL)
		if err != nil {
			log.Fatalf("failed to connect to nats: %v", err)
		}
		defer natsConn.Close()
		publisher = events.NewNATSPublisher(natsConn, logger)
	} else {
		logger.Warn().Msg("nats url not configured, drive events disabled")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	driveRepo := repository.NewDriveRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)

	eligibilityService := service.NewEligibilityService(studentRepo, companyRepo, registrationRepo, redisClient, cfg.DashboardCacheTTL, logger)
	registrationService := service.NewRegistrationService(studentRepo, companyRepo, registrationRepo, logger)
	driveService := service.NewDriveService(companyRepo, driveRepo, publisher, logger)
	sweepService := service.NewSweepService(companyRepo, driveService, logger)
	companyService := service.NewCompanyService(companyRepo, registrationRepo, eligibilityService, publisher, validate, logger)
	studentService := service.NewStudentService(studentRepo, eligibilityService, validate, logger)
	statsService := service.NewStatsService(studentRepo, companyRepo, registrationRepo, logger)
	noticeService := service.NewNoticeService(noticeRepo, redisClient, cfg.NoticeCacheTTL, validate, logger)
	historyService := service.NewHistoryService(historyRepo, logger)
	activityService := service.NewActivityService(activityRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		StudentDashboardHandler: handler.NewStudentDashboardHandler(eligibilityService, logger),
		StudentProfileHandler:   handler.NewStudentProfileHandler(studentService, statsService, logger),
		CompanyHandler:          handler.NewCompanyHandler(companyService, logger),
		RegistrationHandler:     handler.NewRegistrationHandler(registrationService, logger),
		NoticeHandler:           handler.NewNoticeHandler(noticeService, logger),
		AdminCompanyHandler:     handler.NewAdminCompanyHandler(companyService, driveService, registrationService, activityService, logger),
		AdminStudentHandler:     handler.NewAdminStudentHandler(studentService, logger),
		AdminHistoryHandler:     handler.NewAdminHistoryHandler(historyService, logger),
		AdminNoticeHandler:      handler.NewAdminNoticeHandler(noticeService, logger),
		AdminStatsHandler:       handler.NewAdminStatsHandler(statsService, logger),
		AdminActivityHandler:    handler.NewAdminActivityHandler(activityService, logger),
		AdminSweepHandler:       handler.NewAdminSweepHandler(sweepService, logger),
		JWTMiddleware:           middleware.JWTProtected(cfg.JWTSecret),
	})

	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	if cfg.SweepEnabled {
		go sweepService.Start(sweepCtx, cfg.SweepInterval)
	} else {
		logger.Warn().Msg("deadline sweep disabled by configuration")
	}

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app, cancelSweep)
}

func waitForShutdown(app *fiber.App, cancelSweep context.CancelFunc) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()
	cancelSweep()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
