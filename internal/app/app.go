package app

import (
	"fmt"

	_ "geronimocrm/docs"
	"geronimocrm/internal/config"
	"geronimocrm/internal/database"
	"geronimocrm/internal/handlers"
	"geronimocrm/internal/pdf"
	"geronimocrm/internal/repositories"
	"geronimocrm/internal/routes"
	"geronimocrm/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func Run() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.LoadConfig()

	// === DB ===
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		logrus.Fatal("database connection failed: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logrus.Errorf("database close failed: %v", err)
		}
	}()

	if err := database.InitSchema(db, services.HashPassword); err != nil {
		logrus.Fatal("schema init failed: ", err)
	}

	store := database.NewStore(db)

	// === Repos ===
	userRepo := repositories.NewUserRepository(store)
	clientRepo := repositories.NewClientRepository(store)
	contactRepo := repositories.NewContactRepository(store)
	campaignRepo := repositories.NewCampaignRepository(store)
	leadRepo := repositories.NewLeadRepository(store)
	interactionRepo := repositories.NewInteractionRepository(store)
	meetingRepo := repositories.NewMeetingRepository(store)
	taskRepo := repositories.NewTaskRepository(store)
	targetRepo := repositories.NewTargetRepository(store)
	trackerRepo := repositories.NewTrackerRepository(store)

	// === Services ===
	authService := services.NewAuthService(userRepo)

	var emailService services.EmailService
	if cfg.Email.SMTPHost != "" {
		emailService = services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		)
	}

	var notifier services.Notifier
	if cfg.Telegram.BotToken != "" || cfg.Telegram.DryRun {
		n, err := services.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.DryRun)
		if err != nil {
			logrus.Warnf("telegram notifier disabled: %v", err)
		} else {
			notifier = n
		}
	}

	userService := services.NewUserService(userRepo, emailService)
	clientService := services.NewClientService(clientRepo, contactRepo)
	campaignService := services.NewCampaignService(campaignRepo)
	leadService := services.NewLeadService(leadRepo, clientRepo, notifier)
	interactionService := services.NewInteractionService(interactionRepo, clientRepo)
	meetingService := services.NewMeetingService(meetingRepo, clientRepo)
	taskService := services.NewTaskService(taskRepo, clientRepo)
	targetService := services.NewTargetService(targetRepo, userRepo, leadRepo, interactionRepo, meetingRepo)
	trackerService := services.NewTrackerService(trackerRepo)
	dashboardService := services.NewDashboardService(clientRepo, interactionRepo, leadRepo)

	pdfGen := pdf.NewReportGenerator(cfg.Reports.RootDir)
	reportService := services.NewReportService(
		clientRepo, contactRepo, campaignRepo, leadRepo,
		interactionRepo, meetingRepo, taskRepo, pdfGen,
	)
	adminService := services.NewAdminService(store)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	leadHandler := handlers.NewLeadHandler(leadService)
	interactionHandler := handlers.NewInteractionHandler(interactionService)
	meetingHandler := handlers.NewMeetingHandler(meetingService)
	taskHandler := handlers.NewTaskHandler(taskService)
	targetHandler := handlers.NewTargetHandler(targetService)
	trackerHandler := handlers.NewTrackerHandler(trackerService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// === Gin ===
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	router.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		authHandler,
		userHandler,
		clientHandler,
		campaignHandler,
		leadHandler,
		interactionHandler,
		meetingHandler,
		taskHandler,
		targetHandler,
		trackerHandler,
		dashboardHandler,
		reportHandler,
		adminHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	logrus.Infof("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		logrus.Fatal("server start failed: ", err)
	}
}
