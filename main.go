package main

import (
	"log"

	api "meetsync-backend/cmd/api"
	authdomain "meetsync-backend/internal/auth/domain"
	authRepo "meetsync-backend/internal/auth/repository"
	authUsecase "meetsync-backend/internal/auth/usecase"
	meetingdomain "meetsync-backend/internal/meeting/domain"
	meetingRepo "meetsync-backend/internal/meeting/repository"
	meetingUsecase "meetsync-backend/internal/meeting/usecase"
	"meetsync-backend/internal/meeting/scheduler"
	"meetsync-backend/pkg/config"
	"meetsync-backend/pkg/database"
	"meetsync-backend/pkg/sse"
	"meetsync-backend/pkg/thumbnail"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&meetingdomain.Meeting{},
		&meetingdomain.MeetingContact{},
		&meetingdomain.Company{},
		&meetingdomain.Contact{},
		&meetingdomain.ActionItem{},
		&meetingdomain.SyncState{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	meetingRepository := meetingRepo.NewMeetingRepository(db)
	companyRepository := meetingRepo.NewCompanyRepository(db)
	contactRepository := meetingRepo.NewContactRepository(db)
	actionItemRepository := meetingRepo.NewActionItemRepository(db)
	syncStateRepository := meetingRepo.NewSyncStateRepository(db)

	// Initialize SSE Manager
	sseManager := sse.NewManager()
	go sseManager.Run()

	// Thumbnail enrichment cascade
	thumbnails := thumbnail.NewCascade(thumbnail.Options{
		CDNBaseURL:          cfg.ProviderCDNBaseURL,
		ScreenshotAPIURL:    cfg.ScreenshotAPIURL,
		PlaceholderTemplate: cfg.PlaceholderImageURL,
	})

	// Initialize usecases
	authUC := authUsecase.NewAuthUsecase(userRepo, cfg)
	meetingUC := meetingUsecase.NewMeetingUsecase(
		cfg,
		userRepo,
		meetingRepository,
		companyRepository,
		contactRepository,
		actionItemRepository,
		syncStateRepository,
		thumbnails,
	)
	meetingUC.SetEventService(sseManager)

	// First provider connection bootstraps sync state and the initial sync
	authUC.SetConnectCallback(meetingUC.HandleProviderConnected)

	// Periodic incremental sweep
	sched := scheduler.New(userRepo, meetingUC, cfg.SyncCron)
	if err := sched.Start(); err != nil {
		log.Fatal("Failed to start scheduler:", err)
	}
	defer sched.Stop()

	// HTTP server
	r := gin.Default()
	api.SetupRoutes(r, authUC, meetingUC, sseManager, cfg)

	log.Printf("[Server] Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
