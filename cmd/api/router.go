package api

import (
	"net/http"

	"meetsync-backend/internal/auth/delivery"
	authUsecase "meetsync-backend/internal/auth/usecase"
	meetingDelivery "meetsync-backend/internal/meeting/delivery"
	meetingUsecase "meetsync-backend/internal/meeting/usecase"
	"meetsync-backend/pkg/config"
	"meetsync-backend/pkg/sse"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUC authUsecase.AuthUsecase, meetingUC meetingUsecase.MeetingUsecase, sseManager *sse.Manager, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUC)
	meetingHandler := meetingDelivery.NewMeetingHandler(meetingUC, cfg.WebhookSecret)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// SSE endpoint
		api.GET("/events", delivery.AuthMiddleware(authUC), func(c *gin.Context) {
			userID := c.GetString("userID")
			sseManager.ServeHTTP(c, userID)
		})

		// Provider webhook (shared-secret gated, no user auth)
		api.POST("/webhooks/call-completed", meetingHandler.Webhook)

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.GET("/me", delivery.AuthMiddleware(authUC), authHandler.Me)
			auth.POST("/provider/connect", delivery.AuthMiddleware(authUC), authHandler.ConnectProvider)
		}

		// Sync routes (protected)
		syncRoutes := api.Group("/sync")
		syncRoutes.Use(delivery.AuthMiddleware(authUC))
		{
			syncRoutes.POST("", meetingHandler.Sync)
			syncRoutes.GET("/status", meetingHandler.SyncStatus)
		}

		// Meeting routes (protected)
		meetings := api.Group("/meetings")
		meetings.Use(delivery.AuthMiddleware(authUC))
		{
			meetings.GET("", meetingHandler.GetMeetings)
			meetings.GET("/:id", meetingHandler.GetMeeting)
			meetings.GET("/:id/action-items", meetingHandler.GetMeetingActionItems)
			meetings.POST("/:id/analyze", meetingHandler.AnalyzeMeeting)
		}

		// CRM routes (protected)
		crm := api.Group("")
		crm.Use(delivery.AuthMiddleware(authUC))
		{
			crm.GET("/companies", meetingHandler.GetCompanies)
			crm.GET("/contacts", meetingHandler.GetContacts)
		}
	}
}
