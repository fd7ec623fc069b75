package routes

import (
	"github.com/gin-gonic/gin"

	"geronimocrm/internal/authz"
	"geronimocrm/internal/handlers"
	"geronimocrm/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	clientHandler *handlers.ClientHandler,
	campaignHandler *handlers.CampaignHandler,
	leadHandler *handlers.LeadHandler,
	interactionHandler *handlers.InteractionHandler,
	meetingHandler *handlers.MeetingHandler,
	taskHandler *handlers.TaskHandler,
	targetHandler *handlers.TargetHandler,
	trackerHandler *handlers.TrackerHandler,
	dashboardHandler *handlers.DashboardHandler,
	reportHandler *handlers.ReportHandler,
	adminHandler *handlers.AdminHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)

	// ---- protected
	r.Use(middleware.AuthMiddleware())
	r.Use(middleware.ReadOnlyGuard())

	// DASHBOARD
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/summary", dashboardHandler.Summary)
		dashboard.GET("/timeseries", dashboardHandler.Timeseries)
		dashboard.GET("/heatmap", dashboardHandler.Heatmap)
		dashboard.GET("/sectors", dashboardHandler.Sectors)
		dashboard.GET("/funnel", dashboardHandler.Funnel)
	}

	// CLIENTS
	clients := r.Group("/clients")
	{
		clients.POST("/", clientHandler.Create)
		clients.GET("/", clientHandler.List)
		clients.GET("/:id", clientHandler.GetByID)
		clients.POST("/:id/contacts", clientHandler.AddContact)
		clients.GET("/:id/contacts", clientHandler.ListContacts)
	}

	// CAMPAIGNS
	campaigns := r.Group("/campaigns")
	{
		campaigns.POST("/", campaignHandler.Create)
		campaigns.GET("/", campaignHandler.List)
		campaigns.GET("/:id", campaignHandler.GetByID)
	}

	// LEADS
	leads := r.Group("/leads")
	{
		leads.POST("/", leadHandler.Create)
		leads.GET("/", leadHandler.List)
		leads.GET("/:id", leadHandler.GetByID)
		leads.POST("/:id/stage", leadHandler.UpdateStage)
	}

	// INTERACTIONS
	interactions := r.Group("/interactions")
	{
		interactions.POST("/", interactionHandler.Create)
		interactions.GET("/", interactionHandler.List)
	}

	// MEETINGS
	meetings := r.Group("/meetings")
	{
		meetings.POST("/", meetingHandler.Create)
		meetings.GET("/", meetingHandler.List)
		meetings.POST("/:id/status", meetingHandler.UpdateStatus)
	}

	// TASKS
	tasks := r.Group("/tasks")
	{
		tasks.POST("/", taskHandler.Create)
		tasks.GET("/", taskHandler.GetAll)
		tasks.POST("/:id/status", taskHandler.ChangeStatus)
	}

	// TARGETS (managers set them, everyone reads)
	targets := r.Group("/targets")
	{
		targets.POST("/", middleware.RequireElevated(), targetHandler.Set)
		targets.GET("/", targetHandler.List)
		targets.GET("/performance", targetHandler.Performance)
	}

	// SALES CAMPAIGN TRACKER
	tracker := r.Group("/tracker")
	{
		tracker.POST("/", trackerHandler.Create)
		tracker.POST("/import", trackerHandler.Import)
		tracker.GET("/", trackerHandler.List)
	}

	// REPORTS
	reports := r.Group("/reports")
	{
		reports.GET("/summary", reportHandler.Summary)
		reports.GET("/export/csv", reportHandler.ExportCSV)
		reports.GET("/export/pdf", reportHandler.ExportPDF)
	}

	// USERS (Admin)
	users := r.Group("/users", middleware.RequireRoles(authz.RoleAdmin))
	{
		users.POST("/", userHandler.Create)
		users.GET("/", userHandler.List)
		users.GET("/count", userHandler.Count)
	}

	// ADMIN (Admin)
	admin := r.Group("/admin", middleware.RequireRoles(authz.RoleAdmin))
	{
		admin.POST("/reset/request", adminHandler.RequestReset)
		admin.POST("/reset", adminHandler.Reset)
	}

	return r
}
