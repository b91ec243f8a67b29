package api

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studio-click-house/schl-web-sub004/internal/database"
	"github.com/studio-click-house/schl-web-sub004/internal/tracking"
)

var (
	sessionRepo *database.SessionRepo
	workLogRepo *database.WorkLogRepo
	orderRepo   *database.OrderRepo
	composer    *tracking.Composer
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api *echo.Group, loc *time.Location) {
	// Initialize repositories and the view composer
	sessionRepo = database.NewSessionRepo()
	workLogRepo = database.NewWorkLogRepo()
	orderRepo = database.NewOrderRepo()
	composer = tracking.NewComposer(sessionRepo, workLogRepo, loc)

	// Health check (public)
	api.GET("/health", healthCheck)

	// Read-only tracking surface; nothing here mutates stored state
	api.GET("/jobs", listJobs)
	api.GET("/files/search", searchFiles)
	api.GET("/dashboard/today", todayDashboard)
	api.GET("/tracking/live", liveTracking)
}
