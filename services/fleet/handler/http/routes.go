package http

import (
	"github.com/labstack/echo/v4"

	"github.com/riderlink/riderlink/internal/pkg/middleware"
	"github.com/riderlink/riderlink/internal/pkg/models"
)

// RegisterRoutes mounts the fleet API under /api. limiter is an optional
// rate-limiting middleware applied to the authenticated surface; pass
// nil to disable it.
func (h *Handler) RegisterRoutes(e *echo.Echo, limiter echo.MiddlewareFunc) {
	api := e.Group("/api")

	// Session establishment is the only unauthenticated endpoint.
	api.POST("/auth/login", h.Login)

	authed := api.Group("", middleware.SessionAuth(h.jwtCfg))
	if limiter != nil {
		authed.Use(limiter)
	}

	authed.POST("/auth/logout", h.Logout)
	authed.GET("/auth/me", h.Me)

	elevated := []models.Role{models.RoleFleetSupervisor, models.RoleAdmin, models.RoleSuperAdmin}
	adminOnly := []models.Role{models.RoleAdmin, models.RoleSuperAdmin}

	// Account management is restricted to admins.
	authed.GET("/users", h.ListUsers, middleware.RequireRoles(adminOnly...))
	authed.POST("/users", h.CreateUser, middleware.RequireRoles(adminOnly...))
	authed.PATCH("/users/:id", h.UpdateUser, middleware.RequireRoles(adminOnly...))

	// Vehicle reads are open to every authenticated role; writes need an
	// elevated role.
	authed.GET("/vehicles", h.ListVehicles)
	authed.GET("/vehicles/:id", h.GetVehicle)
	authed.POST("/vehicles", h.CreateVehicle, middleware.RequireRoles(elevated...))
	authed.PUT("/vehicles/:id", h.UpdateVehicle, middleware.RequireRoles(elevated...))
	authed.POST("/vehicles/:id/assign", h.AssignVehicle, middleware.RequireRoles(elevated...))

	// Telemetry.
	authed.POST("/gps-locations", h.RecordLocation)
	authed.GET("/vehicles/:id/latest-location", h.LatestLocation)
	authed.GET("/vehicles/:id/gps-locations", h.LocationHistory)

	// Maintenance.
	authed.GET("/maintenance", h.ListMaintenance)
	authed.GET("/maintenance/upcoming", h.ListUpcomingMaintenance)
	authed.GET("/vehicles/:id/maintenance", h.ListMaintenanceForVehicle)
	authed.POST("/maintenance", h.CreateMaintenance, middleware.RequireRoles(elevated...))
	authed.PUT("/maintenance/:id/complete", h.CompleteMaintenance, middleware.RequireRoles(elevated...))

	// Fuel reporting.
	authed.POST("/fuel-reports", h.CreateFuelReport)
	authed.GET("/vehicles/:id/fuel-reports", h.ListFuelReportsForVehicle)

	// Audit trail.
	authed.GET("/activity-logs", h.RecentActivity)

	// Geofences are managed by elevated roles only.
	authed.GET("/geofences", h.ListGeofences, middleware.RequireRoles(elevated...))
	authed.POST("/geofences", h.CreateGeofence, middleware.RequireRoles(elevated...))

	// Alerts.
	authed.GET("/alerts", h.ListUnreadAlerts)
	authed.POST("/alerts/:id/read", h.MarkAlertRead)

	// Dashboard.
	authed.GET("/dashboard/summary", h.DashboardSummary)
}
