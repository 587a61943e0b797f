package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shift-scheduler/internal/api/http/handlers"
	"github.com/spec-kit/shift-scheduler/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Schedules      *handlers.ScheduleHandler
	TimeOff        *handlers.TimeOffHandler
	Admin          *handlers.AdminHandler
	Export         *handlers.ExportHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	// export authorizes with a shared secret header, not a session
	app.Get("/export/payroll", cfg.Export.Payroll)

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAnyRole())
	protected.Post("/auth/logout", cfg.Auth.Logout)
	protected.Get("/auth/me", cfg.Auth.Me)
	protected.Get("/schedules", cfg.Schedules.Calendar)
	protected.Post("/time-off", cfg.TimeOff.Submit)

	admin := protected.Group("/admin", auth.RequireAdmin())
	admin.Get("/overview", cfg.Admin.Overview)
	admin.Post("/schedules", cfg.Admin.CreateShift)
	admin.Post("/time-off/:id/approve", cfg.Admin.ApproveTimeOff)
	admin.Post("/time-off/:id/deny", cfg.Admin.DenyTimeOff)
}
