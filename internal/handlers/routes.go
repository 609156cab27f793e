package handlers

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups the HTTP handlers served under /api/v1
type Handlers struct {
	Session *SessionHandler
	Account *AccountHandler
	Events  *EventHub
	Health  *HealthCheckHandler
}

// RegisterRoutes mounts every endpoint on e. apiMiddleware applies to the
// /api/v1 group only.
func RegisterRoutes(e *echo.Echo, h Handlers, apiMiddleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health.HealthCheck)

	api := e.Group("/api/v1", apiMiddleware...)

	api.POST("/session", h.Session.Login)
	api.DELETE("/session", h.Session.Logout)
	api.GET("/session", h.Session.GetState)
	api.GET("/session/snapshot", h.Session.GetSnapshot)
	api.POST("/session/sort", h.Session.ToggleSort)

	api.POST("/transfers", h.Account.Transfer)
	api.POST("/loans", h.Account.RequestLoan)
	api.GET("/loans/:id", h.Account.GetLoan)
	api.DELETE("/loans/:id", h.Account.CancelLoan)
	api.DELETE("/accounts", h.Account.CloseAccount)

	api.GET("/events", h.Events.Stream)
}
