package handlers

import (
	"net/http"

	"bankist/internal/dto"
	"bankist/internal/repositories"
	"bankist/internal/scheduler"
	"bankist/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	accountRepo repositories.AccountRepositoryInterface
	session     services.SessionInterface
	clock       scheduler.Clock
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(accountRepo repositories.AccountRepositoryInterface, session services.SessionInterface, clock scheduler.Clock) *HealthCheckHandler {
	return &HealthCheckHandler{
		accountRepo: accountRepo,
		session:     session,
		clock:       clock,
	}
}

// HealthCheck reports liveness with the number of open accounts
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is healthy"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "healthy",
		Accounts: h.accountRepo.Count(),
		Session:  h.session.State().LoggedIn,
		Time:     h.clock.Now().UTC(),
	})
}
