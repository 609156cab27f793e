package handlers

import (
	"log/slog"
	"net/http"

	"bankist/internal/dto"
	"bankist/internal/services"

	"github.com/labstack/echo/v4"
)

// SessionHandler handles login, logout and the session views
type SessionHandler struct {
	session   services.SessionInterface
	formatter *Formatter
	logger    *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(session services.SessionInterface, formatter *Formatter, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		session:   session,
		formatter: formatter,
		logger:    logger,
	}
}

// Login opens a session for the account matching username and pin
// @Summary Log in
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Invalid username or PIN"
// @Router /session [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendValidationError(c, err)
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	snapshot, err := h.session.Login(c.Request().Context(), req.Username, req.Pin)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Session: h.formatter.Session(h.session.State()),
		Account: h.formatter.Snapshot(*snapshot),
	})
}

// Logout ends the active session
// @Summary Log out
// @Tags Session
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse "SESSION_001 - No active session"
// @Router /session [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.session.Logout(c.Request().Context()); err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Logged out"})
}

// GetState returns the session state, logged in or not
// @Summary Session state
// @Tags Session
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Router /session [get]
func (h *SessionHandler) GetState(c echo.Context) error {
	return c.JSON(http.StatusOK, h.formatter.Session(h.session.State()))
}

// GetSnapshot returns the formatted view of the active account
// @Summary Account snapshot
// @Tags Session
// @Produce json
// @Success 200 {object} dto.SnapshotResponse
// @Failure 401 {object} errors.ErrorResponse "SESSION_001 - No active session"
// @Router /session/snapshot [get]
func (h *SessionHandler) GetSnapshot(c echo.Context) error {
	snapshot, err := h.session.Snapshot()
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, h.formatter.Snapshot(*snapshot))
}

// ToggleSort flips the movement order of the active account
// @Summary Toggle movement sort
// @Tags Session
// @Produce json
// @Success 200 {object} dto.SortResponse
// @Failure 401 {object} errors.ErrorResponse "SESSION_001 - No active session"
// @Router /session/sort [post]
func (h *SessionHandler) ToggleSort(c echo.Context) error {
	sorted, err := h.session.ToggleSort(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}

	snapshot, err := h.session.Snapshot()
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SortResponse{
		Sorted:  sorted,
		Account: h.formatter.Snapshot(*snapshot),
	})
}
