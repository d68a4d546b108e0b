package handler

import (
	"net/http"

	"pawpost/internal/delivery/http/response"
	"pawpost/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and the notification lifecycle state
type HealthHandler struct {
	notifications usecase.NotificationUsecase
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(notifications usecase.NotificationUsecase) *HealthHandler {
	return &HealthHandler{notifications: notifications}
}

// HealthCheck is a simple handler to check if the service is up.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":             "ok",
		"notification_state": string(h.notifications.State()),
	}, "Service is healthy")
}
