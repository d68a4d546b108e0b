package handler

import (
	"context"
	"net/http"

	"pawpost/internal/delivery/boundary"
	"pawpost/internal/delivery/http/response"
	domainerrors "pawpost/internal/domain/errors"
	"pawpost/internal/errors"
	"pawpost/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScreenNotifications is the notifications list screen
const ScreenNotifications = "notifications"

// ScreenHandlerParams holds dependencies for ScreenHandler, injected by Fx.
type ScreenHandlerParams struct {
	fx.In

	Registry      *boundary.Registry
	Notifications usecase.NotificationUsecase
}

// ScreenHandler renders screens through their error boundaries
type ScreenHandler struct {
	registry      *boundary.Registry
	notifications usecase.NotificationUsecase
}

// NewScreenHandler is the constructor for ScreenHandler
func NewScreenHandler(params ScreenHandlerParams) *ScreenHandler {
	params.Registry.Register(ScreenNotifications)

	return &ScreenHandler{
		registry:      params.Registry,
		notifications: params.Notifications,
	}
}

// NotificationsScreen renders the notifications list of a user
func (h *ScreenHandler) NotificationsScreen(c echo.Context) error {
	userID := c.QueryParam("userId")
	b := h.registry.Register(ScreenNotifications)

	view := b.Render(c.Request().Context(), func(ctx context.Context) (any, error) {
		if userID == "" {
			return nil, domainerrors.Validation("renderNotifications", errors.New("userId is required"))
		}

		return h.notifications.GetUserNotifications(ctx, userID), nil
	})

	return response.Success(c, http.StatusOK, view, "")
}

// Retry clears the fallback state of a screen
func (h *ScreenHandler) Retry(c echo.Context) error {
	b, ok := h.registry.Lookup(c.Param("name"))
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrScreenNotFound)
	}

	b.Retry()

	return response.Success(c, http.StatusOK, boundary.View{Screen: b.Name()}, "Screen reset")
}

// Report acknowledges a user report of a screen failure
func (h *ScreenHandler) Report(c echo.Context) error {
	b, ok := h.registry.Lookup(c.Param("name"))
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrScreenNotFound)
	}

	return response.Success(c, http.StatusOK, b.Report(), "")
}
