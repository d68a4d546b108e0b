package handler

import (
	"log/slog"
	"net/http"

	"pawpost/internal/delivery/http/response"
	"pawpost/internal/domain/entity"
	domainerrors "pawpost/internal/domain/errors"
	"pawpost/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	Notifications usecase.NotificationUsecase
	Logger        *slog.Logger
}

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		uc:     params.Notifications,
		logger: params.Logger,
	}
}

// InitializeRequest names the signed-in user whose device token is stored
type InitializeRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// TopicRequest binds the topic path parameter
type TopicRequest struct {
	Topic string `param:"topic" json:"topic" validate:"required,topic"`
}

// StateResponse reports the permission/token lifecycle state
type StateResponse struct {
	State entity.NotificationState `json:"state"`
}

// SendResult reports whether a notification document was created
type SendResult struct {
	Created      bool                 `json:"created"`
	Notification *entity.Notification `json:"notification,omitempty"`
}

// Initialize runs permission, token and handler setup for a user
func (h *NotificationHandler) Initialize(c echo.Context) error {
	var req InitializeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid initialize input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	h.uc.Initialize(c.Request().Context(), req.UserID)

	return response.Success(c, http.StatusOK, StateResponse{State: h.uc.State()}, "Notifications initialized")
}

// GetState returns the lifecycle state of the notification service
func (h *NotificationHandler) GetState(c echo.Context) error {
	return response.Success(c, http.StatusOK, StateResponse{State: h.uc.State()}, "")
}

// GetUserNotifications returns the newest notifications of a user
func (h *NotificationHandler) GetUserNotifications(c echo.Context) error {
	notifications := h.uc.GetUserNotifications(c.Request().Context(), c.Param("id"))

	return response.Success(c, http.StatusOK, notifications, "")
}

// SendNotification creates a notification for a user that has a device token
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	var input entity.NotificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&input); err != nil {
		return response.ValidationError(c, err)
	}

	notification, created := h.uc.SendNotificationToUser(c.Request().Context(), c.Param("id"), &input)
	if !created {
		return response.Success(c, http.StatusOK, SendResult{}, "No notification was created")
	}

	return response.Success(c, http.StatusCreated, SendResult{Created: true, Notification: notification}, "Notification created")
}

// MarkAsRead marks a notification as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	if !h.uc.MarkNotificationAsRead(c.Request().Context(), c.Param("id")) {
		return response.HandleAppError(c, domainerrors.ErrOperationFailed)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// UpdateToken stores the current device token on the user document
func (h *NotificationHandler) UpdateToken(c echo.Context) error {
	if !h.uc.UpdateFCMToken(c.Request().Context(), c.Param("id")) {
		return response.HandleAppError(c, domainerrors.ErrOperationFailed)
	}

	return response.Success(c, http.StatusOK, nil, "Device token stored")
}

// RemoveToken deletes the device token from the user document
func (h *NotificationHandler) RemoveToken(c echo.Context) error {
	if !h.uc.RemoveFCMToken(c.Request().Context(), c.Param("id")) {
		return response.HandleAppError(c, domainerrors.ErrOperationFailed)
	}

	return response.Success(c, http.StatusOK, nil, "Device token removed")
}

// SubscribeTopic subscribes this installation to a topic
func (h *NotificationHandler) SubscribeTopic(c echo.Context) error {
	return h.manageTopic(c, true)
}

// UnsubscribeTopic unsubscribes this installation from a topic
func (h *NotificationHandler) UnsubscribeTopic(c echo.Context) error {
	return h.manageTopic(c, false)
}

func (h *NotificationHandler) manageTopic(c echo.Context, subscribe bool) error {
	var req TopicRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid topic")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	ctx := c.Request().Context()
	if subscribe {
		if !h.uc.SubscribeToTopic(ctx, req.Topic) {
			return response.HandleAppError(c, domainerrors.ErrOperationFailed)
		}

		return response.Success(c, http.StatusOK, req, "Subscribed to topic")
	}

	if !h.uc.UnsubscribeFromTopic(ctx, req.Topic) {
		return response.HandleAppError(c, domainerrors.ErrOperationFailed)
	}

	return response.Success(c, http.StatusOK, req, "Unsubscribed from topic")
}
