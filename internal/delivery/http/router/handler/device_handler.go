package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pawpost/internal/delivery/http/response"
	"pawpost/internal/domain/entity"
	domainerrors "pawpost/internal/domain/errors"
	"pawpost/internal/errors"
	"pawpost/internal/infra/navigation"
	"pawpost/internal/infra/push"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	Bridge  *push.DeviceBridge
	Prompts *push.PromptQueue
	Intents *navigation.IntentLog
	Logger  *slog.Logger
}

// DeviceHandler lets the UI shell report device state and answer prompts
type DeviceHandler struct {
	bridge  *push.DeviceBridge
	prompts *push.PromptQueue
	intents *navigation.IntentLog
	logger  *slog.Logger
	now     func() time.Time
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		bridge:  params.Bridge,
		prompts: params.Prompts,
		intents: params.Intents,
		logger:  params.Logger,
		now:     time.Now,
	}
}

// PermissionRequest carries the platform permission decision
type PermissionRequest struct {
	Status entity.AuthorizationStatus `json:"status" validate:"required,oneof=NOT_DETERMINED DENIED AUTHORIZED PROVISIONAL"`
}

// TokenRequest carries a device token issued by the platform
type TokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// AppStateRequest reports whether the app is in the foreground
type AppStateRequest struct {
	Foreground *bool `json:"foreground" validate:"required"`
}

// RemoteMessageRequest is an inbound push message relayed by the UI shell
type RemoteMessageRequest struct {
	MessageID string            `json:"message_id"`
	From      string            `json:"from"`
	Title     string            `json:"title" validate:"max=512"`
	Body      string            `json:"body" validate:"max=4096"`
	Data      map[string]string `json:"data"`
	SentAt    *time.Time        `json:"sent_at"`
}

// NavigationState lists the navigation intents issued so far
type NavigationState struct {
	Current *entity.NavigationIntent  `json:"current,omitempty"`
	History []entity.NavigationIntent `json:"history"`
}

// SetPermission records the permission decision of the platform
func (h *DeviceHandler) SetPermission(c echo.Context) error {
	var req PermissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid permission input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	h.bridge.SetPermission(req.Status)

	return response.Success(c, http.StatusOK, req, "Permission recorded")
}

// SetToken records a new or rotated device token
func (h *DeviceHandler) SetToken(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	h.bridge.SetToken(c.Request().Context(), req.Token)

	return response.Success(c, http.StatusOK, nil, "Device token recorded")
}

// SetAppState records whether the app runs in the foreground
func (h *DeviceHandler) SetAppState(c echo.Context) error {
	var req AppStateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid app state input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	h.bridge.SetForeground(*req.Foreground)

	return response.Success(c, http.StatusOK, req, "App state recorded")
}

// DeliverMessage hands an inbound push message to the registered handlers
func (h *DeviceHandler) DeliverMessage(c echo.Context) error {
	msg, err := h.bindMessage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.bridge.Deliver(c.Request().Context(), msg)

	return response.Success(c, http.StatusAccepted, msg, "Message delivered")
}

// OpenedMessage reports a notification tap while the app was running
func (h *DeviceHandler) OpenedMessage(c echo.Context) error {
	msg, err := h.bindMessage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.bridge.Opened(c.Request().Context(), msg)

	return response.Success(c, http.StatusAccepted, msg, "Notification opened")
}

// SetLaunchNotification records the notification that launched the app from cold start
func (h *DeviceHandler) SetLaunchNotification(c echo.Context) error {
	msg, err := h.bindMessage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.bridge.SetLaunchNotification(msg)

	return response.Success(c, http.StatusOK, msg, "Launch notification recorded")
}

// ListPrompts returns the alerts waiting for an answer
func (h *DeviceHandler) ListPrompts(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.prompts.Pending(), "")
}

// AnswerPrompt runs the chosen action of a pending alert
func (h *DeviceHandler) AnswerPrompt(c echo.Context) error {
	err := h.prompts.Answer(c.Request().Context(), c.Param("id"), c.Param("action"))
	switch {
	case err == nil:
		return response.Success(c, http.StatusOK, nil, "Prompt answered")
	case errors.Is(err, push.ErrPromptNotFound):
		return response.HandleAppError(c, domainerrors.ErrPromptNotFound)
	case errors.Is(err, push.ErrUnknownAction):
		return response.BadRequest(c, "UNKNOWN_ACTION", err.Error())
	default:
		return errors.WithStack(err)
	}
}

// GetNavigation returns the navigation intents issued by notification routing
func (h *DeviceHandler) GetNavigation(c echo.Context) error {
	state := NavigationState{History: h.intents.History()}
	if current, ok := h.intents.Current(); ok {
		state.Current = &current
	}

	return response.Success(c, http.StatusOK, state, "")
}

func (h *DeviceHandler) bindMessage(c echo.Context) (*entity.RemoteMessage, error) {
	var req RemoteMessageRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	msg := &entity.RemoteMessage{
		MessageID: req.MessageID,
		From:      req.From,
		Title:     req.Title,
		Body:      req.Body,
		Data:      req.Data,
		SentAt:    h.now(),
	}
	if msg.MessageID == "" {
		msg.MessageID = uuid.NewString()
	}
	if req.SentAt != nil {
		msg.SentAt = *req.SentAt
	}

	return msg, nil
}
