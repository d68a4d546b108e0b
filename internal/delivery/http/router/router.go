// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pawpost/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers registered on the local API
type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	ErrorLogHandler     *handler.ErrorLogHandler
	ScreenHandler       *handler.ScreenHandler
	PushHandler         *handler.PushHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	health        *handler.HealthHandler
	device        *handler.DeviceHandler
	notifications *handler.NotificationHandler
	errorLog      *handler.ErrorLogHandler
	screens       *handler.ScreenHandler
	push          *handler.PushHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		health:        params.HealthHandler,
		device:        params.DeviceHandler,
		notifications: params.NotificationHandler,
		errorLog:      params.ErrorLogHandler,
		screens:       params.ScreenHandler,
		push:          params.PushHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.health.HealthCheck)

	// Device state reported by the UI shell
	deviceGroup := e.Group("/device")
	{
		deviceGroup.PUT("/permission", r.device.SetPermission)
		deviceGroup.PUT("/token", r.device.SetToken)
		deviceGroup.PUT("/state", r.device.SetAppState)
		deviceGroup.POST("/messages", r.device.DeliverMessage)
		deviceGroup.POST("/opened", r.device.OpenedMessage)
		deviceGroup.PUT("/launch", r.device.SetLaunchNotification)
		deviceGroup.GET("/prompts", r.device.ListPrompts)
		deviceGroup.POST("/prompts/:id/:action", r.device.AnswerPrompt)
		deviceGroup.GET("/navigation", r.device.GetNavigation)
	}

	// Notification pipeline
	e.POST("/notifications/initialize", r.notifications.Initialize)
	e.GET("/notifications/state", r.notifications.GetState)
	e.POST("/notifications/:id/read", r.notifications.MarkAsRead)

	userGroup := e.Group("/users/:id")
	{
		userGroup.GET("/notifications", r.notifications.GetUserNotifications)
		userGroup.POST("/notifications", r.notifications.SendNotification)
		userGroup.PUT("/token", r.notifications.UpdateToken)
		userGroup.DELETE("/token", r.notifications.RemoveToken)
	}

	e.POST("/topics/:topic", r.notifications.SubscribeTopic)
	e.DELETE("/topics/:topic", r.notifications.UnsubscribeTopic)

	// Error pipeline
	e.GET("/errors", r.errorLog.ListErrors)
	e.POST("/errors", r.errorLog.ReportError)
	e.DELETE("/errors", r.errorLog.ClearErrors)

	// Screens wrapped in error boundaries
	screenGroup := e.Group("/screens")
	{
		screenGroup.GET("/notifications", r.screens.NotificationsScreen)
		screenGroup.POST("/:name/retry", r.screens.Retry)
		screenGroup.POST("/:name/report", r.screens.Report)
	}

	// Pub/Sub push subscription
	e.POST("/push", r.push.HandlePush)
}
