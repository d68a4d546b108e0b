// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// AuthorizationStatus is the push permission reported by the platform push layer.
type AuthorizationStatus string

const (
	AuthorizationNotDetermined AuthorizationStatus = "NOT_DETERMINED"
	AuthorizationDenied        AuthorizationStatus = "DENIED"
	AuthorizationAuthorized    AuthorizationStatus = "AUTHORIZED"
	AuthorizationProvisional   AuthorizationStatus = "PROVISIONAL"
)

// Allowed reports whether the status permits push delivery.
func (s AuthorizationStatus) Allowed() bool {
	return s == AuthorizationAuthorized || s == AuthorizationProvisional
}

// NotificationState is the permission and token lifecycle of the notification service.
type NotificationState string

const (
	StateUninitialized       NotificationState = "UNINITIALIZED"
	StatePermissionRequested NotificationState = "PERMISSION_REQUESTED"
	StateGranted             NotificationState = "GRANTED"
	StateDenied              NotificationState = "DENIED"
	StateTokenAcquired       NotificationState = "TOKEN_ACQUIRED"
	StateHandlersAttached    NotificationState = "HANDLERS_ATTACHED"
)

// RemoteMessage is an inbound push message as delivered by the platform push layer.
type RemoteMessage struct {
	MessageID string            `json:"message_id"`
	From      string            `json:"from,omitempty"`
	Title     string            `json:"title,omitempty"`
	Body      string            `json:"body,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	SentAt    time.Time         `json:"sent_at"`
}

// NavigationIntent records one navigation request issued by notification routing.
type NavigationIntent struct {
	Screen string            `json:"screen"`
	Params map[string]string `json:"params,omitempty"`
	At     time.Time         `json:"at"`
}
