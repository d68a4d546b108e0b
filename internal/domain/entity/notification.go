// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// NotificationType identifies what a notification is about and where it routes to.
type NotificationType string

const (
	NotificationTypeLike     NotificationType = "like"
	NotificationTypeComment  NotificationType = "comment"
	NotificationTypeFollow   NotificationType = "follow"
	NotificationTypeMessage  NotificationType = "message"
	NotificationTypeReminder NotificationType = "reminder"
	NotificationTypeGeneral  NotificationType = "general"
)

// Notification is an in-app notification document, independent of whether a push was delivered.
// Once Read is true it is never reset.
type Notification struct {
	ID        string            `json:"id"`                // Backend-assigned document ID.
	UserID    string            `json:"user_id"`           // Recipient.
	Title     string            `json:"title"`             // Short headline.
	Body      string            `json:"body"`              // Message text.
	Type      NotificationType  `json:"type"`              // Routing type.
	Data      map[string]string `json:"data,omitempty"`    // Routing payload (postId, userId, chatId...).
	Read      bool              `json:"read"`              // Set once the recipient opens it.
	CreatedAt time.Time         `json:"created_at"`        // Insert time.
	ReadAt    *time.Time        `json:"read_at,omitempty"` // Time the notification was opened.
}

// NotificationInput is what a sender supplies for a new notification.
type NotificationInput struct {
	Title string            `json:"title" validate:"required"`
	Body  string            `json:"body" validate:"required"`
	Type  NotificationType  `json:"type" validate:"required,oneof=like comment follow message reminder general"`
	Data  map[string]string `json:"data,omitempty"`
}
