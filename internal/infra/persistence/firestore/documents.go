// Package firestore implements the repositories on Cloud Firestore documents.
package firestore

import (
	"time"

	"pawpost/internal/domain/entity"
)

// Collection names
const (
	usersCollection         = "users"
	notificationsCollection = "notifications"
)

// Document field paths
const (
	fieldFCMToken        = "fcmToken"
	fieldLastTokenUpdate = "lastTokenUpdate"
	fieldUserID          = "userId"
	fieldCreatedAt       = "createdAt"
	fieldRead            = "read"
	fieldReadAt          = "readAt"
)

// userDocument is the slice of a users document this service reads
type userDocument struct {
	FCMToken        *string    `firestore:"fcmToken,omitempty"`
	LastTokenUpdate *time.Time `firestore:"lastTokenUpdate,omitempty"`
}

// notificationDocument is a notifications document
type notificationDocument struct {
	UserID    string            `firestore:"userId"`
	Title     string            `firestore:"title"`
	Body      string            `firestore:"body"`
	Type      string            `firestore:"type"`
	Data      map[string]string `firestore:"data,omitempty"`
	Read      bool              `firestore:"read"`
	CreatedAt time.Time         `firestore:"createdAt"`
	ReadAt    *time.Time        `firestore:"readAt,omitempty"`
}

func toUserDomain(id string, doc *userDocument) *entity.User {
	return &entity.User{
		ID:              id,
		FCMToken:        doc.FCMToken,
		LastTokenUpdate: doc.LastTokenUpdate,
	}
}

func fromNotificationDomain(n *entity.Notification) *notificationDocument {
	return &notificationDocument{
		UserID:    n.UserID,
		Title:     n.Title,
		Body:      n.Body,
		Type:      string(n.Type),
		Data:      n.Data,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
		ReadAt:    n.ReadAt,
	}
}

func toNotificationDomain(id string, doc *notificationDocument) *entity.Notification {
	return &entity.Notification{
		ID:        id,
		UserID:    doc.UserID,
		Title:     doc.Title,
		Body:      doc.Body,
		Type:      entity.NotificationType(doc.Type),
		Data:      doc.Data,
		Read:      doc.Read,
		CreatedAt: doc.CreatedAt,
		ReadAt:    doc.ReadAt,
	}
}
