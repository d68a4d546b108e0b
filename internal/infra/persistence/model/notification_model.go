package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table. PostgreSQL generates UUIDs via gen_random_uuid().
type NotificationModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    string            `gorm:"type:text;not null;index:idx_notifications_user_created,priority:1"`
	Title     string            `gorm:"type:text;not null"`
	Body      string            `gorm:"type:text;not null"`
	Type      string            `gorm:"type:varchar(16);not null;default:'general'"`
	Data      map[string]string `gorm:"type:jsonb;serializer:json"`
	Read      bool              `gorm:"not null;default:false"`
	CreatedAt time.Time         `gorm:"not null;index:idx_notifications_user_created,priority:2,sort:desc"`
	ReadAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
