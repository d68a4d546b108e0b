// Package model contains the GORM structs of the relational store.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. Only the device token fields are owned by this service.
type UserModel struct {
	ID              string  `gorm:"type:text;primaryKey"`
	FCMToken        *string `gorm:"column:fcm_token;type:text"`
	LastTokenUpdate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
