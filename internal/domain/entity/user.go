// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// User is the slice of the user document this pipeline reads and writes.
type User struct {
	ID              string     `json:"id"`
	FCMToken        *string    `json:"fcm_token,omitempty"`         // Device token, nil when none is on file.
	LastTokenUpdate *time.Time `json:"last_token_update,omitempty"` // Time of the last token write.
}

// HasToken reports whether a device token is on file.
func (u *User) HasToken() bool {
	return u != nil && u.FCMToken != nil && *u.FCMToken != ""
}
