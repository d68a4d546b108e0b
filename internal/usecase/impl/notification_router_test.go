package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRoute(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]string
		wantScreen string
		wantParams map[string]string
	}{
		{name: "like", data: map[string]string{"type": "like", "postId": "p1"}, wantScreen: ScreenPostDetail, wantParams: map[string]string{"postId": "p1"}},
		{name: "comment", data: map[string]string{"type": "comment", "postId": "p2"}, wantScreen: ScreenPostDetail, wantParams: map[string]string{"postId": "p2"}},
		{name: "follow", data: map[string]string{"type": "follow", "userId": "u1"}, wantScreen: ScreenUserProfile, wantParams: map[string]string{"userId": "u1"}},
		{name: "message", data: map[string]string{"type": "message", "chatId": "c1"}, wantScreen: ScreenChat, wantParams: map[string]string{"chatId": "c1"}},
		{name: "reminder", data: map[string]string{"type": "reminder"}, wantScreen: ScreenReminders},
		{name: "general", data: map[string]string{"type": "general"}, wantScreen: ScreenHome},
		{name: "unknown type", data: map[string]string{"type": "vaccination"}, wantScreen: ScreenHome},
		{name: "missing type", data: map[string]string{"postId": "p1"}, wantScreen: ScreenHome},
		{name: "nil payload", data: nil, wantScreen: ScreenHome},
		{name: "like without post", data: map[string]string{"type": "like"}, wantScreen: ScreenHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen, params := resolveRoute(tt.data)

			assert.Equal(t, tt.wantScreen, screen)
			assert.Equal(t, tt.wantParams, params)
		})
	}
}
