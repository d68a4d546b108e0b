package impl

import (
	"pawpost/internal/domain/entity"
)

// Screens opened by notification routing
const (
	ScreenPostDetail  = "PostDetail"
	ScreenUserProfile = "UserProfile"
	ScreenChat        = "Chat"
	ScreenReminders   = "Reminders"
	ScreenHome        = "Home"
)

// Keys of the notification routing payload
const (
	DataKeyType           = "type"
	DataKeyPostID         = "postId"
	DataKeyUserID         = "userId"
	DataKeyChatID         = "chatId"
	DataKeyNotificationID = "notificationId"
)

// resolveRoute maps a notification payload to the screen it opens.
// A payload whose referenced ID is missing opens Home.
func resolveRoute(data map[string]string) (string, map[string]string) {
	switch entity.NotificationType(data[DataKeyType]) {
	case entity.NotificationTypeLike, entity.NotificationTypeComment:
		return withParam(ScreenPostDetail, DataKeyPostID, data)
	case entity.NotificationTypeFollow:
		return withParam(ScreenUserProfile, DataKeyUserID, data)
	case entity.NotificationTypeMessage:
		return withParam(ScreenChat, DataKeyChatID, data)
	case entity.NotificationTypeReminder:
		return ScreenReminders, nil
	default:
		return ScreenHome, nil
	}
}

func withParam(screen, key string, data map[string]string) (string, map[string]string) {
	id := data[key]
	if id == "" {
		return ScreenHome, nil
	}

	return screen, map[string]string{key: id}
}
