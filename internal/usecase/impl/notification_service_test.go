package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pawpost/internal/domain/entity"
	"pawpost/internal/domain/repository"
	"pawpost/internal/domain/service"
	"pawpost/internal/infra/persistence/memory"
	mockSvc "pawpost/internal/mocks/service"
	"pawpost/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type notificationFixture struct {
	service       *notificationService
	transport     *mockSvc.MockPushTransport
	sender        *mockSvc.MockPushSender
	navigator     *mockSvc.MockNavigator
	alerter       *mockSvc.MockAlerter
	users         repository.UserRepository
	notifications repository.NotificationRepository
	errors        usecase.ErrorUsecase

	onMessage    service.MessageHandler
	onBackground service.MessageHandler
	onOpened     service.MessageHandler
	onToken      service.TokenHandler
}

func createTestNotificationService(t *testing.T, topics ...string) *notificationFixture {
	t.Helper()

	cfg := testConfig()
	cfg.Notification.Topics = topics

	f := &notificationFixture{
		transport:     mockSvc.NewMockPushTransport(t),
		sender:        mockSvc.NewMockPushSender(t),
		navigator:     mockSvc.NewMockNavigator(t),
		alerter:       mockSvc.NewMockAlerter(t),
		users:         memory.NewUserRepository(),
		notifications: memory.NewNotificationRepository(),
		errors:        createTestErrorHandler(t, nil),
	}

	svc := NewNotificationService(NotificationServiceParams{
		Config:           cfg,
		Logger:           discardLogger(),
		Transport:        f.transport,
		Sender:           f.sender,
		UserRepo:         f.users,
		NotificationRepo: f.notifications,
		Navigator:        f.navigator,
		Alerter:          f.alerter,
		Errors:           f.errors,
	})

	var ok bool
	f.service, ok = svc.(*notificationService)
	require.True(t, ok)
	f.service.now = func() time.Time { return fixedNow }

	return f
}

// expectHandlers captures the inbound handlers registered on the transport
func (f *notificationFixture) expectHandlers(initial *entity.RemoteMessage) {
	f.transport.EXPECT().OnMessage(mock.Anything).
		Run(func(h service.MessageHandler) { f.onMessage = h }).Return().Once()
	f.transport.EXPECT().SetBackgroundMessageHandler(mock.Anything).
		Run(func(h service.MessageHandler) { f.onBackground = h }).Return().Once()
	f.transport.EXPECT().OnNotificationOpenedApp(mock.Anything).
		Run(func(h service.MessageHandler) { f.onOpened = h }).Return().Once()
	f.transport.EXPECT().OnTokenRefresh(mock.Anything).
		Run(func(h service.TokenHandler) { f.onToken = h }).Return().Once()
	f.transport.EXPECT().GetInitialNotification(mock.Anything).Return(initial, nil).Once()
}

func seedUser(t *testing.T, repo repository.UserRepository, id, token string) {
	t.Helper()

	user := &entity.User{ID: id}
	if token != "" {
		user.FCMToken = &token
		at := fixedNow.Add(-time.Hour)
		user.LastTokenUpdate = &at
	}
	memory.Seed(repo, user)
}

func TestNotificationService_Initialize_Granted(t *testing.T) {
	f := createTestNotificationService(t, "pet-tips")
	ctx := context.Background()

	f.transport.EXPECT().RequestPermission(ctx).Return(entity.AuthorizationAuthorized, nil).Once()
	f.transport.EXPECT().GetToken(ctx).Return("device-token", nil).Once()
	f.expectHandlers(nil)
	f.transport.EXPECT().SubscribeToTopic(ctx, "pet-tips").Return(nil).Once()

	assert.Equal(t, entity.StateUninitialized, f.service.State())

	f.service.Initialize(ctx, "user-1")

	assert.Equal(t, entity.StateHandlersAttached, f.service.State())

	user, err := f.users.FindUserByID(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, user.HasToken())
	assert.Equal(t, "device-token", *user.FCMToken)
	assert.Equal(t, fixedNow, *user.LastTokenUpdate)
	assert.Empty(t, f.errors.Logs())
}

func TestNotificationService_Initialize_DeniedShortCircuits(t *testing.T) {
	f := createTestNotificationService(t, "pet-tips")
	ctx := context.Background()

	f.transport.EXPECT().RequestPermission(ctx).Return(entity.AuthorizationDenied, nil).Once()

	f.service.Initialize(ctx, "user-1")

	assert.Equal(t, entity.StateDenied, f.service.State())
	f.transport.AssertNotCalled(t, "GetToken", mock.Anything)
	f.transport.AssertNotCalled(t, "OnMessage", mock.Anything)

	_, err := f.users.FindUserByID(ctx, "user-1")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestNotificationService_Initialize_RegrantAfterDenial(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	f.transport.EXPECT().RequestPermission(ctx).Return(entity.AuthorizationAuthorized, nil).Once()
	f.transport.EXPECT().GetToken(ctx).Return("device-token", nil).Once()
	f.expectHandlers(nil)
	f.service.Initialize(ctx, "user-1")
	require.Equal(t, entity.StateHandlersAttached, f.service.State())

	f.transport.EXPECT().RequestPermission(ctx).Return(entity.AuthorizationDenied, nil).Once()
	assert.False(t, f.service.RequestPermission(ctx))
	assert.Equal(t, entity.StateDenied, f.service.State())

	f.transport.EXPECT().RequestPermission(ctx).Return(entity.AuthorizationAuthorized, nil).Once()
	f.transport.EXPECT().GetToken(ctx).Return("device-token", nil).Once()
	f.service.Initialize(ctx, "user-1")

	// handlers are registered once; the state returns to the steady state
	assert.Equal(t, entity.StateHandlersAttached, f.service.State())
	f.transport.AssertNumberOfCalls(t, "OnMessage", 1)
}

func TestNotificationService_Initialize_TokenFailureStillAttachesHandlers(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	f.transport.EXPECT().RequestPermission(ctx).Return(entity.AuthorizationProvisional, nil).Once()
	f.transport.EXPECT().GetToken(ctx).Return("", errors.New("network unavailable")).Once()
	f.expectHandlers(nil)

	f.service.Initialize(ctx, "user-1")

	assert.Equal(t, entity.StateHandlersAttached, f.service.State())
	require.NotNil(t, f.onMessage)

	logs := f.errors.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, entity.ErrorCodeNetwork, logs[0].Code)
	assert.Contains(t, logs[0].Message, "network unavailable")
}

func TestNotificationService_RequestPermission(t *testing.T) {
	tests := []struct {
		name      string
		status    entity.AuthorizationStatus
		err       error
		want      bool
		wantState entity.NotificationState
		wantLogs  int
	}{
		{name: "authorized", status: entity.AuthorizationAuthorized, want: true, wantState: entity.StateGranted},
		{name: "provisional", status: entity.AuthorizationProvisional, want: true, wantState: entity.StateGranted},
		{name: "denied", status: entity.AuthorizationDenied, want: false, wantState: entity.StateDenied},
		{name: "not determined", status: entity.AuthorizationNotDetermined, want: false, wantState: entity.StateDenied},
		{name: "transport error", err: errors.New("messaging unavailable"), want: false, wantState: entity.StateDenied, wantLogs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestNotificationService(t)
			ctx := context.Background()

			f.transport.EXPECT().RequestPermission(ctx).Return(tt.status, tt.err).Once()

			assert.Equal(t, tt.want, f.service.RequestPermission(ctx))
			assert.Equal(t, tt.wantState, f.service.State())
			assert.Len(t, f.errors.Logs(), tt.wantLogs)
		})
	}
}

func TestNotificationService_GetFCMToken(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	f.transport.EXPECT().RequestPermission(ctx).Return(entity.AuthorizationAuthorized, nil).Once()
	require.True(t, f.service.RequestPermission(ctx))

	f.transport.EXPECT().GetToken(ctx).Return("", errors.New("token service down")).Once()
	assert.Empty(t, f.service.GetFCMToken(ctx))
	assert.Equal(t, entity.StateGranted, f.service.State())

	f.transport.EXPECT().GetToken(ctx).Return("device-token", nil).Once()
	assert.Equal(t, "device-token", f.service.GetFCMToken(ctx))
	assert.Equal(t, entity.StateTokenAcquired, f.service.State())
}

func TestNotificationService_TokenPersistence(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	f.transport.EXPECT().GetToken(ctx).Return("token-a", nil).Once()
	require.True(t, f.service.SaveFCMToken(ctx, "user-1"))

	f.transport.EXPECT().GetToken(ctx).Return("token-b", nil).Once()
	require.True(t, f.service.UpdateFCMToken(ctx, "user-1"))

	user, err := f.users.FindUserByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "token-b", *user.FCMToken)

	require.True(t, f.service.RemoveFCMToken(ctx, "user-1"))

	user, err = f.users.FindUserByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, user.FCMToken)
	assert.Nil(t, user.LastTokenUpdate)

	assert.False(t, f.service.RemoveFCMToken(ctx, "missing-user"))
	assert.Len(t, f.errors.LogsBySeverity(entity.SeverityLow), 1)
}

func TestNotificationService_SaveFCMToken_NoToken(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	f.transport.EXPECT().GetToken(ctx).Return("", nil).Once()

	assert.False(t, f.service.SaveFCMToken(ctx, "user-1"))

	_, err := f.users.FindUserByID(ctx, "user-1")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestNotificationService_SetupNotificationHandlers_Idempotent(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	f.expectHandlers(nil)

	f.service.SetupNotificationHandlers(ctx)
	f.service.SetupNotificationHandlers(ctx)

	assert.Equal(t, entity.StateHandlersAttached, f.service.State())
}

func TestNotificationService_InitialNotificationRoutes(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	f.expectHandlers(&entity.RemoteMessage{
		MessageID: "m-1",
		Data:      map[string]string{"type": "follow", "userId": "u-9"},
	})
	f.navigator.EXPECT().Navigate(ctx, ScreenUserProfile, map[string]string{"userId": "u-9"}).Return(nil).Once()

	f.service.SetupNotificationHandlers(ctx)
}

func TestNotificationService_ForegroundMessageAlerts(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	f.expectHandlers(nil)
	f.service.SetupNotificationHandlers(ctx)

	var alert service.Alert
	f.alerter.EXPECT().Alert(ctx, mock.Anything).
		Run(func(_ context.Context, a service.Alert) { alert = a }).
		Return(nil).Once()

	f.onMessage(ctx, &entity.RemoteMessage{
		MessageID: "m-2",
		Title:     "Bella liked your photo",
		Body:      "Tap to see it",
		Data:      map[string]string{"type": "like", "postId": "p-1"},
	})

	assert.Equal(t, "Bella liked your photo", alert.Title)
	require.Len(t, alert.Actions, 2)
	assert.Equal(t, alertActionOK, alert.Actions[0].Label)
	assert.Nil(t, alert.Actions[0].Handler)
	assert.Equal(t, alertActionView, alert.Actions[1].Label)

	f.navigator.EXPECT().Navigate(ctx, ScreenPostDetail, map[string]string{"postId": "p-1"}).Return(nil).Once()
	alert.Actions[1].Handler(ctx)
}

func TestNotificationService_ForegroundMessageDefaultTitle(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	f.expectHandlers(nil)
	f.service.SetupNotificationHandlers(ctx)

	f.alerter.EXPECT().Alert(ctx, mock.MatchedBy(func(a service.Alert) bool {
		return a.Title == defaultAlertTitle
	})).Return(errors.New("prompt queue full")).Once()

	f.onMessage(ctx, &entity.RemoteMessage{MessageID: "m-3"})

	assert.Len(t, f.errors.Logs(), 1)
}

func TestNotificationService_BackgroundAndOpenedHandlers(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	f.expectHandlers(nil)
	f.service.SetupNotificationHandlers(ctx)

	f.onBackground(ctx, &entity.RemoteMessage{MessageID: "m-4", Data: map[string]string{"type": "reminder"}})
	f.navigator.AssertNotCalled(t, "Navigate", mock.Anything, mock.Anything, mock.Anything)
	f.alerter.AssertNotCalled(t, "Alert", mock.Anything, mock.Anything)

	f.navigator.EXPECT().Navigate(ctx, ScreenChat, map[string]string{"chatId": "c-1"}).Return(nil).Once()
	f.onOpened(ctx, &entity.RemoteMessage{MessageID: "m-5", Data: map[string]string{"type": "message", "chatId": "c-1"}})
}

func TestNotificationService_TokenRefreshPersistsForInitializedUser(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	f.transport.EXPECT().RequestPermission(ctx).Return(entity.AuthorizationAuthorized, nil).Once()
	f.transport.EXPECT().GetToken(ctx).Return("token-a", nil).Once()
	f.expectHandlers(nil)

	f.service.Initialize(ctx, "user-1")
	require.NotNil(t, f.onToken)

	f.onToken(ctx, "token-rotated")

	user, err := f.users.FindUserByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "token-rotated", *user.FCMToken)
}

func TestNotificationService_HandleNotificationNavigation_NavigatorError(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	f.navigator.EXPECT().Navigate(ctx, ScreenHome, map[string]string(nil)).Return(errors.New("no navigator mounted")).Once()

	f.service.HandleNotificationNavigation(ctx, map[string]string{"type": "unknown"})

	logs := f.errors.Logs()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "no navigator mounted")
}

func TestNotificationService_Topics(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	f.transport.EXPECT().SubscribeToTopic(ctx, "dog-walkers").Return(nil).Once()
	f.transport.EXPECT().UnsubscribeFromTopic(ctx, "dog-walkers").Return(nil).Once()
	f.transport.EXPECT().SubscribeToTopic(ctx, "bad topic").Return(errors.New("invalid topic name")).Once()
	f.transport.EXPECT().UnsubscribeFromTopic(ctx, "bad topic").Return(errors.New("invalid topic name")).Once()

	assert.True(t, f.service.SubscribeToTopic(ctx, "dog-walkers"))
	assert.True(t, f.service.UnsubscribeFromTopic(ctx, "dog-walkers"))
	assert.False(t, f.service.SubscribeToTopic(ctx, "bad topic"))
	assert.False(t, f.service.UnsubscribeFromTopic(ctx, "bad topic"))

	assert.Len(t, f.errors.LogsBySeverity(entity.SeverityMedium), 2)
}

func TestNotificationService_SendNotificationToUser_TokenlessUserSkipped(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()
	seedUser(t, f.users, "user-1", "")

	notification, ok := f.service.SendNotificationToUser(ctx, "user-1", &entity.NotificationInput{
		Title: "New follower", Body: "Max followed you", Type: entity.NotificationTypeFollow,
	})

	assert.False(t, ok)
	assert.Nil(t, notification)

	list, err := f.notifications.FindNotificationsByUser(ctx, "user-1", 50)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, f.errors.Logs())
}

func TestNotificationService_SendNotificationToUser_CreatesAndPushes(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()
	seedUser(t, f.users, "user-1", "device-token")

	var pushed *service.PushMessage
	f.sender.EXPECT().Send(ctx, mock.Anything).
		Run(func(_ context.Context, msg *service.PushMessage) { pushed = msg }).
		Return("projects/pawpost/messages/1", nil).Once()

	notification, ok := f.service.SendNotificationToUser(ctx, "user-1", &entity.NotificationInput{
		Title: "New comment",
		Body:  "Luna commented on your post",
		Type:  entity.NotificationTypeComment,
		Data:  map[string]string{"postId": "p-7"},
	})

	require.True(t, ok)
	require.NotNil(t, notification)
	assert.NotEmpty(t, notification.ID)
	assert.False(t, notification.Read)
	assert.Nil(t, notification.ReadAt)
	assert.Equal(t, fixedNow, notification.CreatedAt)

	stored, err := f.notifications.FindNotificationByID(ctx, notification.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationTypeComment, stored.Type)
	assert.Equal(t, "user-1", stored.UserID)

	require.NotNil(t, pushed)
	assert.Equal(t, "device-token", pushed.Token)
	assert.Equal(t, "comment", pushed.Data[DataKeyType])
	assert.Equal(t, "p-7", pushed.Data[DataKeyPostID])
	assert.Equal(t, notification.ID, pushed.Data[DataKeyNotificationID])
}

func TestNotificationService_SendNotificationToUser_PushFailureKeepsRecord(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()
	seedUser(t, f.users, "user-1", "device-token")

	f.sender.EXPECT().Send(ctx, mock.Anything).Return("", errors.New("registration-token-not-registered")).Once()

	notification, ok := f.service.SendNotificationToUser(ctx, "user-1", &entity.NotificationInput{
		Title: "Walk time", Body: "Time for a walk",
	})

	require.True(t, ok)
	assert.Equal(t, entity.NotificationTypeGeneral, notification.Type)
	assert.Len(t, f.service.GetUserNotifications(ctx, "user-1"), 1)
	assert.Len(t, f.errors.Logs(), 1)
}

func TestNotificationService_SendNotificationToUser_Failures(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	_, ok := f.service.SendNotificationToUser(ctx, "user-1", nil)
	assert.False(t, ok)

	logs := f.errors.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, entity.ErrorCodeValidation, logs[0].Code)
}

func TestNotificationService_SendNotificationToUser_MissingUserIsSkipped(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	notification, ok := f.service.SendNotificationToUser(ctx, "missing", &entity.NotificationInput{Title: "t", Body: "b"})

	assert.False(t, ok)
	assert.Nil(t, notification)
	assert.Empty(t, f.service.GetUserNotifications(ctx, "missing"))
	assert.Empty(t, f.errors.Logs())
}

func TestNotificationService_GetUserNotifications_LimitAndOrder(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	for i := range 60 {
		require.NoError(t, f.notifications.CreateNotification(ctx, &entity.Notification{
			UserID:    "user-1",
			Title:     fmt.Sprintf("n-%d", i),
			Type:      entity.NotificationTypeGeneral,
			CreatedAt: fixedNow.Add(time.Duration(i) * time.Minute),
		}))
	}

	list := f.service.GetUserNotifications(ctx, "user-1")

	require.Len(t, list, 50)
	assert.Equal(t, "n-59", list[0].Title)
	assert.Equal(t, "n-10", list[49].Title)
	for i := 1; i < len(list); i++ {
		assert.True(t, list[i-1].CreatedAt.After(list[i].CreatedAt))
	}

	assert.NotNil(t, f.service.GetUserNotifications(ctx, "nobody"))
	assert.Empty(t, f.service.GetUserNotifications(ctx, "nobody"))
}

func TestNotificationService_MarkNotificationAsRead(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	n := &entity.Notification{UserID: "user-1", CreatedAt: fixedNow}
	require.NoError(t, f.notifications.CreateNotification(ctx, n))

	assert.True(t, f.service.MarkNotificationAsRead(ctx, n.ID))
	assert.True(t, f.service.MarkNotificationAsRead(ctx, n.ID))

	stored, err := f.notifications.FindNotificationByID(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, stored.Read)
	assert.Equal(t, fixedNow, *stored.ReadAt)

	assert.False(t, f.service.MarkNotificationAsRead(ctx, "missing"))
	assert.Len(t, f.errors.Logs(), 1)
}
