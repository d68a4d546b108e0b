package push

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pawpost/internal/domain/entity"
	"pawpost/internal/domain/service"
	mockSvc "pawpost/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBridge(sender service.PushSender) *DeviceBridge {
	return NewDeviceBridge(BridgeParams{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sender: sender,
	})
}

func TestDeviceBridge_PermissionAndToken(t *testing.T) {
	ctx := context.Background()
	b := newTestBridge(nil)

	status, err := b.RequestPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.AuthorizationNotDetermined, status)

	_, err = b.GetToken(ctx)
	assert.True(t, errors.Is(err, ErrTokenUnavailable))

	b.SetPermission(entity.AuthorizationProvisional)
	b.SetToken(ctx, "token-a")

	status, _ = b.RequestPermission(ctx)
	assert.Equal(t, entity.AuthorizationProvisional, status)

	token, err := b.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-a", token)
}

func TestDeviceBridge_TokenRefresh(t *testing.T) {
	ctx := context.Background()
	b := newTestBridge(nil)

	var refreshed []string
	b.OnTokenRefresh(func(_ context.Context, token string) { refreshed = append(refreshed, token) })

	b.SetToken(ctx, "token-a")
	b.SetToken(ctx, "token-a")
	b.SetToken(ctx, "")
	b.SetToken(ctx, "token-b")

	assert.Equal(t, []string{"token-a", "token-b"}, refreshed)
}

func TestDeviceBridge_DeliverByAppState(t *testing.T) {
	ctx := context.Background()
	b := newTestBridge(nil)

	var foreground, background, opened []string
	b.OnMessage(func(_ context.Context, m *entity.RemoteMessage) { foreground = append(foreground, m.MessageID) })
	b.SetBackgroundMessageHandler(func(_ context.Context, m *entity.RemoteMessage) { background = append(background, m.MessageID) })
	b.OnNotificationOpenedApp(func(_ context.Context, m *entity.RemoteMessage) { opened = append(opened, m.MessageID) })

	b.Deliver(ctx, &entity.RemoteMessage{MessageID: "m-1"})
	b.SetForeground(false)
	b.Deliver(ctx, &entity.RemoteMessage{MessageID: "m-2"})
	b.Opened(ctx, &entity.RemoteMessage{MessageID: "m-3"})

	assert.Equal(t, []string{"m-1"}, foreground)
	assert.Equal(t, []string{"m-2"}, background)
	assert.Equal(t, []string{"m-3"}, opened)
}

func TestDeviceBridge_DeliverWithoutHandler(t *testing.T) {
	b := newTestBridge(nil)

	assert.NotPanics(t, func() {
		b.Deliver(context.Background(), &entity.RemoteMessage{MessageID: "m-1"})
	})
}

func TestDeviceBridge_InitialNotificationIsOneShot(t *testing.T) {
	ctx := context.Background()
	b := newTestBridge(nil)
	b.SetLaunchNotification(&entity.RemoteMessage{MessageID: "launch"})

	msg, err := b.GetInitialNotification(ctx)
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "launch", msg.MessageID)

	msg, err = b.GetInitialNotification(ctx)
	require.NoError(t, err)
	assert.Nil(t, msg)
}

func TestDeviceBridge_Topics(t *testing.T) {
	ctx := context.Background()
	sender := mockSvc.NewMockPushSender(t)
	b := newTestBridge(sender)

	err := b.SubscribeToTopic(ctx, "cat-lovers")
	assert.True(t, errors.Is(err, ErrTokenUnavailable))

	b.SetToken(ctx, "token-a")
	sender.EXPECT().SubscribeToTopic(ctx, []string{"token-a"}, "cat-lovers").Return(nil).Once()
	sender.EXPECT().SubscribeToTopic(ctx, []string{"token-a"}, "dog-walkers").Return(nil).Once()
	sender.EXPECT().UnsubscribeFromTopic(ctx, []string{"token-a"}, "cat-lovers").Return(nil).Once()

	require.NoError(t, b.SubscribeToTopic(ctx, "dog-walkers"))
	require.NoError(t, b.SubscribeToTopic(ctx, "cat-lovers"))
	assert.Equal(t, []string{"cat-lovers", "dog-walkers"}, b.Topics())

	require.NoError(t, b.UnsubscribeFromTopic(ctx, "cat-lovers"))
	assert.Equal(t, []string{"dog-walkers"}, b.Topics())

	assert.Error(t, b.SubscribeToTopic(ctx, "not a topic!"))
}

func TestDeviceBridge_TopicSenderFailure(t *testing.T) {
	ctx := context.Background()
	sender := mockSvc.NewMockPushSender(t)
	b := newTestBridge(sender)
	b.SetToken(ctx, "token-a")

	sender.EXPECT().SubscribeToTopic(ctx, []string{"token-a"}, "news").Return(errors.New("firebase unavailable")).Once()

	require.Error(t, b.SubscribeToTopic(ctx, "news"))
	assert.Empty(t, b.Topics())
}

func TestDeviceBridge_TopicsWithoutSender(t *testing.T) {
	b := newTestBridge(nil)

	require.NoError(t, b.SubscribeToTopic(context.Background(), "news"))
	assert.Equal(t, []string{"news"}, b.Topics())
}
