package impl

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"pawpost/config"
	deliverycontext "pawpost/internal/delivery/context"
	"pawpost/internal/domain/entity"
	domainerrors "pawpost/internal/domain/errors"
	"pawpost/internal/domain/repository"
	"pawpost/internal/domain/service"
	"pawpost/internal/errors"
	"pawpost/internal/usecase"

	"go.uber.org/fx"
)

const (
	notificationComponent = "NotificationService"

	alertActionOK   = "OK"
	alertActionView = "View"

	defaultAlertTitle = "New notification"
)

// NotificationServiceParams holds dependencies for the notification service, injected by Fx
type NotificationServiceParams struct {
	fx.In

	Config           *config.Config
	Logger           *slog.Logger
	Transport        service.PushTransport
	Sender           service.PushSender `optional:"true"`
	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	Navigator        service.Navigator
	Alerter          service.Alerter
	Errors           usecase.ErrorUsecase
}

type notificationService struct {
	transport        service.PushTransport
	sender           service.PushSender
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	navigator        service.Navigator
	alerter          service.Alerter
	errors           usecase.ErrorUsecase
	logger           *slog.Logger

	historyLimit int
	topics       []string
	now          func() time.Time

	mu               sync.Mutex
	state            entity.NotificationState
	userID           string
	handlersAttached bool
}

// NewNotificationService creates the process-wide notification service
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	historyLimit := config.DefaultHistoryLimit
	var topics []string
	if cfg := params.Config.Notification; cfg != nil {
		if cfg.HistoryLimit > 0 {
			historyLimit = cfg.HistoryLimit
		}
		topics = cfg.Topics
	}

	return &notificationService{
		transport:        params.Transport,
		sender:           params.Sender,
		userRepo:         params.UserRepo,
		notificationRepo: params.NotificationRepo,
		navigator:        params.Navigator,
		alerter:          params.Alerter,
		errors:           params.Errors,
		logger:           params.Logger,
		historyLimit:     historyLimit,
		topics:           topics,
		now:              time.Now,
		state:            entity.StateUninitialized,
	}
}

// Initialize runs permission, token and handler setup in order.
// Permission denial stops the sequence; a failed token step does not.
func (s *notificationService) Initialize(ctx context.Context, userID string) {
	logger := s.loggerFor(ctx)

	if !s.RequestPermission(ctx) {
		logger.Info("[Notification] Push permission not granted, notifications disabled",
			slog.String("user_id", userID),
		)

		return
	}

	s.mu.Lock()
	s.userID = userID
	s.mu.Unlock()

	if userID != "" && !s.SaveFCMToken(ctx, userID) {
		logger.Warn("[Notification] Device token not stored, continuing with handler setup",
			slog.String("user_id", userID),
		)
	}

	s.SetupNotificationHandlers(ctx)

	for _, topic := range s.topics {
		s.SubscribeToTopic(ctx, topic)
	}

	logger.Info("[Notification] Notification service initialized",
		slog.String("user_id", userID),
		slog.String("state", string(s.State())),
	)
}

// State returns the current permission/token lifecycle state
func (s *notificationService) State() entity.NotificationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// RequestPermission reports whether push is authorized or provisionally authorized
func (s *notificationService) RequestPermission(ctx context.Context) bool {
	s.mu.Lock()
	if s.state != entity.StateTokenAcquired && s.state != entity.StateHandlersAttached {
		s.state = entity.StatePermissionRequested
	}
	s.mu.Unlock()

	status, err := s.transport.RequestPermission(ctx)
	if err != nil {
		s.fail(ctx, err, "requestPermission", "")
		s.setDenied()

		return false
	}

	s.loggerFor(ctx).Debug("[Notification] Authorization status", slog.String("status", string(status)))

	if !status.Allowed() {
		s.setDenied()

		return false
	}

	s.mu.Lock()
	if s.state == entity.StatePermissionRequested {
		s.state = entity.StateGranted
	}
	s.mu.Unlock()

	return true
}

func (s *notificationService) setDenied() {
	s.mu.Lock()
	s.state = entity.StateDenied
	s.mu.Unlock()
}

// GetFCMToken returns the device token, or "" when it cannot be retrieved
func (s *notificationService) GetFCMToken(ctx context.Context) string {
	token, err := s.transport.GetToken(ctx)
	if err != nil {
		s.fail(ctx, err, "getFCMToken", "")

		return ""
	}

	s.mu.Lock()
	if s.state == entity.StateGranted {
		s.state = entity.StateTokenAcquired
	}
	s.mu.Unlock()

	return token
}

// SaveFCMToken stores the current device token on the user document
func (s *notificationService) SaveFCMToken(ctx context.Context, userID string) bool {
	return s.storeToken(ctx, userID, "saveFCMTokenToFirestore")
}

// UpdateFCMToken refreshes the device token stored on the user document
func (s *notificationService) UpdateFCMToken(ctx context.Context, userID string) bool {
	return s.storeToken(ctx, userID, "updateFCMToken")
}

func (s *notificationService) storeToken(ctx context.Context, userID, function string) bool {
	token := s.GetFCMToken(ctx)
	if token == "" {
		return false
	}

	return s.persistToken(ctx, userID, token, function)
}

func (s *notificationService) persistToken(ctx context.Context, userID, token, function string) bool {
	if err := s.userRepo.SetFCMToken(ctx, userID, token, s.now()); err != nil {
		s.fail(ctx, err, function, userID)

		return false
	}

	s.loggerFor(ctx).Info("[Notification] Device token stored", slog.String("user_id", userID))

	return true
}

// RemoveFCMToken deletes the device token fields from the user document
func (s *notificationService) RemoveFCMToken(ctx context.Context, userID string) bool {
	if err := s.userRepo.RemoveFCMToken(ctx, userID); err != nil {
		s.fail(ctx, err, "removeFCMToken", userID)

		return false
	}

	s.loggerFor(ctx).Info("[Notification] Device token removed", slog.String("user_id", userID))

	return true
}

// SetupNotificationHandlers registers the inbound handlers once and routes a
// notification that launched the app from cold start
func (s *notificationService) SetupNotificationHandlers(ctx context.Context) {
	s.mu.Lock()
	if s.handlersAttached {
		// handlers outlive a revoked permission; a later grant returns to the steady state
		if s.state == entity.StateGranted || s.state == entity.StateTokenAcquired {
			s.state = entity.StateHandlersAttached
		}
		s.mu.Unlock()

		return
	}
	s.handlersAttached = true
	s.state = entity.StateHandlersAttached
	s.mu.Unlock()

	s.transport.OnMessage(s.onForegroundMessage)
	s.transport.SetBackgroundMessageHandler(s.onBackgroundMessage)
	s.transport.OnNotificationOpenedApp(s.onNotificationOpened)
	s.transport.OnTokenRefresh(s.onTokenRefresh)

	initial, err := s.transport.GetInitialNotification(ctx)
	if err != nil {
		s.fail(ctx, err, "getInitialNotification", "")

		return
	}

	if initial != nil {
		s.loggerFor(ctx).Info("[Notification] App opened from notification",
			slog.String("message_id", initial.MessageID),
		)
		s.HandleNotificationNavigation(ctx, initial.Data)
	}
}

func (s *notificationService) onForegroundMessage(ctx context.Context, msg *entity.RemoteMessage) {
	s.loggerFor(ctx).Info("[Notification] Foreground message received",
		slog.String("message_id", msg.MessageID),
		slog.String("type", msg.Data[DataKeyType]),
	)

	title := msg.Title
	if title == "" {
		title = defaultAlertTitle
	}

	data := maps.Clone(msg.Data)
	alert := service.Alert{
		Title: title,
		Body:  msg.Body,
		Actions: []service.AlertAction{
			{Label: alertActionOK},
			{
				Label: alertActionView,
				Handler: func(ctx context.Context) {
					s.HandleNotificationNavigation(ctx, data)
				},
			},
		},
	}

	if err := s.alerter.Alert(ctx, alert); err != nil {
		s.fail(ctx, err, "onMessage", "")
	}
}

func (s *notificationService) onBackgroundMessage(ctx context.Context, msg *entity.RemoteMessage) {
	s.loggerFor(ctx).Info("[Notification] Background message received",
		slog.String("message_id", msg.MessageID),
		slog.String("type", msg.Data[DataKeyType]),
	)
}

func (s *notificationService) onNotificationOpened(ctx context.Context, msg *entity.RemoteMessage) {
	s.loggerFor(ctx).Info("[Notification] Notification opened app",
		slog.String("message_id", msg.MessageID),
	)
	s.HandleNotificationNavigation(ctx, msg.Data)
}

func (s *notificationService) onTokenRefresh(ctx context.Context, token string) {
	s.mu.Lock()
	userID := s.userID
	s.mu.Unlock()

	if userID == "" || token == "" {
		return
	}

	s.persistToken(ctx, userID, token, "onTokenRefresh")
}

// HandleNotificationNavigation routes a notification payload to its screen
func (s *notificationService) HandleNotificationNavigation(ctx context.Context, data map[string]string) {
	screen, params := resolveRoute(data)

	s.loggerFor(ctx).Info("[Notification] Navigating from notification",
		slog.String("type", data[DataKeyType]),
		slog.String("screen", screen),
	)

	if err := s.navigator.Navigate(ctx, screen, params); err != nil {
		s.fail(ctx, err, "handleNotificationNavigation", "")
	}
}

// SubscribeToTopic subscribes this installation to a topic
func (s *notificationService) SubscribeToTopic(ctx context.Context, topic string) bool {
	if err := s.transport.SubscribeToTopic(ctx, topic); err != nil {
		s.fail(ctx, err, "subscribeToTopic", "")

		return false
	}

	s.loggerFor(ctx).Info("[Notification] Subscribed to topic", slog.String("topic", topic))

	return true
}

// UnsubscribeFromTopic unsubscribes this installation from a topic
func (s *notificationService) UnsubscribeFromTopic(ctx context.Context, topic string) bool {
	if err := s.transport.UnsubscribeFromTopic(ctx, topic); err != nil {
		s.fail(ctx, err, "unsubscribeFromTopic", "")

		return false
	}

	s.loggerFor(ctx).Info("[Notification] Unsubscribed from topic", slog.String("topic", topic))

	return true
}

// SendNotificationToUser inserts a notification only when the user has a device token on file
func (s *notificationService) SendNotificationToUser(ctx context.Context, userID string, input *entity.NotificationInput) (*entity.Notification, bool) {
	if input == nil {
		s.fail(ctx, domainerrors.Validation("sendNotificationToUser", errors.New("notification input is required")), "sendNotificationToUser", userID)

		return nil, false
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.fail(ctx, err, "sendNotificationToUser", userID)

		return nil, false
	}

	// a user without a document has no token on file either
	if user == nil || !user.HasToken() {
		s.loggerFor(ctx).Info("[Notification] User has no device token, notification skipped",
			slog.String("user_id", userID),
		)

		return nil, false
	}

	notificationType := input.Type
	if notificationType == "" {
		notificationType = entity.NotificationTypeGeneral
	}

	notification := &entity.Notification{
		UserID:    userID,
		Title:     input.Title,
		Body:      input.Body,
		Type:      notificationType,
		Data:      maps.Clone(input.Data),
		Read:      false,
		CreatedAt: s.now(),
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		s.fail(ctx, err, "sendNotificationToUser", userID)

		return nil, false
	}

	s.deliverPush(ctx, *user.FCMToken, notification)

	return notification, true
}

// deliverPush sends a best-effort push for a stored notification
func (s *notificationService) deliverPush(ctx context.Context, token string, notification *entity.Notification) {
	if s.sender == nil {
		return
	}

	data := make(map[string]string, len(notification.Data)+2)
	maps.Copy(data, notification.Data)
	data[DataKeyType] = string(notification.Type)
	data[DataKeyNotificationID] = notification.ID

	messageID, err := s.sender.Send(ctx, &service.PushMessage{
		Token: token,
		Title: notification.Title,
		Body:  notification.Body,
		Data:  data,
	})
	if err != nil {
		s.fail(ctx, err, "deliverPush", notification.UserID)

		return
	}

	s.loggerFor(ctx).Debug("[Notification] Push delivered",
		slog.String("notification_id", notification.ID),
		slog.String("message_id", messageID),
	)
}

// MarkNotificationAsRead sets read and readAt on a notification
func (s *notificationService) MarkNotificationAsRead(ctx context.Context, notificationID string) bool {
	if err := s.notificationRepo.MarkAsRead(ctx, notificationID, s.now()); err != nil {
		s.fail(ctx, err, "markNotificationAsRead", "")

		return false
	}

	return true
}

// GetUserNotifications returns the newest notifications of a user
func (s *notificationService) GetUserNotifications(ctx context.Context, userID string) []*entity.Notification {
	notifications, err := s.notificationRepo.FindNotificationsByUser(ctx, userID, s.historyLimit)
	if err != nil {
		s.fail(ctx, err, "getUserNotifications", userID)

		return []*entity.Notification{}
	}

	if len(notifications) > s.historyLimit {
		notifications = notifications[:s.historyLimit]
	}

	return notifications
}

func (s *notificationService) fail(ctx context.Context, err error, function, userID string) {
	s.errors.HandleError(ctx, err, entity.ErrorContext{
		Component: notificationComponent,
		Function:  function,
		UserID:    userID,
	})
}

func (s *notificationService) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}
