package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pawpost/config"
	deliverycontext "pawpost/internal/delivery/context"
	"pawpost/internal/errors"
	"pawpost/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler receives inbound push messages posted by a Pub/Sub push subscription
type PushHandler struct {
	verifyPushAuth bool
	verify         func(req *http.Request) error
	sink           pubsub.MessageSink
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Sink   pubsub.MessageSink
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; local and develop setups post unsigned envelopes
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == config.PubSubProviderGoogle &&
		params.Config.Env.Env != config.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verify:         verifyPubSubToken,
		sink:           params.Sink,
		logger:         params.Logger,
	}
}

// HandlePush decodes one push envelope and hands the message to the device bridge
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Push] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Push] Failed to parse push envelope", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	msg, err := envelope.RemoteMessage()
	if err != nil {
		h.logger.Error("[Push] Failed to decode push message",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &envelope)
	ctx, reqLogger := deliverycontext.WithRequest(ctx, h.logger, requestID)

	reqLogger.Info("[Push] Delivering push message",
		slog.String("message_id", msg.MessageID),
		slog.String("subscription", envelope.Subscription),
	)

	h.sink.Deliver(ctx, msg)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the request header, then a new UUID
func extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope) string {
	if requestID := envelope.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
