package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"pawpost/config"
	deliverycontext "pawpost/internal/delivery/context"
	"pawpost/internal/domain/entity"
	"pawpost/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingSink struct {
	mu       sync.Mutex
	messages []*entity.RemoteMessage
	ctxs     []context.Context
}

func (s *recordingSink) Deliver(ctx context.Context, msg *entity.RemoteMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, msg)
	s.ctxs = append(s.ctxs, ctx)
}

func TestPushEnvelope_RemoteMessage(t *testing.T) {
	publishedAt := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
	payload := []byte(`{"title":"New follower","body":"Max followed you","data":{"type":"follow","userId":"u-1"}}`)

	env := NewPushEnvelope("projects/p/subscriptions/s", "msg-1", payload, nil, publishedAt)

	msg, err := env.RemoteMessage()
	require.NoError(t, err)
	assert.Equal(t, "msg-1", msg.MessageID)
	assert.Equal(t, "New follower", msg.Title)
	assert.Equal(t, "follow", msg.Data["type"])
	assert.Equal(t, publishedAt, msg.SentAt)
}

func TestPushEnvelope_RemoteMessage_Malformed(t *testing.T) {
	env := &PushEnvelope{}
	env.Message.Data = "%%%"

	_, err := env.RemoteMessage()
	require.Error(t, err)

	env = NewPushEnvelope("s", "id", []byte("not json"), nil, time.Now())
	_, err = env.RemoteMessage()
	require.Error(t, err)
}

func TestSubscriber_Handle(t *testing.T) {
	sink := &recordingSink{}
	s := &Subscriber{sink: sink, logger: testLogger()}

	s.handle(context.Background(), "m-1", []byte(`{"body":"hi","data":{"type":"message","chatId":"c-1"}}`),
		map[string]string{AttrRequestID: "req-1"}, time.Now())
	s.handle(context.Background(), "m-2", []byte(`{`), nil, time.Now())

	require.Len(t, sink.messages, 1)
	assert.Equal(t, "m-1", sink.messages[0].MessageID)
	assert.Equal(t, "c-1", sink.messages[0].Data["chatId"])
	assert.Equal(t, "req-1", deliverycontext.GetRequestIDFromContext(sink.ctxs[0]))
}

func TestLocalHTTPReporter_ReportCritical(t *testing.T) {
	var received PushEnvelope
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	reporter := NewLocalHTTPReporter(srv.URL, testLogger())
	report := &service.CriticalErrorReport{
		RequestID:   "req-9",
		ServiceName: "pawpost",
		Record: entity.ErrorRecord{
			Message:  "Firebase permission denied",
			Code:     entity.ErrorCodeFirebase,
			Severity: entity.SeverityCritical,
		},
		Context: entity.ErrorContext{Component: "Feed"},
	}

	require.NoError(t, reporter.ReportCritical(context.Background(), report))
	assert.Equal(t, "req-9", requestID)
	assert.Equal(t, localReportSubscription, received.Subscription)
	assert.Equal(t, "FIREBASE_ERROR", received.Message.Attributes["code"])
	assert.Equal(t, "Feed", received.Message.Attributes["component"])
	assert.NotEmpty(t, received.Message.Data)
}

func TestLocalHTTPReporter_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	reporter := NewLocalHTTPReporter(srv.URL, testLogger())

	err := reporter.ReportCritical(context.Background(), &service.CriticalErrorReport{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestNewErrorReporter(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		noop    bool
	}{
		{name: "not configured", cfg: nil, noop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, noop: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: config.PubSubProviderGoogle}, noop: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: config.PubSubProviderLocal, LocalEndpoint: "http://localhost:9/report"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: config.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: config.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			reporter, err := NewErrorReporter(ReporterParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: testLogger(),
			})

			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			_, isNoop := reporter.(*noopReporter)
			assert.Equal(t, tt.noop, isNoop)
		})
	}
}

func TestNewSubscriber_NotConfigured(t *testing.T) {
	s, err := NewSubscriber(SubscriberParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: config.PubSubProviderLocal}},
		Logger: testLogger(),
		Sink:   &recordingSink{},
	})

	require.NoError(t, err)
	assert.Nil(t, s)
}
