package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"curator/config"
	"curator/internal/domain/constants"
	"curator/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCommand() *service.SetLocationsCommand {
	return &service.SetLocationsCommand{
		RequestID: "req-1",
		CommandID: "cmd-1",
		ProductID: 42,
		Locations: []string{"Berlin, Germany"},
		IssuedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		IssuedBy:  "alice",
	}
}

func TestNewPushMessage(t *testing.T) {
	msg, err := NewPushMessage(testCommand(), localSubscription)
	require.NoError(t, err)

	assert.Equal(t, "cmd-1", msg.Message.MessageID)
	assert.Equal(t, "2026-01-02T03:04:05Z", msg.Message.PublishTime)
	assert.Equal(t, map[string]string{
		"command_id": "cmd-1",
		"product_id": "42",
		"request_id": "req-1",
		"issued_by":  "alice",
	}, msg.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	require.NoError(t, err)
	var decoded service.SetLocationsCommand
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *testCommand(), decoded)
}

func TestLocalHTTPPublisher_PublishSetLocations(t *testing.T) {
	var got PushMessage
	var gotRequestID string
	worker := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer worker.Close()

	publisher := NewLocalHTTPPublisher(worker.URL, discardLogger())
	defer publisher.Close()

	require.NoError(t, publisher.PublishSetLocations(context.Background(), testCommand()))
	assert.Equal(t, "req-1", gotRequestID)
	assert.Equal(t, localSubscription, got.Subscription)
	assert.Equal(t, "cmd-1", got.Message.MessageID)
}

func TestLocalHTTPPublisher_WorkerRejects(t *testing.T) {
	worker := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer worker.Close()

	err := NewLocalHTTPPublisher(worker.URL, discardLogger()).PublishSetLocations(context.Background(), testCommand())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "product 42")
	assert.Contains(t, err.Error(), "answered 400")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		sink     *config.SinkConfig
		pubsub   *config.PubSubConfig
		wantType any
		wantErr  string
	}{
		{
			name:     "direct sink never publishes",
			sink:     &config.SinkConfig{Mode: constants.SinkModeDirect},
			pubsub:   &config.PubSubConfig{Provider: constants.PubSubProviderGoogle},
			wantType: &noopPublisher{},
		},
		{
			name:     "pubsub sink without provider",
			sink:     &config.SinkConfig{Mode: constants.SinkModePubSub},
			pubsub:   &config.PubSubConfig{Provider: constants.PubSubProviderNoop},
			wantType: &noopPublisher{},
		},
		{
			name:     "local provider",
			sink:     &config.SinkConfig{Mode: constants.SinkModePubSub},
			pubsub:   &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"},
			wantType: &localHTTPPublisher{},
		},
		{
			name:    "local provider without endpoint",
			sink:    &config.SinkConfig{Mode: constants.SinkModePubSub},
			pubsub:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "localEndpoint",
		},
		{
			name:    "google provider without topic",
			sink:    &config.SinkConfig{Mode: constants.SinkModePubSub},
			pubsub:  &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"},
			wantErr: "topicId",
		},
		{
			name:    "unknown provider",
			sink:    &config.SinkConfig{Mode: constants.SinkModePubSub},
			pubsub:  &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider: kafka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{Sink: tt.sink, PubSub: tt.pubsub},
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, publisher)
		})
	}
}
