package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "curator/internal/delivery/context"
	"curator/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/set-locations-sub"
	localPushTimeout  = 30 * time.Second
)

// PushMessage is the envelope Pub/Sub push delivers to HTTP endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps a command in a push envelope.
func NewPushMessage(cmd *service.SetLocationsCommand, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(cmd)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	publishTime := cmd.IssuedAt
	if publishTime.IsZero() {
		publishTime = time.Now()
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = commandAttributes(cmd)
	msg.Message.MessageID = cmd.CommandID
	msg.Message.PublishTime = publishTime.UTC().Format(time.RFC3339)

	return msg, nil
}

// localHTTPPublisher stands in for Pub/Sub during development by posting
// push envelopes straight to the tag worker.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher creates a publisher that pushes to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
	}
}

func (p *localHTTPPublisher) PublishSetLocations(ctx context.Context, cmd *service.SetLocationsCommand) error {
	pushMsg, err := NewPushMessage(cmd, localSubscription)
	if err != nil {
		return err
	}

	if err := p.post(ctx, pushMsg, cmd.RequestID); err != nil {
		return errors.Wrapf(err, "push set-locations for product %d", cmd.ProductID)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("[LocalPubSub] Command delivered",
		slog.String("command_id", cmd.CommandID),
		slog.Int64("product_id", cmd.ProductID),
	)

	return nil
}

func (p *localHTTPPublisher) post(ctx context.Context, pushMsg *PushMessage, requestID string) error {
	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("worker at %s answered %d", p.endpoint, resp.StatusCode)
	}

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
