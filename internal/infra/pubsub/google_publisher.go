package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"curator/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes commands to a Google Cloud Pub/Sub topic.
// Messages are ordered per product so the latest tag-set is applied last.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicPath string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and checks that topicID exists.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", topicPath)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Commands are published to Google Pub/Sub", slog.String("topic", topicPath))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		topicPath: topicPath,
		logger:    logger,
	}, nil
}

// PublishSetLocations publishes cmd and waits for the server to accept it.
func (p *googlePubSubPublisher) PublishSetLocations(ctx context.Context, cmd *service.SetLocationsCommand) error {
	msg, err := newOrderedMessage(cmd)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		// An ordering key stays paused after a failure until resumed
		p.publisher.ResumePublish(msg.OrderingKey)

		return errors.Wrapf(err, "publish set-locations for product %d", cmd.ProductID)
	}

	p.logger.Debug("[GooglePubSub] Command published",
		slog.String("command_id", cmd.CommandID),
		slog.Int64("product_id", cmd.ProductID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.Wrapf(p.client.Close(), "close pubsub client for %s", p.topicPath)
}

func newOrderedMessage(cmd *service.SetLocationsCommand) (*pubsub.Message, error) {
	data, err := json.Marshal(cmd)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &pubsub.Message{
		Data:        data,
		Attributes:  commandAttributes(cmd),
		OrderingKey: strconv.FormatInt(cmd.ProductID, 10),
	}, nil
}

// commandAttributes carries ids outside the payload for filtering and tracing.
func commandAttributes(cmd *service.SetLocationsCommand) map[string]string {
	attributes := map[string]string{
		"command_id": cmd.CommandID,
		"product_id": strconv.FormatInt(cmd.ProductID, 10),
	}
	if cmd.RequestID != "" {
		attributes["request_id"] = cmd.RequestID
	}
	if cmd.IssuedBy != "" {
		attributes["issued_by"] = cmd.IssuedBy
	}

	return attributes
}
