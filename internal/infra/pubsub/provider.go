// Package pubsub delivers set-locations commands to the tag worker.
package pubsub

import (
	"context"
	"log/slog"

	"curator/config"
	"curator/internal/domain/constants"
	"curator/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher opens the publisher named by pubsub.provider. Deployments
// whose sink writes directly never publish and get the no-op publisher.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	if params.Config.Sink == nil || params.Config.Sink.Mode != constants.SinkModePubSub {
		return &noopPublisher{logger: params.Logger}, nil
	}

	publisher, err := openPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing command publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil {
		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case "", constants.PubSubProviderNoop:
		logger.Warn("Sink mode is pubsub but no provider is configured, commands will be dropped")

		return &noopPublisher{logger: logger}, nil
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Commands are pushed to the local tag worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishSetLocations(ctx context.Context, cmd *service.SetLocationsCommand) error {
	p.logger.Warn("[NoopPubSub] Command dropped",
		slog.String("command_id", cmd.CommandID),
		slog.Int64("product_id", cmd.ProductID),
		slog.Int("location_count", len(cmd.Locations)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
