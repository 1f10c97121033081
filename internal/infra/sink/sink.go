// Package sink provides the tag-update sink that receives pruned product tag-sets.
package sink

import (
	"context"
	"log/slog"
	"time"

	"curator/config"
	deliverycontext "curator/internal/delivery/context"
	"curator/internal/domain/constants"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// directSink writes tag-sets through the product repository.
type directSink struct {
	products repository.ProductRepository
}

// NewDirectSink returns a sink that writes straight to the store.
func NewDirectSink(products repository.ProductRepository) service.TagUpdateSink {
	return &directSink{products: products}
}

func (s *directSink) SetLocations(ctx context.Context, productID int64, locationNames []string) error {
	return errors.Wrapf(s.products.SetProductLocations(ctx, productID, locationNames),
		"set locations of product %d", productID)
}

// publishingSink hands tag-sets to the tag worker as commands.
type publishingSink struct {
	publisher service.EventPublisher
	now       func() time.Time
}

// NewPublishingSink returns a sink that publishes set-locations commands.
func NewPublishingSink(publisher service.EventPublisher) service.TagUpdateSink {
	return &publishingSink{publisher: publisher, now: time.Now}
}

func (s *publishingSink) SetLocations(ctx context.Context, productID int64, locationNames []string) error {
	cmd := &service.SetLocationsCommand{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		CommandID: uuid.NewString(),
		ProductID: productID,
		Locations: locationNames,
		IssuedAt:  s.now().UTC(),
		IssuedBy:  deliverycontext.GetOperator(ctx),
	}

	return s.publisher.PublishSetLocations(ctx, cmd)
}

// Params holds dependencies for the sink, injected by Fx
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Products  repository.ProductRepository
	Publisher service.EventPublisher `optional:"true"`
}

// New selects the sink configured by sink.mode.
func New(params Params) (service.TagUpdateSink, error) {
	mode := constants.SinkModeDirect
	if params.Config.Sink != nil && params.Config.Sink.Mode != "" {
		mode = params.Config.Sink.Mode
	}

	switch mode {
	case constants.SinkModeDirect:
		params.Logger.Info("Tag updates are written directly to the store")

		return NewDirectSink(params.Products), nil

	case constants.SinkModePubSub:
		if params.Publisher == nil {
			return nil, errors.New("pubsub sink mode requires an event publisher")
		}
		params.Logger.Info("Tag updates are published to the tag worker")

		return NewPublishingSink(params.Publisher), nil

	default:
		return nil, errors.Errorf("unknown sink mode: %s", mode)
	}
}
