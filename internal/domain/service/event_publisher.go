package service

import (
	"context"
	"time"
)

// SetLocationsCommand asks the tag worker to replace a product's locations.
type SetLocationsCommand struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	CommandID string    `json:"command_id"`
	ProductID int64     `json:"product_id"`
	Locations []string  `json:"locations"` // Canonical names of the pruned tag-set
	IssuedAt  time.Time `json:"issued_at"`
	IssuedBy  string    `json:"issued_by,omitempty"` // Operator whose request produced the command
}

// EventPublisher defines the interface for publishing commands to a message queue
type EventPublisher interface {
	// PublishSetLocations publishes a set-locations command for async processing
	PublishSetLocations(ctx context.Context, cmd *SetLocationsCommand) error

	// Close releases any resources held by the publisher
	Close() error
}
