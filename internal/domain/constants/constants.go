// Package constants holds configuration values compared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
	PubSubProviderNoop   = "noop"
)

// Store providers select where locations, products and titles live.
const (
	StoreProviderPostgres = "postgres"
	StoreProviderBackend  = "backend"
)

// Sink modes select how pruned tag-sets are submitted.
const (
	SinkModeDirect = "direct"
	SinkModePubSub = "pubsub"
)
