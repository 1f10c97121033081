package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultWorkerPort         = 8081

	defaultGeneralPurposeCategory = "Generic Product"
	defaultContinentPrefix        = "continent."
	defaultManyLocationThreshold  = 25
	defaultConcurrency            = 8
	defaultClientTimeout          = 30 * time.Second
	defaultBackendRateLimit       = 10
	defaultBackendBurst           = 5
	defaultCasesKey               = "searchTestCases.json"
	defaultSearchLimit            = 50
	defaultGenericIndustryID      = 29
	defaultGlobalLocationID       = 2425
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	// Store selects where locations, products and titles are read and written
	Store *StoreConfig `json:"store" yaml:"store"`

	// Backend configuration for the admin web backend JSON API
	Backend *BackendConfig `json:"backend" yaml:"backend"`

	// Quality configuration for the data-quality checks
	Quality *QualityConfig `json:"quality" yaml:"quality"`

	// Prune configuration for redundant tag pruning
	Prune *PruneConfig `json:"prune" yaml:"prune"`

	// Sink configuration for tag-set submissions
	Sink *SinkConfig `json:"sink" yaml:"sink"`

	// PubSub configuration for command publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Relevance configuration for the search relevance check
	Relevance *RelevanceConfig `json:"relevance" yaml:"relevance"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SecretKeyConfig defines how operator tokens are signed
type SecretKeyConfig struct {
	Access string `json:"access" yaml:"access"`

	// Lifetime of issued access tokens
	AccessTTL time.Duration `json:"accessTtl" yaml:"accessTtl"`
}

// StoreConfig defines the backing store of the reference data
type StoreConfig struct {
	// Provider: "postgres" reads the tables directly, "backend" goes through the admin JSON API
	Provider string `json:"provider" yaml:"provider"`

	// Create or update the postgres tables on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Queries slower than this are logged as warnings; snapshot loads scan whole tables
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// BackendConfig defines how to reach the admin web backend
type BackendConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Session cookie of an operator account
	SessionID string `json:"sessionId" yaml:"sessionId"`

	// CSRF cookie value echoed back in the X-CSRFToken header
	CSRFToken string `json:"csrfToken" yaml:"csrfToken"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Requests per second allowed against the backend, and the burst above it
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	Burst     int     `json:"burst" yaml:"burst"`
}

// QualityConfig defines the data-quality check parameters
type QualityConfig struct {
	// Category of general-purpose products, the only ones checked for redundant tags
	GeneralPurposeCategory string `json:"generalPurposeCategory" yaml:"generalPurposeCategory"`

	// Prefix of continent-level entries in a location's context
	ContinentPrefix string `json:"continentPrefix" yaml:"continentPrefix"`

	// Products tagged with at least this many locations are reported
	ManyLocationThreshold int `json:"manyLocationThreshold" yaml:"manyLocationThreshold"`
}

// PruneConfig defines pruning behaviour
type PruneConfig struct {
	// Number of concurrent submissions when pruning every product
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// SinkConfig defines where pruned tag-sets go
type SinkConfig struct {
	// Mode: "direct" writes through the store, "pubsub" publishes a command for the tag worker
	Mode string `json:"mode" yaml:"mode"`
}

// PubSubConfig defines Pub/Sub configuration for command publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "noop" to drop commands
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of push OIDC tokens (for the tag worker)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// Port the tag worker listens on for push deliveries
	WorkerPort int `json:"workerPort" yaml:"workerPort"`
}

// RelevanceConfig defines the search relevance check
type RelevanceConfig struct {
	// Blob bucket URL holding the test cases, e.g. file:///srv/data or gs://bucket
	CasesURL string `json:"casesUrl" yaml:"casesUrl"`

	// Object key of the test cases JSON file within the bucket
	CasesKey string `json:"casesKey" yaml:"casesKey"`

	// Base URL of the product search API
	SearchBaseURL string `json:"searchBaseUrl" yaml:"searchBaseUrl"`

	// Results requested per search
	Limit int `json:"limit" yaml:"limit"`

	GenericIndustryID int64 `json:"genericIndustryId" yaml:"genericIndustryId"`
	GlobalLocationID  int64 `json:"globalLocationId" yaml:"globalLocationId"`

	// Number of searches run in parallel
	Concurrency int `json:"concurrency" yaml:"concurrency"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills the sections a deployment may leave out.
func applyDefaults(cfg *Config) {
	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Provider == "" {
		cfg.Store.Provider = "postgres"
	}

	if cfg.Quality == nil {
		cfg.Quality = &QualityConfig{}
	}
	if cfg.Quality.GeneralPurposeCategory == "" {
		cfg.Quality.GeneralPurposeCategory = defaultGeneralPurposeCategory
	}
	if cfg.Quality.ContinentPrefix == "" {
		cfg.Quality.ContinentPrefix = defaultContinentPrefix
	}
	if cfg.Quality.ManyLocationThreshold <= 0 {
		cfg.Quality.ManyLocationThreshold = defaultManyLocationThreshold
	}

	if cfg.Prune == nil {
		cfg.Prune = &PruneConfig{}
	}
	if cfg.Prune.Concurrency <= 0 {
		cfg.Prune.Concurrency = defaultConcurrency
	}

	if cfg.Sink == nil {
		cfg.Sink = &SinkConfig{}
	}
	if cfg.Sink.Mode == "" {
		cfg.Sink.Mode = "direct"
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.PubSub.Provider == "" {
		cfg.PubSub.Provider = "noop"
	}
	if cfg.PubSub.WorkerPort <= 0 {
		cfg.PubSub.WorkerPort = defaultWorkerPort
	}

	if cfg.Backend == nil {
		cfg.Backend = &BackendConfig{}
	}
	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = defaultClientTimeout
	}
	if cfg.Backend.RateLimit <= 0 {
		cfg.Backend.RateLimit = defaultBackendRateLimit
	}
	if cfg.Backend.Burst <= 0 {
		cfg.Backend.Burst = defaultBackendBurst
	}

	if cfg.Relevance == nil {
		cfg.Relevance = &RelevanceConfig{}
	}
	if cfg.Relevance.CasesKey == "" {
		cfg.Relevance.CasesKey = defaultCasesKey
	}
	if cfg.Relevance.Limit <= 0 {
		cfg.Relevance.Limit = defaultSearchLimit
	}
	if cfg.Relevance.GenericIndustryID == 0 {
		cfg.Relevance.GenericIndustryID = defaultGenericIndustryID
	}
	if cfg.Relevance.GlobalLocationID == 0 {
		cfg.Relevance.GlobalLocationID = defaultGlobalLocationID
	}
	if cfg.Relevance.Concurrency <= 0 {
		cfg.Relevance.Concurrency = defaultConcurrency
	}
	if cfg.Relevance.Timeout <= 0 {
		cfg.Relevance.Timeout = defaultClientTimeout
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
