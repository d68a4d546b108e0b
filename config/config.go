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
	defaultPath = "."

	// DefaultHistoryLimit caps the notifications returned for one user
	DefaultHistoryLimit = 50
	// DefaultErrorLogCapacity caps the in-memory error log
	DefaultErrorLogCapacity = 100

	defaultMaxRequestBodySize = "100KB"
)

// Store providers
const (
	StoreProviderMemory    = "memory"
	StoreProviderFirestore = "firestore"
	StoreProviderPostgres  = "postgres"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// EnvDevelop is the env name that disables push endpoint authentication
const EnvDevelop = "develop"

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Store selects the document backend for users and notifications
	Store *StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration for push messaging and Firestore
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for inbound push messages and critical error reports
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Notification configuration for the notification pipeline
	Notification *NotificationConfig `json:"notification" yaml:"notification"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines which persistence backend holds the users and notifications collections
type StoreConfig struct {
	// Provider is one of "memory", "firestore" or "postgres"
	Provider string `json:"provider" yaml:"provider"`
}

// FirebaseConfig defines Firebase configuration for push notifications and documents
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Topic receiving critical error reports
	TopicID string `json:"topicId" yaml:"topicId"`

	// Subscription delivering inbound push messages to this installation (google provider)
	SubscriptionID string `json:"subscriptionId" yaml:"subscriptionId"`

	// Local HTTP endpoint receiving critical error reports (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// NotificationConfig tunes the notification and error pipelines
type NotificationConfig struct {
	// Maximum number of notifications returned for a user
	HistoryLimit int `json:"historyLimit" yaml:"historyLimit"`

	// Capacity of the in-memory error log
	ErrorLogCapacity int `json:"errorLogCapacity" yaml:"errorLogCapacity"`

	// Topics subscribed to once handlers are attached
	Topics []string `json:"topics" yaml:"topics"`
}

// LoadWithEnv reads <name>.yaml from the first directory that has it, then lets
// environment variables override any key the file declares.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := locate(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	declared := k.Raw()
	overrides := env.Provider(".", env.Opt{
		// POSTGRES_SSLMODE resolves to postgres.sslMode when the file declares it
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, declared), value
		},
	})
	if err := k.Load(overrides, nil); err != nil {
		return nil, errors.Wrap(err, "load env overrides")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

func locate(filename string, dirs []string) (string, error) {
	candidates := []string{defaultPath}
	if len(dirs) > 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(pwd, dir))
		}
	}

	for _, dir := range candidates {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", errors.Errorf("%s not found in %v", filename, candidates)
}

func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		// env keys arrive lower-cased
		MatchName: strings.EqualFold,
	}
}

// New loads config.yaml, fills defaults and rejects unknown providers
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports provider settings that cannot be wired
func (c *Config) Validate() error {
	switch c.Store.Provider {
	case StoreProviderMemory:
	case StoreProviderFirestore:
		if c.Firebase == nil || c.Firebase.ProjectID == "" {
			return errors.New("store provider firestore requires firebase.projectId")
		}
	case StoreProviderPostgres:
		if c.Postgres == nil {
			return errors.New("store provider postgres requires a postgres section")
		}
	default:
		return errors.Errorf("unknown store provider %q", c.Store.Provider)
	}

	if c.PubSub != nil {
		switch c.PubSub.Provider {
		case "", PubSubProviderLocal, PubSubProviderGoogle:
		default:
			return errors.Errorf("unknown pubsub provider %q", c.PubSub.Provider)
		}
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store == nil || strings.TrimSpace(cfg.Store.Provider) == "" {
		cfg.Store = &StoreConfig{Provider: StoreProviderMemory}
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.HistoryLimit <= 0 {
		cfg.Notification.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.Notification.ErrorLogCapacity <= 0 {
		cfg.Notification.ErrorLogCapacity = DefaultErrorLogCapacity
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
