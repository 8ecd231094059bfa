package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
)

// Drivers and providers selectable in the configuration.
const (
	DriverFirestore = "firestore"
	DriverFirebase  = "firebase"
	DriverLocal     = "local"
	DriverMemory    = "memory"
	DriverSQLite    = "sqlite"
	DriverRedis     = "redis"

	NotificationNone   = "none"
	NotificationFCM    = "fcm"
	NotificationPubSub = "pubsub"
	NotificationLocal  = "local"
)

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
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase project used for the document store, identity and push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Store selects the document store backing animals, requests and profiles
	Store *StoreConfig `json:"store" yaml:"store"`

	// Identity selects the identity provider
	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	// Favorites configures the device-local favorites persistence
	Favorites *FavoritesConfig `json:"favorites" yaml:"favorites"`

	// Media configures the image codec
	Media *MediaConfig `json:"media" yaml:"media"`

	// Adoption configures adoption request submission
	Adoption *AdoptionConfig `json:"adoption" yaml:"adoption"`

	// Notification configures adoption request notifications
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// QRCode configuration for animal share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project settings
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// Web API key, required for password sign-in through the Identity Toolkit
	APIKey string `json:"apiKey" yaml:"apiKey"`
}

// StoreConfig defines the document store driver
type StoreConfig struct {
	// Driver is "firestore" or "memory"
	Driver string `json:"driver" yaml:"driver"`
}

// IdentityConfig defines the identity provider driver
type IdentityConfig struct {
	// Driver is "firebase" or "local"
	Driver     string `json:"driver" yaml:"driver"`
	BcryptCost int    `json:"bcryptCost" yaml:"bcryptCost"`
}

// FavoritesConfig defines where the favorites list is persisted
type FavoritesConfig struct {
	// Driver is "sqlite", "redis" or "memory"
	Driver     string `json:"driver" yaml:"driver"`
	Key        string `json:"key" yaml:"key"`
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`
	Redis      struct {
		Addr     string `json:"addr" yaml:"addr"`
		Password string `json:"password" yaml:"password"`
		DB       int    `json:"db" yaml:"db"`
		Prefix   string `json:"prefix" yaml:"prefix"`
	} `json:"redis" yaml:"redis"`
}

// MediaConfig defines the image codec parameters
type MediaConfig struct {
	// Longest edge in pixels after downscaling
	MaxEdge int `json:"maxEdge" yaml:"maxEdge"`
	// JPEG quality, 1-100
	Quality int `json:"quality" yaml:"quality"`
	// Ceiling for the data URI length in characters
	MaxEncodedLength int `json:"maxEncodedLength" yaml:"maxEncodedLength"`
	// Largest decoded image, in pixels, the codec will allocate
	MaxPixels int `json:"maxPixels" yaml:"maxPixels"`
}

// DefaultMaxPixels bounds decoded images to 50 megapixels.
const DefaultMaxPixels = 50_000_000

// AdoptionConfig defines adoption request rules
type AdoptionConfig struct {
	MinMessageLength int `json:"minMessageLength" yaml:"minMessageLength"`
}

// NotificationConfig defines how adoption notifications are delivered
type NotificationConfig struct {
	// Provider is "none", "fcm", "pubsub" or "local"
	Provider string `json:"provider" yaml:"provider"`

	// Push endpoint receiving events (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Google Cloud project ID (for pubsub provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for pubsub provider)
	TopicID string `json:"topicId" yaml:"topicId"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	DeepLinkScheme       string `json:"deepLinkScheme" yaml:"deepLinkScheme"`
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
			// Example: FAVORITES_SQLITEPATH -> favorites.sqlitePath (not favorites.sqlitepath)
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

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills every section left out of the YAML file.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Store == nil {
		cfg.Store = &StoreConfig{Driver: DriverFirestore}
	}
	if cfg.Identity == nil {
		cfg.Identity = &IdentityConfig{Driver: DriverFirebase}
	}
	if cfg.Favorites == nil {
		cfg.Favorites = &FavoritesConfig{Driver: DriverSQLite}
	}
	if cfg.Favorites.Key == "" {
		cfg.Favorites.Key = "favorites"
	}
	if cfg.Favorites.SQLitePath == "" {
		cfg.Favorites.SQLitePath = "preferences.db"
	}
	if cfg.Media == nil {
		cfg.Media = &MediaConfig{}
	}
	if cfg.Media.MaxEdge <= 0 {
		cfg.Media.MaxEdge = 800
	}
	if cfg.Media.Quality <= 0 {
		cfg.Media.Quality = 70
	}
	if cfg.Media.MaxEncodedLength <= 0 {
		cfg.Media.MaxEncodedLength = 900_000
	}
	if cfg.Media.MaxPixels <= 0 {
		cfg.Media.MaxPixels = DefaultMaxPixels
	}
	if cfg.Adoption == nil {
		cfg.Adoption = &AdoptionConfig{}
	}
	if cfg.Adoption.MinMessageLength <= 0 {
		cfg.Adoption.MinMessageLength = 10
	}
	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{Provider: NotificationNone}
	}
	if cfg.Notification.Provider == "" {
		cfg.Notification.Provider = NotificationNone
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}
	if cfg.QRCode.DeepLinkScheme == "" {
		cfg.QRCode.DeepLinkScheme = "animaladoption"
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
