package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"shopgrip/internal/eventbus"
)

const (
	// FileName is the default config file name inside the config directory
	FileName = "config.toml"

	DefaultAPIVersion     = "2025-01"
	DefaultDebounceMS     = 300
	DefaultMinQueryLength = 2
	DefaultResultLimit    = 10
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	Store      StoreSettings  `toml:"store"`
	Search     SearchSettings `toml:"search"`
	Client     ClientSettings `toml:"client"`
	UISettings UISettings     `toml:"ui"`
	Log        LogSettings    `toml:"log"`
}

// StoreSettings identifies the storefront to talk to
type StoreSettings struct {
	Domain      string `toml:"domain"`
	APIVersion  string `toml:"api_version"`
	AccessToken string `toml:"access_token"`
	Country     string `toml:"country"`
	Language    string `toml:"language"`
}

// SearchSettings tunes predictive search
type SearchSettings struct {
	DebounceMS      int `toml:"debounce_ms"`
	MinQueryLength  int `toml:"min_query_length"`
	ResultLimit     int `toml:"result_limit"`
	CacheSize       int `toml:"cache_size"`
	CacheTTLSeconds int `toml:"cache_ttl_seconds"`
}

// ClientSettings tunes the storefront HTTP client
type ClientSettings struct {
	TimeoutSeconds         int `toml:"timeout_seconds"`
	BreakerFailures        int `toml:"breaker_failures"`
	BreakerCooldownSeconds int `toml:"breaker_cooldown_seconds"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	SlidesPerView int  `toml:"slides_per_view"`
	ShowImageURLs bool `toml:"show_image_urls"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Debounce returns the search debounce interval
func (s SearchSettings) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// CacheTTL returns how long search responses stay cached
func (s SearchSettings) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLSeconds) * time.Second
}

// Timeout returns the per-request timeout
func (s ClientSettings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// BreakerCooldown returns how long the breaker stays open
func (s ClientSettings) BreakerCooldown() time.Duration {
	return time.Duration(s.BreakerCooldownSeconds) * time.Second
}

// Endpoint returns the Storefront API GraphQL URL
func (c *Config) Endpoint() string {
	domain := strings.TrimSuffix(c.Store.Domain, "/")
	if !strings.HasPrefix(domain, "http://") && !strings.HasPrefix(domain, "https://") {
		domain = "https://" + domain
	}
	return fmt.Sprintf("%s/api/%s/graphql.json", domain, c.Store.APIVersion)
}

// ApplyEnv overrides store settings from the environment
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("SHOPGRIP_STORE_DOMAIN"); v != "" {
		c.Store.Domain = v
	}
	if v := getenv("SHOPGRIP_STOREFRONT_TOKEN"); v != "" {
		c.Store.AccessToken = v
	}
	if v := getenv("SHOPGRIP_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// fillDefaults sets every zero-valued setting to its default
func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.Version == 0 {
		c.Version = d.Version
	}
	if c.Store.APIVersion == "" {
		c.Store.APIVersion = d.Store.APIVersion
	}
	if c.Store.Country == "" {
		c.Store.Country = d.Store.Country
	}
	if c.Store.Language == "" {
		c.Store.Language = d.Store.Language
	}
	if c.Search.DebounceMS <= 0 {
		c.Search.DebounceMS = d.Search.DebounceMS
	}
	if c.Search.MinQueryLength <= 0 {
		c.Search.MinQueryLength = d.Search.MinQueryLength
	}
	if c.Search.ResultLimit <= 0 {
		c.Search.ResultLimit = d.Search.ResultLimit
	}
	if c.Search.CacheSize <= 0 {
		c.Search.CacheSize = d.Search.CacheSize
	}
	if c.Search.CacheTTLSeconds <= 0 {
		c.Search.CacheTTLSeconds = d.Search.CacheTTLSeconds
	}
	if c.Client.TimeoutSeconds <= 0 {
		c.Client.TimeoutSeconds = d.Client.TimeoutSeconds
	}
	if c.Client.BreakerFailures <= 0 {
		c.Client.BreakerFailures = d.Client.BreakerFailures
	}
	if c.Client.BreakerCooldownSeconds <= 0 {
		c.Client.BreakerCooldownSeconds = d.Client.BreakerCooldownSeconds
	}
	if c.UISettings.SlidesPerView <= 0 {
		c.UISettings.SlidesPerView = d.UISettings.SlidesPerView
	}
	if c.Log.File == "" {
		c.Log.File = d.Log.File
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service backed by the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "shopgrip", FileName),
	}
}

// NewConfigServiceForPath creates a config service for an explicit file
func NewConfigServiceForPath(path string, bus eventbus.EventBus) ConfigService {
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults if it does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.fillDefaults()

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file may hold a storefront token
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Store: StoreSettings{
			APIVersion: DefaultAPIVersion,
			Country:    "US",
			Language:   "EN",
		},
		Search: SearchSettings{
			DebounceMS:      DefaultDebounceMS,
			MinQueryLength:  DefaultMinQueryLength,
			ResultLimit:     DefaultResultLimit,
			CacheSize:       128,
			CacheTTLSeconds: 60,
		},
		Client: ClientSettings{
			TimeoutSeconds:         10,
			BreakerFailures:        5,
			BreakerCooldownSeconds: 30,
		},
		UISettings: UISettings{
			SlidesPerView: 4,
			ShowImageURLs: false,
		},
		Log: LogSettings{
			File:  "shopgrip.log",
			Level: "info",
		},
	}
}
