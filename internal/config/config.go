package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"APP_ENV"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	DBMaxOpenConns int `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int `mapstructure:"DB_MAX_IDLE_CONNS"`

	TokenTTLHours       int `mapstructure:"TOKEN_TTL_HOURS"`
	UploadRatePerMinute int `mapstructure:"UPLOAD_RATE_PER_MINUTE"`
	PluginActiveMinutes int `mapstructure:"PLUGIN_ACTIVE_MINUTES"`
	HeatmapSessions     int `mapstructure:"HEATMAP_SESSIONS"`

	// Avatar storage is optional; uploads are disabled when AvatarBucket is empty.
	AvatarBucket          string `mapstructure:"AVATAR_BUCKET"`
	AvatarEndpoint        string `mapstructure:"AVATAR_ENDPOINT"`
	AvatarRegion          string `mapstructure:"AVATAR_REGION"`
	AvatarAccessKeyID     string `mapstructure:"AVATAR_ACCESS_KEY_ID"`
	AvatarSecretAccessKey string `mapstructure:"AVATAR_SECRET_ACCESS_KEY"`
	AvatarPublicBaseURL   string `mapstructure:"AVATAR_PUBLIC_BASE_URL"`

	// EphemeralJWTSecret is set when no JWT_SECRET was configured outside
	// production and a random one was generated for this process.
	EphemeralJWTSecret bool `mapstructure:"-"`
}

var AppConfig *Config

var defaults = map[string]any{
	"DATABASE_URL":             "",
	"JWT_SECRET":               "",
	"PORT":                     "8080",
	"APP_ENV":                  "development",
	"LOG_LEVEL":                "info",
	"LOG_FORMAT":               "json",
	"DB_MAX_OPEN_CONNS":        20,
	"DB_MAX_IDLE_CONNS":        5,
	"TOKEN_TTL_HOURS":          24 * 7,
	"UPLOAD_RATE_PER_MINUTE":   30,
	"PLUGIN_ACTIVE_MINUTES":    10,
	"HEATMAP_SESSIONS":         50,
	"AVATAR_BUCKET":            "",
	"AVATAR_ENDPOINT":          "",
	"AVATAR_REGION":            "auto",
	"AVATAR_ACCESS_KEY_ID":     "",
	"AVATAR_SECRET_ACCESS_KEY": "",
	"AVATAR_PUBLIC_BASE_URL":   "",
}

// LoadConfig loads the configuration from a .env file and environment variables.
// Environment variables win over the file. The result is stored in AppConfig.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// AutomaticEnv only resolves keys viper already knows about.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		cfg.JWTSecret = hex.EncodeToString(buf)
		cfg.EphemeralJWTSecret = true
	}

	AppConfig = cfg
	return cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.JWTSecret == "" && c.IsProduction() {
		return errors.New("JWT_SECRET is required in production")
	}
	if c.HeatmapSessions <= 0 {
		return errors.New("HEATMAP_SESSIONS must be positive")
	}
	return nil
}

// IsProduction reports whether detailed error messages must be suppressed.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// TokenTTL is the lifetime of dashboard bearer tokens.
func (c *Config) TokenTTL() time.Duration {
	if c.TokenTTLHours <= 0 {
		return 7 * 24 * time.Hour
	}
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// PluginActiveWindow is how recent an upload must be for the plugin to count as connected.
func (c *Config) PluginActiveWindow() time.Duration {
	if c.PluginActiveMinutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.PluginActiveMinutes) * time.Minute
}

// AvatarStorageEnabled reports whether avatar uploads are configured.
func (c *Config) AvatarStorageEnabled() bool {
	return c.AvatarBucket != ""
}

// Current returns AppConfig, falling back to defaults when nothing was loaded
// (tests and tools that never call LoadConfig).
func Current() *Config {
	if AppConfig != nil {
		return AppConfig
	}
	return &Config{
		Port:                "8080",
		Environment:         "development",
		LogLevel:            "info",
		LogFormat:           "json",
		DBMaxOpenConns:      20,
		DBMaxIdleConns:      5,
		TokenTTLHours:       24 * 7,
		UploadRatePerMinute: 30,
		PluginActiveMinutes: 10,
		HeatmapSessions:     50,
		AvatarRegion:        "auto",
	}
}
