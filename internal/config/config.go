package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Fetch modes.
const (
	FetchModeAsync = "async"
	FetchModeSync  = "sync"
)

// ErrMissingAPIKey is returned by Load when API_KEY is unset.
var ErrMissingAPIKey = errors.New("API_KEY is not set")

// Config holds the application configuration loaded from .env and environment variables.
type Config struct {
	AppName        string `mapstructure:"app_name"`
	APIKey         string `mapstructure:"api_key" json:"-"`
	LogLevel       string `mapstructure:"log_level"`
	FetchMode      string `mapstructure:"fetch_mode"`
	BaseURL        string `mapstructure:"newsapi_base_url"`
	UserAgent      string `mapstructure:"user_agent"`
	PublishersFile string `mapstructure:"publishers_file"`
}

// Load reads configuration from .env (if present) and the environment.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path. A missing file is ignored.
func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	v := viper.New()

	v.SetDefault("app_name", "quicknews")
	v.SetDefault("api_key", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("fetch_mode", FetchModeAsync)
	v.SetDefault("newsapi_base_url", "https://newsapi.org/v2")
	v.SetDefault("user_agent", "quicknews")
	v.SetDefault("publishers_file", "")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg.FetchMode = strings.ToLower(strings.TrimSpace(cfg.FetchMode))
	switch cfg.FetchMode {
	case FetchModeAsync, FetchModeSync:
	default:
		return nil, fmt.Errorf("invalid fetch_mode %q (expected %q or %q)", cfg.FetchMode, FetchModeAsync, FetchModeSync)
	}
	cfg.PublishersFile = strings.TrimSpace(cfg.PublishersFile)

	return &cfg, nil
}
