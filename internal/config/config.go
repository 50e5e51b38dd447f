package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultJokeURL is the endpoint hit by the fetch section.
const DefaultJokeURL = "https://v2.jokeapi.dev/joke/Any"

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName             string        `mapstructure:"app_name"`
	Env                 string        `mapstructure:"app_env"`
	LogLevel            string        `mapstructure:"log_level"`
	JokeURL             string        `mapstructure:"joke_url"`
	FetchTimeoutSeconds int64         `mapstructure:"fetch_timeout_seconds"`
	FetchTimeout        time.Duration `mapstructure:"-"`

	InfoFile      string `mapstructure:"info_file"`
	OutFile       string `mapstructure:"out_file"`
	HelloFile     string `mapstructure:"hello_file"`
	UptimeCommand string `mapstructure:"uptime_command"`
	SinksFile     string `mapstructure:"sinks_file"`

	StorageType       string        `mapstructure:"storage_type"`
	BBoltPath         string        `mapstructure:"bbolt_path"`
	StorageTTLSeconds int64         `mapstructure:"storage_ttl_seconds"`
	StorageTTL        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "feature-tour")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("joke_url", DefaultJokeURL)
	v.SetDefault("fetch_timeout_seconds", 0) // library default
	v.SetDefault("info_file", "info.txt")
	v.SetDefault("out_file", "out.txt")
	v.SetDefault("hello_file", "hello.txt")
	v.SetDefault("uptime_command", "uptime")
	v.SetDefault("sinks_file", "./configs/sinks.yaml")
	v.SetDefault("storage_type", "none") // opt in with bbolt
	v.SetDefault("bbolt_path", "./data/tour.db")
	v.SetDefault("storage_ttl_seconds", int64((7*24*time.Hour)/time.Second))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) normalize() error {
	cfg.JokeURL = strings.TrimSpace(cfg.JokeURL)
	if cfg.JokeURL == "" {
		return fmt.Errorf("invalid joke_url (must not be empty)")
	}

	if cfg.FetchTimeoutSeconds < 0 {
		return fmt.Errorf("invalid fetch_timeout_seconds (must be zero or positive seconds)")
	}
	cfg.FetchTimeout = time.Duration(cfg.FetchTimeoutSeconds) * time.Second

	if cfg.StorageTTLSeconds <= 0 {
		return fmt.Errorf("invalid storage_ttl_seconds (must be positive seconds)")
	}
	cfg.StorageTTL = time.Duration(cfg.StorageTTLSeconds) * time.Second

	if strings.TrimSpace(cfg.UptimeCommand) == "" {
		cfg.UptimeCommand = "uptime"
	}
	return nil
}
