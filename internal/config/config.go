package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"lokma/internal/models"
)

// Config is the kiosk's runtime configuration, read from a YAML file with
// environment variable overrides.
type Config struct {
	APIBaseURL      string        `yaml:"api_base_url"`
	PushURL         string        `yaml:"push_url"`
	DatabasePath    string        `yaml:"database_path"`
	DefaultLanguage string        `yaml:"default_language"`
	PollInterval    time.Duration `yaml:"poll_interval"`
	ResetDelay      time.Duration `yaml:"reset_delay"`
	LogLevel        string        `yaml:"log_level"`
	OpenAIKey       string        `yaml:"openai_key"`
	MetricsConfig   struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	} `yaml:"metrics"`
}

// Load reads the configuration file, fills in defaults and applies
// environment overrides. A missing file is not an error; defaults plus
// environment are enough to run against a local backend.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		APIBaseURL:      "http://localhost:8080",
		PushURL:         "",
		DatabasePath:    "lokma.db",
		DefaultLanguage: string(models.LanguageEN),
		PollInterval:    30 * time.Second,
		ResetDelay:      5 * time.Second,
		LogLevel:        "info",
	}
	cfg.MetricsConfig.Enabled = true
	cfg.MetricsConfig.Port = 9090

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyEnv(cfg)

	if cfg.DefaultLanguage != string(models.LanguageEN) && cfg.DefaultLanguage != string(models.LanguageAR) {
		return nil, fmt.Errorf("unsupported default language %q", cfg.DefaultLanguage)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.APIBaseURL = envOrDefault("LOKMA_API_URL", cfg.APIBaseURL)
	cfg.PushURL = envOrDefault("LOKMA_PUSH_URL", cfg.PushURL)
	cfg.DatabasePath = envOrDefault("LOKMA_DB_PATH", cfg.DatabasePath)
	cfg.DefaultLanguage = envOrDefault("LOKMA_LANGUAGE", cfg.DefaultLanguage)
	cfg.LogLevel = envOrDefault("LOKMA_LOG_LEVEL", cfg.LogLevel)
	cfg.OpenAIKey = envOrDefault("OPENAI_API_KEY", cfg.OpenAIKey)
}

func envOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// Language returns the configured default language.
func (c *Config) Language() models.Language {
	return models.Language(c.DefaultLanguage)
}
