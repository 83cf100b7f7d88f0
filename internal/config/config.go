package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application's configuration model.
// Values come from YAML, then the environment overrides what it sets.
type Config struct {
	Session       SessionConfig       `yaml:"session"`
	Search        SearchConfig        `yaml:"search"`
	Conversations ConversationsConfig `yaml:"conversations"`
	LLM           LLMConfig           `yaml:"llm"`
	Storage       StorageConfig       `yaml:"storage"`
	Metrics       MetricsConfig       `yaml:"metrics"`
	Logging       LoggingConfig       `yaml:"logging"`
}

type SessionConfig struct {
	DemoEmail    string `yaml:"demoEmail" env:"COLLABHUB_DEMO_EMAIL"`
	DemoPassword string `yaml:"demoPassword" env:"COLLABHUB_DEMO_PASSWORD"`
}

type SearchConfig struct {
	// Simulated latency of search and influencer lookups
	Latency time.Duration `yaml:"latency" env:"COLLABHUB_SEARCH_LATENCY"`
	// Max rows printed by the suggest command; 0 means all
	SuggestionLimit int `yaml:"suggestionLimit"`
}

type ConversationsConfig struct {
	ListLatency time.Duration `yaml:"listLatency"`
	GetLatency  time.Duration `yaml:"getLatency"`
}

type LLMConfig struct {
	Provider string `yaml:"provider" env:"COLLABHUB_LLM_PROVIDER"` // "openai", "heuristic" or "none"
	Model    string `yaml:"model" env:"COLLABHUB_LLM_MODEL"`
	BaseURL  string `yaml:"baseURL" env:"OPENAI_BASE_URL"`
	// If empty, read from env OPENAI_API_KEY
	APIKey  string        `yaml:"apiKey" env:"OPENAI_API_KEY"`
	RPS     float64       `yaml:"rps"`
	Burst   int           `yaml:"burst"`
	Timeout time.Duration `yaml:"timeout"`
}

type StorageConfig struct {
	DBPath string `yaml:"dbPath" env:"COLLABHUB_DB_PATH"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr" env:"METRICS_ADDR"`
}

type LoggingConfig struct {
	Level string `yaml:"level" env:"COLLABHUB_LOG_LEVEL"`
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		Session:       SessionConfig{DemoEmail: "test@example.com", DemoPassword: "password"},
		Search:        SearchConfig{Latency: 500 * time.Millisecond, SuggestionLimit: 0},
		Conversations: ConversationsConfig{ListLatency: 300 * time.Millisecond, GetLatency: 100 * time.Millisecond},
		LLM: LLMConfig{
			Provider: "heuristic",
			Model:    "gpt-4o-mini",
			BaseURL:  "https://api.openai.com/v1",
			RPS:      1,
			Burst:    2,
			Timeout:  30 * time.Second,
		},
		Storage: StorageConfig{DBPath: "./collabhub.db"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// ResolveEnv loads an optional .env file and applies environment overrides.
func (c *Config) ResolveEnv() error {
	_ = godotenv.Load() // optional
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads YAML config from path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, err
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := cfg.ResolveEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
