package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	DataDir string `env:"DATA_DIR" envDefault:"."`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// ValidateResponses checks every outgoing response against the platform
	// schema and logs violations. Responses are sent either way.
	ValidateResponses bool `env:"VALIDATE_RESPONSES" envDefault:"false"`

	HistoryMaxTurns int `env:"HISTORY_MAX_TURNS" envDefault:"50"`

	// HistoryAPIToken guards the history endpoints. They are not mounted
	// while it is empty.
	HistoryAPIToken string `env:"HISTORY_API_TOKEN"`
}

func Load() (*Config, error) {
	// .env is optional; in production the variables are already set
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing env: %w", err)
	}

	if cfg.HistoryMaxTurns <= 0 {
		return nil, fmt.Errorf("HISTORY_MAX_TURNS must be positive, got %d", cfg.HistoryMaxTurns)
	}

	return cfg, nil
}

// DBPath is where the bolt database lives.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "skill.db")
}
