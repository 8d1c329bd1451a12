// Package config loads the service configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration of cmd/api and cmd/worker.
type Config struct {
	APIBaseURL string `env:"API_BASE_URL,required"`
	HTTPAddr   string `env:"HTTP_ADDR,default=:8080"`
	RunLocal   bool   `env:"RUN_LOCAL,default=false"`

	SessionCookieName string        `env:"SESSION_COOKIE_NAME,default=nanubhai"`
	SessionSecret     string        `env:"SESSION_SECRET,required"`
	SessionTTL        time.Duration `env:"SESSION_TTL,default=24h"`
	CookieSecure      bool          `env:"COOKIE_SECURE,default=false"`

	RemoteTimeout time.Duration `env:"REMOTE_TIMEOUT,default=15s"`

	IdempotencyTable string `env:"IDEMPOTENCY_TABLE"`
	AuditTable       string `env:"AUDIT_TABLE"`
	EventsQueueURL   string `env:"EVENTS_QUEUE_URL"`
	MetricsNamespace string `env:"METRICS_NAMESPACE,default=EcomAdmin"`
	AWSRegion        string `env:"AWS_REGION,default=us-east-1"`

	LogMode string `env:"LOG_MODE,default=development"`
	LogFile string `env:"LOG_FILE"`

	DateOrderCheck bool `env:"DATE_ORDER_CHECK,default=false"`
}

// WorkerConfig is the subset cmd/worker needs.
type WorkerConfig struct {
	RunLocal   bool   `env:"RUN_LOCAL,default=false"`
	AuditTable string `env:"AUDIT_TABLE,required"`
	AWSRegion  string `env:"AWS_REGION,default=us-east-1"`
	LogMode    string `env:"LOG_MODE,default=development"`
	LogFile    string `env:"LOG_FILE"`
}

// Load reads envFile (if present) into the environment and decodes the
// API configuration. Variables already set win over the file.
func Load(envFile string) (*Config, error) {
	if err := loadDotEnv(envFile); err != nil {
		return nil, err
	}
	var cfg Config
	if err := decode(&cfg); err != nil {
		return nil, err
	}
	if cfg.APIBaseURL == "" || cfg.SessionSecret == "" {
		return nil, errors.New("config: API_BASE_URL and SESSION_SECRET must not be empty")
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("config: SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	return &cfg, nil
}

// LoadWorker is Load for cmd/worker.
func LoadWorker(envFile string) (*WorkerConfig, error) {
	if err := loadDotEnv(envFile); err != nil {
		return nil, err
	}
	var cfg WorkerConfig
	if err := decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadDotEnv(envFile string) error {
	if envFile == "" {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config: load %s: %w", envFile, err)
	}
	return nil
}

func decode(target interface{}) error {
	if err := envdecode.StrictDecode(target); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
