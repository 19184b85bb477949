package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/hannahbrooks/volunteer-connect/pkg/store"
)

// DefaultTagOptions is the tag vocabulary offered for filtering when the
// config doesn't override it.
var DefaultTagOptions = []string{
	"Environmental",
	"Animal",
	"Social Work",
	"Healthcare",
	"Blood Donation",
	"Sports",
	"Others",
}

// Config represents the application configuration
type Config struct {
	StoreBackend   string   `yaml:"storeBackend" validate:"required,oneof=file sqlite postgres"`
	StorePath      string   `yaml:"storePath,omitempty"`
	StoreDSN       string   `yaml:"storeDSN,omitempty"`
	SessionFile    string   `yaml:"sessionFile" validate:"required"`
	PollIntervalMs int      `yaml:"pollIntervalMs,omitempty" validate:"omitempty,min=100"`
	SeedSchedule   string   `yaml:"seedSchedule,omitempty"`
	TagOptions     []string `yaml:"tagOptions,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// PollInterval returns the reconciliation period, defaulting to 1s.
func (c *Config) PollInterval() time.Duration {
	if c.PollIntervalMs <= 0 {
		return time.Second
	}
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// Tags returns the configured tag vocabulary, or the default one.
func (c *Config) Tags() []string {
	if len(c.TagOptions) > 0 {
		return c.TagOptions
	}
	return DefaultTagOptions
}

// LoadWithEnv loads the configuration for the given environment. It looks
// for volunteer_connect_<env>.yaml first, then volunteer_connect.yaml, in
// the current directory and then the user's home directory. Environment
// variables override file values after loading.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the backend/location
// pairing, and the seed schedule rrule syntax.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	switch cfg.StoreBackend {
	case store.BackendFile, store.BackendSQLite:
		if cfg.StorePath == "" {
			return fmt.Errorf("storePath is required for the %s backend", cfg.StoreBackend)
		}
	case store.BackendPostgres:
		if cfg.StoreDSN == "" {
			return fmt.Errorf("storeDSN is required for the postgres backend")
		}
	}

	if cfg.SeedSchedule != "" {
		if _, err := rrule.StrToRRule(cfg.SeedSchedule); err != nil {
			return fmt.Errorf("invalid rrule in seedSchedule: %w", err)
		}
	}

	return nil
}

// applyEnvOverrides lets deployment environments override file values
// without editing the config file (a .env file is loaded by main).
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VC_STORE_BACKEND"); v != "" {
		cfg.StoreBackend = v
	}
	if v := os.Getenv("VC_STORE_PATH"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("VC_STORE_DSN"); v != "" {
		cfg.StoreDSN = v
	}
	if v := os.Getenv("VC_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
	if v := os.Getenv("VC_POLL_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.PollIntervalMs = ms
		}
	}
}

// findConfigFile searches for the environment-specific config first, then
// the shared one, in the current directory and the home directory.
func findConfigFile(env string) (string, error) {
	candidates := []string{"volunteer_connect.yaml"}
	if env != "" {
		candidates = []string{fmt.Sprintf("volunteer_connect_%s.yaml", env), "volunteer_connect.yaml"}
	}

	for _, name := range candidates {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	for _, name := range candidates {
		homePath := filepath.Join(homeDir, name)
		if _, err := os.Stat(homePath); err == nil {
			return homePath, nil
		}
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
