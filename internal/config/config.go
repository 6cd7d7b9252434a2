package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const configFileName = "volunteer_match_config.yaml"

// GmailSettings configures assignment notification emails. Absent
// settings mean notification records only, no mail.
type GmailSettings struct {
	UserID string `yaml:"userID" validate:"required"`
	Sender string `yaml:"sender,omitempty"`
}

// Config represents the application configuration
type Config struct {
	// StoreBackend selects the entity store implementation
	StoreBackend string `yaml:"storeBackend" validate:"required,oneof=memory file postgres mongo"`

	// StoreFilePath is the JSON blob location for the file backend
	StoreFilePath string `yaml:"storeFilePath,omitempty" validate:"required_if=StoreBackend file"`

	// PostgresURL is the connection string for the postgres backend.
	// Overridable via DATABASE_URL.
	PostgresURL string `yaml:"postgresURL,omitempty"`

	// MongoURI and MongoDatabase configure the mongo backend.
	// MongoURI is overridable via MONGODB_URI.
	MongoURI      string `yaml:"mongoURI,omitempty"`
	MongoDatabase string `yaml:"mongoDatabase,omitempty"`

	// ListenAddr is the HTTP API listen address for the serve command
	ListenAddr string `yaml:"listenAddr,omitempty"`

	// SeedOnInit loads seed data into an empty store at startup
	SeedOnInit bool `yaml:"seedOnInit,omitempty"`

	// DefaultHours credited per assignment when the caller gives none
	DefaultHours float64 `yaml:"defaultHours,omitempty" validate:"omitempty,gt=0"`

	Gmail *GmailSettings `yaml:"gmail,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration. It looks for the config
// file in the current directory first, then in the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
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

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration struct and cross-field backend
// requirements
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	switch cfg.StoreBackend {
	case "postgres":
		if cfg.PostgresURL == "" {
			return fmt.Errorf("config validation failed: postgres backend requires postgresURL or DATABASE_URL")
		}
	case "mongo":
		if cfg.MongoURI == "" {
			return fmt.Errorf("config validation failed: mongo backend requires mongoURI or MONGODB_URI")
		}
		if cfg.MongoDatabase == "" {
			return fmt.Errorf("config validation failed: mongo backend requires mongoDatabase")
		}
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.DefaultHours == 0 {
		cfg.DefaultHours = 2
	}
}

// applyEnvOverrides lets deployment credentials come from the environment
// rather than the config file
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.PostgresURL = v
	}
	if v := os.Getenv("MONGODB_URI"); v != "" {
		cfg.MongoURI = v
	}
}

// findConfigFile searches for the config file in the current directory
// and the home directory
func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
