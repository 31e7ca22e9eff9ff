// Package config loads service configuration from the environment, with
// an optional TOML secrets file overlaying the provider API keys.
// Incomplete configuration is a startup-fatal condition; every missing
// value is reported at once.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "POLYGLOT"

// Config is the full configuration surface of the server.
type Config struct {
	// ListenAddr is the HTTP listen address.
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
	// GoogleAPIKey authenticates against the generative-model API.
	GoogleAPIKey string `envconfig:"GOOGLE_API_KEY"`
	// GeminiModel selects the generative model.
	GeminiModel string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash-latest"`
	// FirebaseAPIKey authenticates against the identity provider.
	FirebaseAPIKey string `envconfig:"FIREBASE_API_KEY"`
	// AuthBaseURL is the identity provider accounts endpoint prefix.
	AuthBaseURL string `envconfig:"AUTH_BASE_URL" default:"https://identitytoolkit.googleapis.com/v1/accounts:"`
	// LogLevel selects the zap level: debug, info, warn or error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Secrets is the optional TOML secrets file shape. Values present here
// take precedence over the environment.
type Secrets struct {
	GoogleAPIKey   string `toml:"GOOGLE_API_KEY"`
	FirebaseAPIKey string `toml:"FIREBASE_API_KEY"`
}

// Load reads configuration from POLYGLOT_* environment variables and,
// when secretsPath is non-empty, overlays keys from the TOML file.
// Returns an aggregate error naming every missing required value.
func Load(secretsPath string) (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}

	if secretsPath != "" {
		secrets, err := loadSecrets(secretsPath)
		if err != nil {
			return Config{}, err
		}
		if secrets.GoogleAPIKey != "" {
			cfg.GoogleAPIKey = secrets.GoogleAPIKey
		}
		if secrets.FirebaseAPIKey != "" {
			cfg.FirebaseAPIKey = secrets.FirebaseAPIKey
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadSecrets(path string) (Secrets, error) {
	var secrets Secrets
	if _, err := toml.DecodeFile(path, &secrets); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Secrets{}, fmt.Errorf("secrets file %s does not exist", path)
		}
		return Secrets{}, fmt.Errorf("decode secrets file %s: %w", path, err)
	}
	return secrets, nil
}

func (c Config) validate() error {
	var result *multierror.Error

	if c.GoogleAPIKey == "" {
		result = multierror.Append(result, errors.New("google api key is required (POLYGLOT_GOOGLE_API_KEY or secrets file)"))
	}
	if c.FirebaseAPIKey == "" {
		result = multierror.Append(result, errors.New("firebase api key is required (POLYGLOT_FIREBASE_API_KEY or secrets file)"))
	}
	if c.GeminiModel == "" {
		result = multierror.Append(result, errors.New("gemini model must not be empty"))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		result = multierror.Append(result, fmt.Errorf("unknown log level %q", c.LogLevel))
	}

	return result.ErrorOrNil()
}
