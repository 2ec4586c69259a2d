// Package config loads sentibot settings from the environment, an optional
// .env file, and an optional YAML routes file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	ai "github.com/spetersoncode/sentibot"
	"github.com/spetersoncode/sentibot/client"
	"github.com/spetersoncode/sentibot/model"
	"github.com/spetersoncode/sentibot/router"
)

// Environment variable names.
const (
	EnvGoogleKey       = "GOOGLE_API_KEY"
	EnvGroqKey         = "GROQ_API_KEY"
	EnvOpenAIKey       = "OPENAI_API_KEY"
	EnvAnthropicKey    = "ANTHROPIC_API_KEY"
	EnvClassifierModel = "SENTIBOT_CLASSIFIER_MODEL"
	EnvPositiveModel   = "SENTIBOT_POSITIVE_MODEL"
	EnvNegativeModel   = "SENTIBOT_NEGATIVE_MODEL"
	EnvNeutralModel    = "SENTIBOT_NEUTRAL_MODEL"
	EnvRoutesFile      = "SENTIBOT_ROUTES_FILE"
	EnvRetryAttempts   = "SENTIBOT_RETRY_ATTEMPTS"
	EnvTurnTimeout     = "SENTIBOT_TURN_TIMEOUT"
	EnvLogLevel        = "SENTIBOT_LOG_LEVEL"
	EnvHistoryFile     = "SENTIBOT_HISTORY_FILE"
)

// KeyEnv returns the environment variable holding the API key for p.
func KeyEnv(p ai.Provider) string {
	switch p {
	case ai.ProviderGoogle:
		return EnvGoogleKey
	case ai.ProviderGroq:
		return EnvGroqKey
	case ai.ProviderOpenAI:
		return EnvOpenAIKey
	case ai.ProviderAnthropic:
		return EnvAnthropicKey
	default:
		return strings.ToUpper(p.String()) + "_API_KEY"
	}
}

// ModelSetting is a model and the temperature it is called with.
type ModelSetting struct {
	Model       model.ChatModel
	Temperature float64
}

// Config holds the application configuration.
type Config struct {
	// API Keys
	GoogleKey    string
	GroqKey      string
	OpenAIKey    string
	AnthropicKey string

	// Models
	Classifier ModelSetting
	Positive   ModelSetting
	Negative   ModelSetting
	Neutral    ModelSetting

	RoutesFile    string
	RetryAttempts int
	TurnTimeout   time.Duration // 0 disables the per-turn timeout
	LogLevel      string        // debug, info, warn, error
	HistoryFile   string
}

// Default returns the built-in configuration without API keys.
func Default() *Config {
	routes := router.DefaultRoutes()
	return &Config{
		Classifier:    ModelSetting{Model: model.Gemini25Pro},
		Positive:      ModelSetting{Model: model.Llama3370BVersatile, Temperature: routes.Positive.Temperature},
		Negative:      ModelSetting{Model: model.Gemini25Pro, Temperature: routes.Negative.Temperature},
		Neutral:       ModelSetting{Model: model.Gemini25Flash, Temperature: routes.Neutral.Temperature},
		RetryAttempts: 3,
		LogLevel:      "info",
	}
}

// Load reads a .env file if present (silently skipped if not found), then
// builds and validates the configuration from the process environment.
func Load() (*Config, error) {
	godotenv.Load() // Load .env file if present
	return FromEnv(os.Getenv)
}

// FromEnv builds and validates the configuration using getenv for lookups.
// Model settings are layered: defaults, then the routes file, then the
// SENTIBOT_*_MODEL variables.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := Default()
	cfg.GoogleKey = getenv(EnvGoogleKey)
	cfg.GroqKey = getenv(EnvGroqKey)
	cfg.OpenAIKey = getenv(EnvOpenAIKey)
	cfg.AnthropicKey = getenv(EnvAnthropicKey)
	cfg.RoutesFile = getenv(EnvRoutesFile)
	cfg.HistoryFile = getenv(EnvHistoryFile)

	var errs []error

	if cfg.RoutesFile != "" {
		if err := cfg.applyRoutesFile(cfg.RoutesFile); err != nil {
			errs = append(errs, err)
		}
	}

	for _, m := range []struct {
		env     string
		setting *ModelSetting
	}{
		{EnvClassifierModel, &cfg.Classifier},
		{EnvPositiveModel, &cfg.Positive},
		{EnvNegativeModel, &cfg.Negative},
		{EnvNeutralModel, &cfg.Neutral},
	} {
		ref := getenv(m.env)
		if ref == "" {
			continue
		}
		parsed, err := model.Parse(ref)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", m.env, err))
			continue
		}
		m.setting.Model = parsed
	}

	if v := getenv(EnvRetryAttempts); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid integer %q", EnvRetryAttempts, v))
		} else {
			cfg.RetryAttempts = n
		}
	}

	if v := getenv(EnvTurnTimeout); v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvTurnTimeout, err))
		} else {
			cfg.TurnTimeout = d
		}
	}

	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseTimeout accepts a Go duration ("30s") or a bare number of seconds.
func parseTimeout(v string) (time.Duration, error) {
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return 0, fmt.Errorf("invalid duration %q", v)
}

// Validate checks that every provider in use has an API key and that the
// remaining settings are in range. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	keys := c.APIKeys()
	seen := make(map[ai.Provider]bool)
	for _, m := range c.Models() {
		p := m.Provider()
		if seen[p] {
			continue
		}
		seen[p] = true
		if keys.For(p) == "" {
			errs = append(errs, fmt.Errorf("%s is required for %s (used by model %s)", KeyEnv(p), p, m))
		}
	}

	for _, s := range []struct {
		name    string
		setting ModelSetting
	}{
		{"classifier", c.Classifier},
		{"positive", c.Positive},
		{"negative", c.Negative},
		{"neutral", c.Neutral},
	} {
		limit := MaxTemperature(s.setting.Model.Provider())
		if t := s.setting.Temperature; t < 0 || t > limit {
			errs = append(errs, fmt.Errorf("%s temperature %v out of range [0, %v] for %s", s.name, t, limit, s.setting.Model.Provider()))
		}
	}

	if c.RetryAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", EnvRetryAttempts, c.RetryAttempts))
	}
	if c.TurnTimeout < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", EnvTurnTimeout))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// MaxTemperature returns the highest sampling temperature p accepts.
func MaxTemperature(p ai.Provider) float64 {
	if p == ai.ProviderAnthropic {
		return 1
	}
	return 2
}

// APIKeys returns the configured keys in the form the client expects.
func (c *Config) APIKeys() client.APIKeys {
	return client.APIKeys{
		Google:    c.GoogleKey,
		Groq:      c.GroqKey,
		OpenAI:    c.OpenAIKey,
		Anthropic: c.AnthropicKey,
	}
}

// Models lists the classifier model followed by the route models.
func (c *Config) Models() []ai.Model {
	return []ai.Model{c.Classifier.Model, c.Positive.Model, c.Negative.Model, c.Neutral.Model}
}

// Routes returns the routing table with the configured models and temperatures.
func (c *Config) Routes() router.Routes {
	routes := router.DefaultRoutes()
	routes.Positive.Model, routes.Positive.Temperature = c.Positive.Model, c.Positive.Temperature
	routes.Negative.Model, routes.Negative.Temperature = c.Negative.Model, c.Negative.Temperature
	routes.Neutral.Model, routes.Neutral.Temperature = c.Neutral.Model, c.Neutral.Temperature
	return routes
}

// ParseLevel converts a log level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%s: unknown log level %q (must be debug, info, warn, or error)", EnvLogLevel, s)
	}
}

// SlogLevel returns the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}
