// Package config handles reading and writing the client configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	Version   int             `yaml:"version"`
	API       APIConfig       `yaml:"api"`
	Interview InterviewConfig `yaml:"interview"`
	Speech    SpeechConfig    `yaml:"speech"`
}

// APIConfig holds connection settings for the interview backend.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// InterviewConfig controls the answer-submission behaviour.
type InterviewConfig struct {
	TotalQuestions int `yaml:"total_questions"`
	MaxAttempts    int `yaml:"max_attempts"`
	RetryDelayMs   int `yaml:"retry_delay_ms"` // fixed delay between attempts
}

// SpeechConfig controls the voice-input adapter.
type SpeechConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Language       string `yaml:"language"`
	RestartDelayMs int    `yaml:"restart_delay_ms"` // delay before restarting a spontaneously ended stream
}

// configDir is relative to the user home; configFile lives inside it.
const configDir = ".aiinterview"
const configFile = "config.yaml"

// Dir returns the directory holding config.yaml, the user cache, and
// the event log. It defaults to .aiinterview under the user home and
// can be overridden with AIINTERVIEW_DIR.
func Dir() (string, error) {
	if dir := os.Getenv("AIINTERVIEW_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

// ReadConfig reads config.yaml from the given directory.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to config.yaml in the given directory.
// Creates the directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APIConfig{
			BaseURL:        "http://localhost:5000",
			TimeoutSeconds: 15,
		},
		Interview: InterviewConfig{
			TotalQuestions: 10,
			MaxAttempts:    3,
			RetryDelayMs:   1000,
		},
		Speech: SpeechConfig{
			Enabled:        true,
			Language:       "en-US",
			RestartDelayMs: 100,
		},
	}
}

// Load reads the config from Dir(), falling back to defaults when the
// file does not exist, and applies environment overrides. A .env file
// in the working directory is honoured when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	cfg, err := ReadConfig(dir)
	if err != nil {
		cfg = DefaultConfig()
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overrides config fields from the environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("API_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.API.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("SPEECH_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Speech.Enabled = b
		}
	}
}

// Timeout returns the API request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.API.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// RetryDelay returns the fixed delay between submission attempts.
func (c *Config) RetryDelay() time.Duration {
	if c.Interview.RetryDelayMs <= 0 {
		return time.Second
	}
	return time.Duration(c.Interview.RetryDelayMs) * time.Millisecond
}

// SpeechRestartDelay returns the delay before a spontaneously ended
// recognition stream is restarted.
func (c *Config) SpeechRestartDelay() time.Duration {
	if c.Speech.RestartDelayMs <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.Speech.RestartDelayMs) * time.Millisecond
}
