package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Datasets DatasetsConfig `toml:"datasets"`
	HTTP     HTTPConfig     `toml:"http"`
	Output   OutputConfig   `toml:"output"`
}

// DatasetsConfig contains per-dataset source settings.
type DatasetsConfig struct {
	Trips        TripsConfig        `toml:"trips"`
	Powerlifting PowerliftingConfig `toml:"powerlifting"`
}

// TripsConfig contains trip record source settings.
type TripsConfig struct {
	BaseURL string `toml:"base_url"`
}

// PowerliftingConfig contains powerlifting dataset source settings.
type PowerliftingConfig struct {
	ArchiveURL string `toml:"archive_url"`
}

// HTTPConfig contains download client settings.
type HTTPConfig struct {
	TimeoutSeconds   int     `toml:"timeout_seconds"`
	RetryWaitSeconds int     `toml:"retry_wait_seconds"`
	RetryAttempts    int     `toml:"retry_attempts"`
	RateLimit        float64 `toml:"rate_limit"`
	UserAgent        string  `toml:"user_agent"`
}

// Timeout returns the request timeout as a [time.Duration]. Zero means no timeout.
func (c HTTPConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetryWait returns the rate-limit backoff as a [time.Duration].
func (c HTTPConfig) RetryWait() time.Duration {
	return time.Duration(c.RetryWaitSeconds) * time.Second
}

// OutputConfig contains default output settings.
type OutputConfig struct {
	Dir         string `toml:"dir"`
	Format      string `toml:"format"`
	Compression string `toml:"compression"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
