package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360/ringkit/errors"
	"github.com/c360/ringkit/pkg/retry"
)

// Config contains configuration for cache creation.
type Config struct {
	// Enabled determines if caching is enabled.
	Enabled bool `json:"enabled" yaml:"enabled" schema:"editable,type:bool,description:Enable caching"`

	// MaxWeight is the total weight budget for resident entries.
	MaxWeight int64 `json:"max_weight" yaml:"max_weight" schema:"editable,type:int,description:Total weight budget for resident entries,min:1"`

	// MaxRetries is the number of additional load attempts for transient failures.
	MaxRetries int `json:"max_retries" yaml:"max_retries" schema:"editable,type:int,description:Additional load attempts for transient failures,min:0"`

	// InitialDelay is the first backoff delay between load attempts.
	InitialDelay time.Duration `json:"initial_delay" yaml:"initial_delay" schema:"editable,type:string,description:First backoff delay between load attempts"`

	// MaxDelay is the ceiling for backoff delays between load attempts.
	MaxDelay time.Duration `json:"max_delay" yaml:"max_delay" schema:"editable,type:string,description:Ceiling for backoff delays between load attempts"`
}

// DefaultConfig returns a default cache configuration.
func DefaultConfig() Config {
	rc := errors.DefaultRetryConfig()
	return Config{
		Enabled:      true,
		MaxWeight:    1 << 20,
		MaxRetries:   rc.MaxRetries,
		InitialDelay: rc.InitialDelay,
		MaxDelay:     rc.MaxDelay,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil // No validation needed if disabled
	}

	if c.MaxWeight < 1 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "cache", "Validate",
			fmt.Sprintf("max_weight must be at least 1, got %d", c.MaxWeight))
	}
	if c.MaxRetries < 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "cache", "Validate",
			fmt.Sprintf("max_retries cannot be negative, got %d", c.MaxRetries))
	}
	if c.InitialDelay < 0 || c.MaxDelay < 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "cache", "Validate",
			"backoff delays cannot be negative")
	}
	if c.MaxDelay > 0 && c.InitialDelay > 0 && c.MaxDelay < c.InitialDelay {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "cache", "Validate",
			"max_delay must be >= initial_delay")
	}

	return nil
}

// RetryConfig converts the config's backoff fields into a retry.Config,
// filling unset fields with defaults.
func (c Config) RetryConfig() retry.Config {
	rc := errors.RetryConfig{
		MaxRetries:    c.MaxRetries,
		InitialDelay:  c.InitialDelay,
		MaxDelay:      c.MaxDelay,
		BackoffFactor: 2.0,
	}
	if rc.InitialDelay == 0 {
		rc.InitialDelay = errors.DefaultRetryConfig().InitialDelay
	}
	if rc.MaxDelay == 0 {
		rc.MaxDelay = errors.DefaultRetryConfig().MaxDelay
	}
	return rc.ToRetryConfig()
}

// UnmarshalJSON parses a Config, accepting duration fields as either Go
// duration strings ("250ms", "5s") or integer nanoseconds.
func (c *Config) UnmarshalJSON(data []byte) error {
	type alias struct {
		Enabled      bool            `json:"enabled"`
		MaxWeight    int64           `json:"max_weight"`
		MaxRetries   int             `json:"max_retries"`
		InitialDelay json.RawMessage `json:"initial_delay"`
		MaxDelay     json.RawMessage `json:"max_delay"`
	}

	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	c.Enabled = aux.Enabled
	c.MaxWeight = aux.MaxWeight
	c.MaxRetries = aux.MaxRetries

	if len(aux.InitialDelay) > 0 {
		d, err := parseDurationField(aux.InitialDelay, "initial_delay")
		if err != nil {
			return err
		}
		c.InitialDelay = d
	}
	if len(aux.MaxDelay) > 0 {
		d, err := parseDurationField(aux.MaxDelay, "max_delay")
		if err != nil {
			return err
		}
		c.MaxDelay = d
	}

	return nil
}

// parseDurationField parses a JSON duration field that can be either:
// - An integer (nanoseconds) for backward compatibility
// - A string (duration like "1h", "5m", "30s")
func parseDurationField(data json.RawMessage, fieldName string) (time.Duration, error) {
	// Try parsing as string first (most common case)
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		duration, err := time.ParseDuration(str)
		if err != nil {
			return 0, fmt.Errorf("invalid duration string for %s: %w", fieldName, err)
		}
		return duration, nil
	}

	// Fall back to integer (nanoseconds) for backward compatibility
	var nsec int64
	if err := json.Unmarshal(data, &nsec); err != nil {
		return 0, fmt.Errorf("field %s must be either a duration string (e.g., '1h') or integer nanoseconds", fieldName)
	}
	return time.Duration(nsec), nil
}

// UnmarshalYAML parses a Config, accepting duration fields as Go duration
// strings or integer nanoseconds.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type alias struct {
		Enabled      bool      `yaml:"enabled"`
		MaxWeight    int64     `yaml:"max_weight"`
		MaxRetries   int       `yaml:"max_retries"`
		InitialDelay yaml.Node `yaml:"initial_delay"`
		MaxDelay     yaml.Node `yaml:"max_delay"`
	}

	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	c.Enabled = aux.Enabled
	c.MaxWeight = aux.MaxWeight
	c.MaxRetries = aux.MaxRetries

	if !aux.InitialDelay.IsZero() {
		d, err := parseYAMLDuration(&aux.InitialDelay, "initial_delay")
		if err != nil {
			return err
		}
		c.InitialDelay = d
	}
	if !aux.MaxDelay.IsZero() {
		d, err := parseYAMLDuration(&aux.MaxDelay, "max_delay")
		if err != nil {
			return err
		}
		c.MaxDelay = d
	}

	return nil
}

// parseYAMLDuration mirrors parseDurationField for YAML nodes.
func parseYAMLDuration(node *yaml.Node, fieldName string) (time.Duration, error) {
	if node.Tag == "!!int" {
		var nsec int64
		if err := node.Decode(&nsec); err != nil {
			return 0, fmt.Errorf("invalid nanosecond value for %s: %w", fieldName, err)
		}
		return time.Duration(nsec), nil
	}

	var str string
	if err := node.Decode(&str); err != nil {
		return 0, fmt.Errorf("field %s must be either a duration string (e.g., '1h') or integer nanoseconds", fieldName)
	}
	duration, err := time.ParseDuration(str)
	if err != nil {
		return 0, fmt.Errorf("invalid duration string for %s: %w", fieldName, err)
	}
	return duration, nil
}

// ConfigFromJSON parses and validates a Config from JSON.
func ConfigFromJSON(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.WrapInvalid(err, "cache", "ConfigFromJSON", "parse")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFromYAML parses and validates a Config from YAML.
func ConfigFromYAML(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.WrapInvalid(err, "cache", "ConfigFromYAML", "parse")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
