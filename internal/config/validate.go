package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validation constants define acceptable bounds for configuration values
const (
	// Token validation
	minTokenLength = 50 // Discord tokens are typically 50+ characters

	// StatusInterval validation
	minStatusInterval = 1 * time.Minute // Minimum to avoid excessive API calls
	maxStatusInterval = 24 * time.Hour  // Presence would be stale beyond this

	// CommandPrefix validation
	maxCommandPrefixLength = 5

	// BattleMetrics timeout validation
	maxAPITimeout = 2 * time.Minute
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "text"}
)

// Validate checks if the configuration values are valid and within acceptable ranges.
// It returns all validation errors at once using errors.Join for better user experience.
//
// Validated fields:
//   - Token: Must be at least 50 characters (Discord token format)
//   - StatusInterval: Must be between 1m and 24h
//   - CommandPrefix: 1 to 5 characters without whitespace
//   - Storage: either DATABASE_URL or TRACKED_SERVERS_FILE must be set
//   - BattleMetrics: absolute http(s) base URL and a timeout between 0 and 2m
//   - Logging: known level and format
func (c *Config) Validate() error {
	var errs []error

	if err := c.validateToken(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateStatusInterval(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateCommandPrefix(); err != nil {
		errs = append(errs, err)
	}

	if c.DatabaseURL == "" && c.TrackedServersFile == "" {
		errs = append(errs, fmt.Errorf("either DATABASE_URL or TRACKED_SERVERS_FILE must be set"))
	}

	if err := c.BattleMetrics.Validate(); err != nil {
		errs = append(errs, err)
	}

	if err := validateOneOf("LOG_LEVEL", strings.ToLower(c.LogLevel), validLogLevels); err != nil {
		errs = append(errs, err)
	}

	if err := validateOneOf("LOG_FORMAT", strings.ToLower(c.LogFormat), validLogFormats); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

// Validate checks the API settings. A missing token is not an error here.
func (b *BattleMetrics) Validate() error {
	var errs []error

	u, err := url.Parse(b.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("BATTLEMETRICS_BASE_URL must be an absolute http(s) URL, got %q", b.BaseURL))
	}

	if b.Timeout <= 0 || b.Timeout > maxAPITimeout {
		errs = append(errs, fmt.Errorf(
			"BATTLEMETRICS_TIMEOUT must be between 0 and %v, got %v",
			maxAPITimeout, b.Timeout,
		))
	}

	return errors.Join(errs...)
}

// validateToken ensures the Discord token is present and has valid length
func (c *Config) validateToken() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required but not set")
	}

	if len(c.Token) < minTokenLength {
		return fmt.Errorf(
			"DISCORD_TOKEN appears invalid (too short: %d chars, expected %d+)",
			len(c.Token), minTokenLength,
		)
	}

	return nil
}

// validateStatusInterval ensures the presence refresh interval is within acceptable bounds
func (c *Config) validateStatusInterval() error {
	if c.StatusInterval < minStatusInterval {
		return fmt.Errorf(
			"STATUS_INTERVAL must be at least %v to avoid excessive API calls, got %v (hint: the default is 60m)",
			minStatusInterval, c.StatusInterval,
		)
	}

	if c.StatusInterval > maxStatusInterval {
		return fmt.Errorf(
			"STATUS_INTERVAL must be at most %v, got %v",
			maxStatusInterval, c.StatusInterval,
		)
	}

	return nil
}

func (c *Config) validateCommandPrefix() error {
	if c.CommandPrefix == "" {
		return fmt.Errorf("COMMAND_PREFIX cannot be empty")
	}

	if len(c.CommandPrefix) > maxCommandPrefixLength {
		return fmt.Errorf(
			"COMMAND_PREFIX must be at most %d characters, got %d",
			maxCommandPrefixLength, len(c.CommandPrefix),
		)
	}

	if strings.ContainsAny(c.CommandPrefix, " \t\n") {
		return fmt.Errorf("COMMAND_PREFIX cannot contain whitespace")
	}

	return nil
}

func validateOneOf(fieldName, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", fieldName, strings.Join(allowed, ", "), value)
}
