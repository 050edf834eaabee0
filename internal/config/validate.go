package config

import (
	"fmt"
	"os"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
		}
		if c.RateLimit.CleanupInterval <= 0 {
			return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
		}
	}

	if err := c.Rules.validate(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}

	return nil
}

func (s *ServerConfig) validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", s.Port)
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 || s.IdleTimeout <= 0 {
		return fmt.Errorf("timeouts must be > 0")
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be > 0 (got %v)", s.ShutdownTimeout)
	}
	return nil
}

func (r *RulesConfig) validate() error {
	if r.MaxTextLength <= 0 {
		return fmt.Errorf("max_text_length must be > 0 (got %d)", r.MaxTextLength)
	}
	if r.MaxPatternLength <= 0 {
		return fmt.Errorf("max_pattern_length must be > 0 (got %d)", r.MaxPatternLength)
	}
	if r.SeedPath != "" {
		if _, err := os.Stat(r.SeedPath); err != nil {
			return fmt.Errorf("seed_path: %w", err)
		}
	}
	return nil
}
