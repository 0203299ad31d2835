package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Matcher.validate(); err != nil {
		return fmt.Errorf("matcher: %w", err)
	}

	if c.Images.MaxUploadMB <= 0 {
		return fmt.Errorf("images.max_upload_mb must be > 0 (got %d)", c.Images.MaxUploadMB)
	}
	if c.Images.MaxDimension <= 0 {
		return fmt.Errorf("images.max_dimension must be > 0 (got %d)", c.Images.MaxDimension)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (m *MatcherConfig) validate() error {
	u, err := url.Parse(m.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", m.BaseURL)
	}
	if m.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", m.Timeout)
	}
	if m.TopK <= 0 {
		return fmt.Errorf("top_k must be > 0 (got %d)", m.TopK)
	}
	return nil
}
