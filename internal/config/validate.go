package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("rate_limit: requests_per_second must be > 0 (got %v)", c.RateLimit.RequestsPerSecond)
		}
		if c.RateLimit.Burst < 1 {
			return fmt.Errorf("rate_limit: burst must be >= 1 (got %d)", c.RateLimit.Burst)
		}
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.MinEaseFactor < 1.3 {
		return fmt.Errorf("min_ease_factor must be >= 1.3 (got %v)", s.MinEaseFactor)
	}
	if s.DefaultEaseFactor < s.MinEaseFactor {
		return fmt.Errorf("default_ease_factor must be >= min_ease_factor (got %v < %v)", s.DefaultEaseFactor, s.MinEaseFactor)
	}
	return nil
}

func (s *StudyConfig) validate() error {
	if s.NewLimit < 1 {
		return fmt.Errorf("new_limit must be >= 1 (got %d)", s.NewLimit)
	}
	if s.QuizLimit < 1 {
		return fmt.Errorf("quiz_limit must be >= 1 (got %d)", s.QuizLimit)
	}
	if s.StreakMinReviews < 0 {
		return fmt.Errorf("streak_min_reviews must be >= 0 (got %d)", s.StreakMinReviews)
	}
	if s.MaxRetryPasses < 0 {
		return fmt.Errorf("max_retry_passes must be >= 0 (got %d)", s.MaxRetryPasses)
	}
	if s.IdleTimeout <= 0 {
		return fmt.Errorf("idle_timeout must be > 0 (got %s)", s.IdleTimeout)
	}
	if s.ReapInterval <= 0 {
		return fmt.Errorf("reap_interval must be > 0 (got %s)", s.ReapInterval)
	}
	if s.ConceptCacheSize < 0 {
		return fmt.Errorf("concept_cache_size must be >= 0 (got %d)", s.ConceptCacheSize)
	}
	return nil
}
