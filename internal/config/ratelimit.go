package config

import "time"

// RateLimitConfig controls the per-client fixed-window rate limiter.
type RateLimitConfig struct {
	Enabled bool          // RATE_LIMIT_ENABLED
	Limit   int           // RATE_LIMIT_REQUESTS, requests allowed per window
	Window  time.Duration // RATE_LIMIT_WINDOW
	Prefix  string        // RATE_LIMIT_PREFIX, key namespace in Redis
}

// LoadRateLimitConfig reads the rate limit settings with safe defaults.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: envBool("RATE_LIMIT_ENABLED", true),
		Limit:   envInt("RATE_LIMIT_REQUESTS", 60),
		Window:  envDur("RATE_LIMIT_WINDOW", time.Minute),
		Prefix:  envStr("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	// The limiter buckets time into whole seconds, so a window below
	// one second would divide by zero.
	if cfg.Window < time.Second {
		cfg.Window = time.Minute
	}
	return cfg
}
