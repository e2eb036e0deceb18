package config

import "time"

// CacheConfig controls the Redis response cache applied to read-only
// endpoints.  When Enabled is false or no Redis client could be
// constructed, the cache middleware becomes a pass-through.
type CacheConfig struct {
	Enabled      bool          // CACHE_ENABLED
	TTL          time.Duration // CACHE_TTL, lifetime of cached responses
	Prefix       string        // CACHE_PREFIX, key namespace in Redis
	MaxBodyBytes int           // CACHE_MAX_BODY_BYTES, responses above this size are not cached
}

// LoadCacheConfig reads the cache settings with defaults suitable for
// short-lived search results: availability changes with every booking,
// so entries stay fresh for seconds, not minutes.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDur("CACHE_TTL", 30*time.Second),
		Prefix:       envStr("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
