package config

import "time"

// RateLimitConfig tunes the Redis token bucket that guards the auth
// endpoints against credential stuffing. When Redis is unavailable the
// limiter fails open.
type RateLimitConfig struct {
	Enabled        bool          // master switch
	Capacity       int           // bucket size (burst)
	RefillTokens   int           // tokens added per interval
	RefillInterval time.Duration // refill cadence
	TTL            time.Duration // idle bucket expiry in Redis
	Prefix         string        // Redis key namespace
}

// LoadRateLimitConfig reads the limiter settings from the environment,
// clamping values that would make the bucket unusable.
func LoadRateLimitConfig() RateLimitConfig {
	def := RateLimitConfig{
		Enabled:        getenvBool("RATE_LIMIT_ENABLED", true),
		Capacity:       getenvInt("RATE_LIMIT_CAPACITY", 20),
		RefillTokens:   getenvInt("RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval: getenvDur("RATE_LIMIT_REFILL_INTERVAL", time.Second),
		TTL:            getenvDur("RATE_LIMIT_TTL", 10*time.Minute),
		Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if def.Capacity < 1 {
		def.Capacity = 1
	}
	if def.RefillTokens < 1 {
		def.RefillTokens = 1
	}
	if def.RefillInterval <= 0 {
		def.RefillInterval = time.Second
	}
	if minTTL := 5 * def.RefillInterval; def.TTL < minTTL {
		def.TTL = minTTL
	}
	return def
}

func getenvDur(key string, def time.Duration) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}
