package config

import "time"

// RateLimitConfig drives the fixed-window request limiter. Counters
// live in Redis keyed per client IP and route; the limiter disables
// itself when Redis is unavailable.
type RateLimitConfig struct {
	Enabled bool
	Limit   int           // max requests per window
	Window  time.Duration // window length
	Prefix  string        // redis key namespace
}

// LoadRateLimitConfig reads rate-limit settings from environment
// variables, with defaults suitable for the auth endpoints.
func LoadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled: getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Limit:   atoi(getenv("RATE_LIMIT_MAX", "30")),
		Window:  parseDur(getenv("RATE_LIMIT_WINDOW", "1m")),
		Prefix:  getenv("RATE_LIMIT_PREFIX", "ratelimit"),
	}
}
