package config

import "time"

// RateLimitConfig controls the fixed-window limiter applied to the login
// endpoint. Limit is the number of attempts allowed per Window for a
// single client IP.
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Window  time.Duration
	Prefix  string // redis key prefix
}

// LoadRateLimitConfig reads limiter settings from the environment. The
// defaults allow 10 login attempts per minute per IP, which is generous
// for humans and tight enough to blunt credential stuffing.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: envBool("RATE_LIMIT_ENABLED", true),
		Limit:   envInt("RATE_LIMIT_ATTEMPTS", 10),
		Window:  envDur("RATE_LIMIT_WINDOW", time.Minute),
		Prefix:  envStr("RATE_LIMIT_PREFIX", "rl:login"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}

func envBool(key string, def bool) bool {
	switch envStr(key, "") {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return def
}
