package config

import (
	"testing"
	"time"
)

// Every rate-limit class the limiter knows about must come out of Load with a
// usable budget; a zero limit silently rejects every request in that class.
func TestLoadRateLimitDefaults(t *testing.T) {
	cfg := Load()

	classes := map[string]int{
		"default":  cfg.RateLimit.DefaultRequests,
		"public":   cfg.RateLimit.PublicRequests,
		"auth":     cfg.RateLimit.AuthRequests,
		"checkout": cfg.RateLimit.CheckoutRequests,
		"admin":    cfg.RateLimit.AdminRequests,
		"support":  cfg.RateLimit.SupportRequests,
		"user":     cfg.RateLimit.UserRequests,
		"health":   cfg.RateLimit.HealthRequests,
	}
	for name, limit := range classes {
		if limit <= 0 {
			t.Errorf("rate limit class %q = %d, want a positive budget", name, limit)
		}
	}

	if cfg.RateLimit.WindowDuration <= 0 {
		t.Errorf("window duration = %v, want positive", cfg.RateLimit.WindowDuration)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("RATE_LIMIT_USER_REQUESTS", "7")
	t.Setenv("RATE_LIMIT_WINDOW_DURATION", "30s")

	cfg := Load()

	if cfg.RateLimit.UserRequests != 7 {
		t.Errorf("user requests = %d, want 7", cfg.RateLimit.UserRequests)
	}
	if cfg.RateLimit.WindowDuration != 30*time.Second {
		t.Errorf("window duration = %v, want 30s", cfg.RateLimit.WindowDuration)
	}
}
