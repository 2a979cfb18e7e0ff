package ratelimit

import "testing"

func TestGetRateLimitType(t *testing.T) {
	tests := []struct {
		path string
		want RateLimitType
	}{
		{"/health", RateLimitTypeHealth},
		{"/ping", RateLimitTypeHealth},
		{"/api/v1/admin/events", RateLimitTypeAdmin},
		{"/api/v1/admin/support/tickets", RateLimitTypeAdmin},
		{"/api/v1/support/tickets", RateLimitTypeSupport},
		{"/api/v1/auth/login", RateLimitTypeAuth},
		{"/api/v1/orders", RateLimitTypeCheckout},
		{"/api/verify-fees", RateLimitTypeCheckout},
		{"/api/v1/fees/quote", RateLimitTypeCheckout},
		{"/api/v1/events/upcoming", RateLimitTypePublic},
		{"/api/v1/currencies", RateLimitTypePublic},
		{"/api/v1/publisher/earnings", RateLimitTypeUser},
		{"/some/other/path", RateLimitTypeDefault},
	}

	for _, tt := range tests {
		if got := getRateLimitType(tt.path); got != tt.want {
			t.Errorf("getRateLimitType(%s) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestGetLimitPerClass(t *testing.T) {
	limiter := NewRateLimiter(nil, &Config{
		DefaultRequests:  60,
		PublicRequests:   100,
		AuthRequests:     10,
		CheckoutRequests: 20,
		AdminRequests:    200,
		SupportRequests:  30,
		UserRequests:     40,
		HealthRequests:   300,
	})

	tests := []struct {
		limitType RateLimitType
		want      int
	}{
		{RateLimitTypePublic, 100},
		{RateLimitTypeAuth, 10},
		{RateLimitTypeCheckout, 20},
		{RateLimitTypeAdmin, 200},
		{RateLimitTypeSupport, 30},
		{RateLimitTypeUser, 40},
		{RateLimitTypeHealth, 300},
		{RateLimitTypeDefault, 60},
		{RateLimitType("unknown"), 60},
	}

	for _, tt := range tests {
		if got := limiter.getLimit(tt.limitType); got != tt.want {
			t.Errorf("getLimit(%s) = %d, want %d", tt.limitType, got, tt.want)
		}
	}
}
