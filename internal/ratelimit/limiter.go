package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// DomainLimiter throttles calls per travel domain ("flights", "hotels",
// "activities", "payments"), modeling the request quotas real provider
// APIs would impose.
type DomainLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults RateLimitConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewDomainLimiter(config RateLimitConfig) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func NewDomainLimiterWithDefaults() *DomainLimiter {
	return NewDomainLimiter(DefaultConfig())
}

func (d *DomainLimiter) GetLimiter(domain string) *rate.Limiter {
	d.mu.RLock()
	limiter, exists := d.limiters[domain]
	d.mu.RUnlock()

	if exists {
		return limiter
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if limiter, exists = d.limiters[domain]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(d.defaults.RequestsPerSecond), d.defaults.BurstSize)
	d.limiters[domain] = limiter
	return limiter
}

func (d *DomainLimiter) SetDomainLimit(domain string, rps float64, burst int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.limiters[domain] = rate.NewLimiter(rate.Limit(rps), burst)
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.GetLimiter(domain).Wait(ctx)
}
