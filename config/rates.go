package config

import (
	"sync"
	"time"
)

// FeeRates are the club-wide default fee rates applied when a match carries
// no rates of its own.
type FeeRates struct {
	LateFeeRate  float64
	VideoFeeRate float64
}

// RateProvider hands out the current default fee rates, re-running its
// loader when the cached value is older than the TTL. Services receive a
// provider instead of reading configuration directly.
type RateProvider struct {
	mu       sync.RWMutex
	ttl      time.Duration
	loadedAt time.Time
	rates    FeeRates
	loader   func() FeeRates
}

// NewRateProvider builds a provider around the given loader. A TTL of zero
// loads once and never refreshes.
func NewRateProvider(ttl time.Duration, loader func() FeeRates) *RateProvider {
	return &RateProvider{ttl: ttl, loader: loader}
}

// NewRateProviderFromConfig wires the provider to the loaded application
// configuration.
func NewRateProviderFromConfig(cfg *Config) *RateProvider {
	return NewRateProvider(
		time.Duration(cfg.Fees.RateTTLSeconds)*time.Second,
		func() FeeRates {
			return FeeRates{
				LateFeeRate:  cfg.Fees.DefaultLateFeeRate,
				VideoFeeRate: cfg.Fees.DefaultVideoFeeRate,
			}
		},
	)
}

// Current returns the cached rates, refreshing them first if stale.
func (p *RateProvider) Current() FeeRates {
	p.mu.RLock()
	fresh := !p.loadedAt.IsZero() && (p.ttl <= 0 || time.Since(p.loadedAt) < p.ttl)
	rates := p.rates
	p.mu.RUnlock()
	if fresh {
		return rates
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	// Another goroutine may have refreshed while we waited for the lock.
	if p.loadedAt.IsZero() || (p.ttl > 0 && time.Since(p.loadedAt) >= p.ttl) {
		p.rates = p.loader()
		p.loadedAt = time.Now()
	}
	return p.rates
}
