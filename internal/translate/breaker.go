package translate

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

const (
	breakerFailureThreshold = 3
	breakerCooldown         = 30 * time.Second
)

// BreakerProvider wraps another provider with a circuit breaker. After
// three consecutive failures the breaker opens and further calls fail
// immediately with gobreaker.ErrOpenState until the cooldown elapses.
type BreakerProvider struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps inner with a fresh breaker.
func NewBreakerProvider(inner Provider) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:        inner.Name(),
		MaxRequests: 1,
		Timeout:     breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
	}

	return &BreakerProvider{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate runs the wrapped provider through the breaker.
func (p *BreakerProvider) Translate(ctx context.Context, prompt string) (string, error) {
	reply, err := p.cb.Execute(func() (any, error) {
		return p.inner.Translate(ctx, prompt)
	})
	if err != nil {
		return "", err
	}
	return reply.(string), nil
}

// Name returns the wrapped provider's name
func (p *BreakerProvider) Name() string {
	return p.inner.Name()
}
