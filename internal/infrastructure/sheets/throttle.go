package sheets

import (
	"context"
	"errors"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

const (
	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 10 * time.Second
	DefaultMaxRetries        = 3
)

// Throttle spaces outgoing calls and retries quota rejections.
//
// The limiter allows a burst of requests and then refills one slot every
// window/requests, so the N+1th call inside a window waits instead of
// hitting the store's quota.
type Throttle struct {
	limiter         *rate.Limiter
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
}

func NewThrottle(requests int, window time.Duration, maxRetries int) *Throttle {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if requests > 0 && window > 0 {
		limiter = rate.NewLimiter(rate.Every(window/time.Duration(requests)), requests)
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Throttle{
		limiter:         limiter,
		maxRetries:      maxRetries,
		initialInterval: 500 * time.Millisecond,
		maxInterval:     5 * time.Second,
	}
}

// WithBackoff overrides the retry intervals.
func (t *Throttle) WithBackoff(initial, max time.Duration) *Throttle {
	t.initialInterval = initial
	t.maxInterval = max
	return t
}

// Do runs fn after waiting for a slot. Only apperr.ErrRateLimited is retried;
// any other error is returned as is.
func (t *Throttle) Do(ctx context.Context, fn func(context.Context) error, onRetry func(error, time.Duration)) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = t.initialInterval
	b.MaxInterval = t.maxInterval
	b.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(t.maxRetries)), ctx)

	op := func() error {
		if err := t.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		err := fn(ctx)
		if err == nil || errors.Is(err, apperr.ErrRateLimited) {
			return err
		}
		return backoff.Permanent(err)
	}
	notify := func(err error, wait time.Duration) {
		if onRetry != nil {
			onRetry(err, wait)
		}
	}
	return backoff.RetryNotify(op, policy, notify)
}
