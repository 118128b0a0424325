package api

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy configures the exponential backoff used for rate-limited calls
type RetryPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxRetries      uint64
}

// DefaultRetryPolicy backs off 1s, 2s, 4s, 8s before giving up
var DefaultRetryPolicy = RetryPolicy{
	InitialInterval: 1 * time.Second,
	MaxInterval:     8 * time.Second,
	MaxRetries:      4,
}

// retryAfterBackOff prefers a server supplied Retry-After delay over the
// computed exponential delay.
type retryAfterBackOff struct {
	backoff.BackOff
	hint time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if next == backoff.Stop || b.hint <= 0 {
		return next
	}
	hint := b.hint
	b.hint = 0
	return hint
}

// WithRetry executes fn, retrying with exponential backoff while it fails
// with a rate limit error. Any other error is returned immediately.
func WithRetry(ctx context.Context, policy RetryPolicy, fn func() error) error {
	return WithRetryNotify(ctx, policy, fn, nil)
}

// WithRetryNotify is WithRetry with a callback invoked before each retry
func WithRetryNotify(ctx context.Context, policy RetryPolicy, fn func() error, notify func(err error, delay time.Duration)) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = policy.InitialInterval
	exp.MaxInterval = policy.MaxInterval
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.MaxElapsedTime = 0

	bo := &retryAfterBackOff{BackOff: backoff.WithMaxRetries(exp, policy.MaxRetries)}

	op := func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if !IsRateLimited(err) {
			return backoff.Permanent(err)
		}
		bo.hint = GetRetryAfter(err)
		return err
	}

	return backoff.RetryNotify(op, backoff.WithContext(bo, ctx), notify)
}
