// Package retry implements bounded fixed-delay retries for API calls.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy describes how an operation is retried: a total attempt
// budget, a fixed delay between attempts, and a predicate deciding
// which errors are worth another try. Errors the predicate rejects
// abort immediately (authentication expiry must never be retried).
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
	Retryable   func(error) bool

	// OnRetry is invoked before each re-attempt with the 1-based
	// number of the attempt that just failed.
	OnRetry func(attempt int, err error)
}

// Fixed returns a Policy with a constant delay between attempts and no
// error classification (everything retries).
func Fixed(maxAttempts int, delay time.Duration) Policy {
	return Policy{MaxAttempts: maxAttempts, Delay: delay}
}

// Do runs op until it succeeds, the attempt budget is exhausted, the
// error is classified non-retryable, or ctx is done. The last error is
// returned; wrapped sentinels survive for errors.Is checks.
func Do(ctx context.Context, p Policy, op func(context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Delay), uint64(attempts-1)),
		ctx,
	)

	attempt := 0
	wrapped := func() error {
		attempt++
		err := op(ctx)
		if err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, _ time.Duration) {
		if p.OnRetry != nil {
			p.OnRetry(attempt, err)
		}
	}

	return backoff.RetryNotify(wrapped, bo, notify)
}
