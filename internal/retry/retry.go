package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy is an explicit retry policy injected into each external-call
// wrapper: max attempts plus an exponential backoff schedule. Callers mark
// non-retryable failures with backoff.Permanent to short-circuit.
type Policy struct {
	MaxAttempts     uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultPolicy matches the retry budget both platform clients run with:
// 3 attempts with exponential waits between 2 and 10 seconds. Callers must
// apply request timeouts larger than the worst-case budget.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:     3,
		InitialInterval: 2 * time.Second,
		MaxInterval:     10 * time.Second,
	}
}

// Do runs op under the policy, stopping early on context cancellation or a
// permanent error.
func (p Policy) Do(ctx context.Context, op backoff.Operation) error {
	attempts := p.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}

	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}
	b.Reset()

	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(b, attempts-1), ctx))
}
