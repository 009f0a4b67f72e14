package handler

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"match-service/internal/metrics"
	"match-service/internal/response"
)

// RetryPolicy bounds the automatic retry of transient store conflicts
type RetryPolicy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy returns three attempts with a short exponential backoff
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		InitialInterval: 25 * time.Millisecond,
		MaxInterval:     250 * time.Millisecond,
	}
}

// retrier re-runs an operation while it fails with TRANSIENT_STORE_ERROR.
// Other errors stop the loop immediately.
type retrier struct {
	policy  RetryPolicy
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func newRetrier(policy RetryPolicy, logger *zap.Logger, m *metrics.Metrics) *retrier {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.InitialInterval <= 0 {
		policy.InitialInterval = DefaultRetryPolicy().InitialInterval
	}
	if policy.MaxInterval < policy.InitialInterval {
		policy.MaxInterval = policy.InitialInterval
	}
	return &retrier{policy: policy, logger: logger, metrics: m}
}

func (r *retrier) do(ctx context.Context, operation string, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.policy.InitialInterval
	b.MaxInterval = r.policy.MaxInterval
	b.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(r.policy.MaxAttempts-1)), ctx)

	op := func() error {
		err := fn()
		if err != nil && !response.IsCode(err, response.ErrCodeTransient) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		r.metrics.IncrementTransientRetry(operation)
		r.logger.Warn("Retrying after transient store error",
			zap.String("operation", operation),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)
	}
	return backoff.RetryNotify(op, policy, notify)
}
