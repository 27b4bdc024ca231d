package retry

import (
	"context"
	"time"
)

// Policy describes how often and how patiently an operation is retried.
type Policy struct {
	Attempts  int
	BaseDelay time.Duration
	// MaxDelay caps the exponential backoff. Zero means no cap.
	MaxDelay time.Duration
	// OnError is called after every failed attempt, starting at 1.
	OnError func(attempt int, err error)
}

// Do executes fn up to p.Attempts times with exponential backoff.
// It stops early if the context is canceled.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	delay := p.BaseDelay

	for i := 0; i < attempts; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err = fn(ctx); err == nil {
			return nil
		}
		if p.OnError != nil {
			p.OnError(i+1, err)
		}

		if i == attempts-1 {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}
	return err
}

// DoWithRetry executes fn up to attempts times with exponential backoff.
func DoWithRetry(ctx context.Context, attempts int, baseDelay time.Duration, fn func() error) error {
	return Policy{Attempts: attempts, BaseDelay: baseDelay}.Do(ctx, func(context.Context) error {
		return fn()
	})
}
