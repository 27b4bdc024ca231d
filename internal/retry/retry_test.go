package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDoStopsOnSuccess(t *testing.T) {
	calls := 0
	err := DoWithRetry(context.Background(), 5, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestDoReturnsLastError(t *testing.T) {
	boom := errors.New("boom")
	var seen []int
	p := Policy{
		Attempts:  3,
		BaseDelay: time.Millisecond,
		MaxDelay:  2 * time.Millisecond,
		OnError:   func(attempt int, err error) { seen = append(seen, attempt) },
	}
	err := p.Do(context.Background(), func(context.Context) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if len(seen) != 3 || seen[2] != 3 {
		t.Fatalf("unexpected attempts %v", seen)
	}
}

func TestDoHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Policy{Attempts: 10, BaseDelay: time.Hour}.Do(ctx, func(context.Context) error {
		calls++
		cancel()
		return errors.New("fail")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single call, got %d", calls)
	}
}
