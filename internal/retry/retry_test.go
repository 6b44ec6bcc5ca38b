package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errBoom = errors.New("boom")

func TestExhaustsAttempts(t *testing.T) {
	calls := 0
	p := Fixed(3, time.Millisecond)

	err := Do(context.Background(), p, func(context.Context) error {
		calls++
		return errBoom
	})

	if !errors.Is(err, errBoom) {
		t.Fatalf("want last error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("calls: got %d, want 3", calls)
	}
}

func TestSucceedsOnSecondAttempt(t *testing.T) {
	calls := 0
	retries := 0
	p := Fixed(3, time.Millisecond)
	p.OnRetry = func(attempt int, err error) {
		retries++
		if attempt != 1 {
			t.Errorf("OnRetry attempt: got %d, want 1", attempt)
		}
	}

	err := Do(context.Background(), p, func(context.Context) error {
		calls++
		if calls < 2 {
			return errBoom
		}
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls: got %d, want 2", calls)
	}
	if retries != 1 {
		t.Errorf("retries: got %d, want 1", retries)
	}
}

func TestNonRetryableAbortsImmediately(t *testing.T) {
	sentinel := errors.New("authentication required")
	calls := 0

	p := Fixed(3, time.Millisecond)
	p.Retryable = func(err error) bool {
		return !errors.Is(err, sentinel)
	}

	err := Do(context.Background(), p, func(context.Context) error {
		calls++
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("want sentinel error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("calls: got %d, want 1 (no retries on permanent errors)", calls)
	}
}

func TestFixedSpacing(t *testing.T) {
	const delay = 30 * time.Millisecond
	var stamps []time.Time

	p := Fixed(3, delay)
	err := Do(context.Background(), p, func(context.Context) error {
		stamps = append(stamps, time.Now())
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("want errBoom, got %v", err)
	}
	if len(stamps) != 3 {
		t.Fatalf("attempts: got %d, want 3", len(stamps))
	}

	for i := 1; i < len(stamps); i++ {
		gap := stamps[i].Sub(stamps[i-1])
		if gap < delay {
			t.Errorf("gap %d: got %v, want >= %v", i, gap, delay)
		}
	}
}

func TestContextCancellationStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	p := Fixed(5, 50*time.Millisecond)
	err := Do(ctx, p, func(context.Context) error {
		calls++
		cancel()
		return errBoom
	})

	if err == nil {
		t.Fatal("want error after cancellation")
	}
	if calls != 1 {
		t.Errorf("calls: got %d, want 1", calls)
	}
}
