package common

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDo_SuccessOnFirstAttempt(t *testing.T) {
	ctx := context.Background()
	attempts := 0

	err := Do(ctx, func() error {
		attempts++
		return nil
	})

	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	ctx := context.Background()
	attempts := 0

	err := Do(ctx, func() error {
		attempts++
		if attempts < 3 {
			return errors.New("temporary failure")
		}
		return nil
	},
		WithMaxRetries(3),
		WithInitialDelay(time.Millisecond),
	)

	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestDo_AllAttemptsFail(t *testing.T) {
	ctx := context.Background()
	attempts := 0
	permanent := errors.New("permanent failure")

	err := Do(ctx, func() error {
		attempts++
		return permanent
	},
		WithMaxRetries(2),
		WithInitialDelay(time.Millisecond),
	)

	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if !errors.Is(err, permanent) {
		t.Errorf("expected wrapped permanent error, got: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts (1 + 2 retries), got %d", attempts)
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	err := Do(ctx, func() error {
		attempts++
		cancel() // 第一次失败后取消
		return errors.New("failure")
	},
		WithMaxRetries(5),
		WithInitialDelay(100*time.Millisecond),
	)

	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt before cancellation, got %d", attempts)
	}
}

func TestDo_NilFunction(t *testing.T) {
	err := Do(context.Background(), nil)
	if err == nil {
		t.Fatal("expected an error for nil function")
	}
}

func TestCalculateDelay(t *testing.T) {
	tests := []struct {
		name         string
		attempt      int
		initialDelay time.Duration
		maxDelay     time.Duration
		multiplier   float64
		expected     time.Duration
	}{
		{name: "first retry uses initial delay", attempt: 1, initialDelay: time.Second, maxDelay: 30 * time.Second, multiplier: 2.0, expected: time.Second},
		{name: "second retry doubles", attempt: 2, initialDelay: time.Second, maxDelay: 30 * time.Second, multiplier: 2.0, expected: 2 * time.Second},
		{name: "capped at max delay", attempt: 10, initialDelay: time.Second, maxDelay: 5 * time.Second, multiplier: 2.0, expected: 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateDelay(tt.attempt, tt.initialDelay, tt.maxDelay, tt.multiplier)
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
