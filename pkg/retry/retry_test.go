package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDoWithResult(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		result, err := DoWithResult(ctx, fastConfig(), func() (int, error) {
			calls++
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, result)
		assert.Equal(t, 1, calls)
	})

	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		result, err := DoWithResult(ctx, fastConfig(), func() (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("transient")
			}
			return "done", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "done", result)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhausts attempts and returns last error", func(t *testing.T) {
		calls := 0
		_, err := DoWithResult(ctx, fastConfig(), func() (int, error) {
			calls++
			return 0, fmt.Errorf("failure %d", calls)
		})

		assert.EqualError(t, err, "failure 3")
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retryable error aborts immediately", func(t *testing.T) {
		cfg := fastConfig()
		cfg.RetryableErrors = []string{"connection refused"}

		calls := 0
		_, err := DoWithResult(ctx, cfg, func() (int, error) {
			calls++
			return 0, errors.New("syntax error")
		})

		assert.EqualError(t, err, "syntax error")
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		cancelledCtx, cancel := context.WithCancel(ctx)
		cancel()

		calls := 0
		_, err := DoWithResult(cancelledCtx, fastConfig(), func() (int, error) {
			calls++
			return 0, errors.New("transient")
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls)
	})

	t.Run("invalid max attempts", func(t *testing.T) {
		_, err := DoWithResult(ctx, Config{}, func() (int, error) {
			return 0, nil
		})
		assert.ErrorContains(t, err, "MaxAttempts")
	})
}

func TestDo(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(), func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestIsRetryableError(t *testing.T) {
	cfg := PostgresConfig()

	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil", nil, false},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), true},
		{"starting up", errors.New("FATAL: the database system is starting up"), true},
		{"case insensitive", errors.New("CONNECTION RESET by peer"), true},
		{"auth failure", errors.New("password authentication failed"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, IsRetryableError(tt.err, cfg))
		})
	}
}

func TestIsRetryableError_NoPatterns(t *testing.T) {
	assert.True(t, IsRetryableError(errors.New("anything"), DefaultConfig()))
}

func TestBackoff(t *testing.T) {
	cfg := Config{
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     time.Second,
		Multiplier:   2.0,
	}

	// Jitter is ±10%, so check bands rather than exact values.
	for i, expected := range []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
		time.Second, // capped
		time.Second, // still capped
	} {
		delay := backoff(i, cfg)
		assert.InDelta(t, float64(expected), float64(delay), float64(expected)*0.11,
			"attempt %d", i)
	}
}
