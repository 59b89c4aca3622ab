package common

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/Veraticus/wastewise/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "info", "json")
	require.NoError(t, err)

	logger.Info("classified", "material", "Cardboard")
	assert.Contains(t, buf.String(), `"material":"Cardboard"`)

	_, err = NewLogger(&buf, "info", "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLogHelpers_SortedFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "debug", "json")
	require.NoError(t, err)

	prev := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(prev) })

	LogInfo("Starting simulation", Fields{"workers": 4, "runs": 100})
	LogDebug("Loaded catalog", Fields{"profiles": 5})

	out := buf.String()
	assert.Contains(t, out, `"msg":"Starting simulation","runs":100,"workers":4`)
	assert.Contains(t, out, `"level":"DEBUG","msg":"Loaded catalog","profiles":5`)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "unavailable", err: fmt.Errorf("model: %w", ErrClassificationUnavailable), want: true},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "configuration", err: ErrConfiguration, want: false},
		{name: "explicit retryable", err: &RetryableError{Err: errors.New("flaky"), Retryable: true}, want: true},
		{name: "explicit permanent", err: &RetryableError{Err: errors.New("broken"), Retryable: false}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestWithRetry(t *testing.T) {
	opts := service.RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return ErrClassificationUnavailable
			}
			return nil
		}, opts)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on permanent error", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			return ErrConfiguration
		}, opts)
		assert.ErrorIs(t, err, ErrConfiguration)
		assert.Equal(t, 1, calls)
	})

	t.Run("exhausts attempts", func(t *testing.T) {
		err := WithRetry(context.Background(), func() error {
			return ErrClassificationUnavailable
		}, opts)
		assert.ErrorIs(t, err, ErrMaxRetries)
		assert.ErrorIs(t, err, ErrClassificationUnavailable)
	})
}

func TestUserError(t *testing.T) {
	err := NewUserError("catalog could not be loaded", ErrConfiguration)
	assert.Equal(t, "catalog could not be loaded: configuration error", err.Error())
	assert.ErrorIs(t, err, ErrConfiguration)
}
