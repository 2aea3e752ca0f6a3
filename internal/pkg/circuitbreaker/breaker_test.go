package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig() Config {
	return Config{
		Name:             "test",
		FailureThreshold: 3,
		SuccessThreshold: 1,
		OpenTimeout:      20 * time.Millisecond,
		Interval:         time.Minute,
	}
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	b := New(testConfig())
	boom := errors.New("provider down")

	for i := 0; i < 3; i++ {
		err := b.Do(context.Background(), func(ctx context.Context) error { return boom })
		assert.ErrorIs(t, err, boom)
	}

	assert.Equal(t, StateOpen, b.State())

	called := false
	err := b.Do(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, called, "open breaker must not run the call")
}

func TestBreaker_SuccessResetsFailureRun(t *testing.T) {
	b := New(testConfig())
	boom := errors.New("provider down")

	for i := 0; i < 2; i++ {
		_ = b.Do(context.Background(), func(ctx context.Context) error { return boom })
	}
	_ = b.Do(context.Background(), func(ctx context.Context) error { return nil })
	for i := 0; i < 2; i++ {
		_ = b.Do(context.Background(), func(ctx context.Context) error { return boom })
	}

	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_ProbeClosesAfterTimeout(t *testing.T) {
	b := New(testConfig())
	boom := errors.New("provider down")

	for i := 0; i < 3; i++ {
		_ = b.Do(context.Background(), func(ctx context.Context) error { return boom })
	}
	assert.Equal(t, StateOpen, b.State())

	time.Sleep(30 * time.Millisecond)

	err := b.Do(context.Background(), func(ctx context.Context) error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	b := New(testConfig())
	boom := errors.New("provider down")

	for i := 0; i < 3; i++ {
		_ = b.Do(context.Background(), func(ctx context.Context) error { return boom })
	}
	time.Sleep(30 * time.Millisecond)

	_ = b.Do(context.Background(), func(ctx context.Context) error { return boom })
	assert.Equal(t, StateOpen, b.State())
}
