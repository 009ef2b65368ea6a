package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestLimiter(rpm int) (*rateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := newRateLimiter(rpm)
	rl.now = clock.now
	rl.lastRefill = clock.t
	return rl, clock
}

func TestRateLimiter_Burst(t *testing.T) {
	rl, _ := newTestLimiter(3)

	for i := 0; i < 3; i++ {
		assert.Zero(t, rl.reserve(), "request %d", i)
	}
	assert.Equal(t, 20*time.Second, rl.reserve())
}

func TestRateLimiter_Refill(t *testing.T) {
	rl, clock := newTestLimiter(6)
	for i := 0; i < 6; i++ {
		require.Zero(t, rl.reserve())
	}

	clock.t = clock.t.Add(15 * time.Second)
	assert.Zero(t, rl.reserve(), "one token earned after 10s")
	assert.Equal(t, 5*time.Second, rl.reserve())

	clock.t = clock.t.Add(time.Hour)
	for i := 0; i < 6; i++ {
		assert.Zero(t, rl.reserve())
	}
	assert.NotZero(t, rl.reserve(), "refill is capped at capacity")
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := newRateLimiter(0)
	assert.Nil(t, rl)
	assert.NoError(t, rl.wait(context.Background()))
}

func TestRateLimiter_WaitCanceled(t *testing.T) {
	rl, _ := newTestLimiter(1)
	require.NoError(t, rl.wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := rl.wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
