package reveal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestPhase_Slots(t *testing.T) {
	assert.Equal(t, 5, Collapsed.Slots())
	assert.Equal(t, 15, Expanded.Slots())
	assert.Equal(t, "collapsed", Collapsed.String())
	assert.Equal(t, "expanded", Expanded.String())
}

func TestNewScheduler_DefaultDelay(t *testing.T) {
	assert.Equal(t, DefaultDelay, NewScheduler(0).Delay())
	assert.Equal(t, 2*time.Second, NewScheduler(-1).Delay())
	assert.Equal(t, time.Second, NewScheduler(time.Second).Delay())
}

func TestScheduler_FiresOnceAfterDelay(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s := NewScheduler(30 * time.Millisecond)
	var fired []Phase
	start := time.Now()

	err := s.Run(context.Background(), func(p Phase) { fired = append(fired, p) })
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	assert.Equal(t, []Phase{Expanded}, fired)
}

func TestScheduler_CancelledBeforeFire(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s := NewScheduler(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	called := false
	go func() {
		done <- s.Run(ctx, func(Phase) { called = true })
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.False(t, called)
}
