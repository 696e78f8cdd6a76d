package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/samnmy/portfolio/physics"
)

// TestFrameLoopStopLeavesNoGoroutine verifies teardown cancels the recurring frame callback
func TestFrameLoopStopLeavesNoGoroutine(t *testing.T) {
	defer goleak.VerifyNone(t)

	loop := NewFrameLoop(time.Millisecond, nil, func(time.Time) {})
	loop.Start(context.Background())

	require.Eventually(t, func() bool { return loop.Frames() >= 5 }, time.Second, time.Millisecond)
	loop.Stop()

	frames := loop.Frames()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, frames, loop.Frames(), "frames ran after Stop")
	assert.False(t, loop.Running())

	// Idempotent
	loop.Stop()
}

// TestFrameLoopContextCancel verifies cancelling the context ends the loop
func TestFrameLoopContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	loop := NewFrameLoop(time.Millisecond, nil, nil)
	loop.Start(ctx)
	require.Eventually(t, func() bool { return loop.Frames() > 0 }, time.Second, time.Millisecond)

	cancel()
	require.Eventually(t, func() bool { return !loop.Running() }, time.Second, time.Millisecond)
	loop.Stop()
}

// TestFrameLoopPostAfterContextCancel verifies a loop ended by its context rejects jobs
// instead of queueing work that never runs
func TestFrameLoopPostAfterContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	loop := NewFrameLoop(time.Millisecond, nil, nil)
	loop.Start(ctx)
	require.Eventually(t, func() bool { return loop.Frames() > 0 }, time.Second, time.Millisecond)

	cancel()
	require.Eventually(t, func() bool { return !loop.Running() }, time.Second, time.Millisecond)

	ran := false
	assert.False(t, loop.Post(func() { ran = true }))

	// More posts than the queue holds must not block
	posted := make(chan struct{})
	go func() {
		for i := 0; i < jobQueueSize+1; i++ {
			loop.Post(func() {})
		}
		close(posted)
	}()
	select {
	case <-posted:
	case <-time.After(time.Second):
		t.Fatal("Post blocked after the loop exited")
	}

	assert.False(t, ran)
	loop.Stop()
}

// TestFrameLoopSerializesJobs verifies posted jobs and frames never overlap
func TestFrameLoopSerializesJobs(t *testing.T) {
	defer goleak.VerifyNone(t)

	// Unsynchronized on purpose: the race detector flags any overlap
	inFlight := 0
	overlaps := 0
	enter := func() {
		inFlight++
		if inFlight > 1 {
			overlaps++
		}
		time.Sleep(50 * time.Microsecond)
		inFlight--
	}

	loop := NewFrameLoop(time.Millisecond, nil, func(time.Time) { enter() })
	loop.Start(context.Background())

	done := make(chan struct{})
	for i := 0; i < 200; i++ {
		require.True(t, loop.Post(enter))
	}
	require.True(t, loop.Post(func() { close(done) }))
	<-done

	loop.Stop()
	assert.Zero(t, overlaps)
	assert.False(t, loop.Post(func() {}), "Post after Stop must be rejected")
}

// TestFrameLoopDrivesRotation runs the sphere physics on the loop with a steady mock clock
func TestFrameLoopDrivesRotation(t *testing.T) {
	defer goleak.VerifyNone(t)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)
	clock.SetStep(16 * time.Millisecond)

	rot := physics.NewRotation(physics.DefaultTuning(), start)
	angles := make(chan float64, 1024)

	loop := NewFrameLoop(time.Millisecond, clock, func(now time.Time) {
		select {
		case angles <- rot.OnFrame(now):
		default:
		}
	})
	loop.Start(context.Background())

	// Drag and release from the loop goroutine, as pointer handlers do
	released := make(chan struct{})
	require.True(t, loop.Post(func() {
		now := clock.Now()
		rot.OnDragStart(0, now)
		rot.OnDragMove(200, now.Add(20*time.Millisecond))
		rot.OnDragEnd()
		close(released)
	}))
	<-released

	var mode physics.Mode
	require.Eventually(t, func() bool {
		done := make(chan struct{})
		if !loop.Post(func() { mode = rot.Mode(); close(done) }) {
			return false
		}
		<-done
		return mode == physics.ModeAuto
	}, 5*time.Second, 5*time.Millisecond)

	loop.Stop()
	assert.NotEmpty(t, angles)
}
