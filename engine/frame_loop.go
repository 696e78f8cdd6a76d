package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/samnmy/portfolio/core"
)

// FrameFunc is invoked once per frame with the frame timestamp
type FrameFunc func(now time.Time)

// jobQueueSize bounds input handlers waiting for the loop goroutine
const jobQueueSize = 64

// FrameLoop is the host frame scheduler
// Frames and posted jobs run on a single goroutine, so state they touch needs no locking
// At most one frame callback is in flight; a slow frame delays the next tick rather than overlapping
type FrameLoop struct {
	interval time.Duration
	clock    Clock
	frame    FrameFunc

	jobs chan func()

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{} // closed when the loop goroutine exits, by Stop or ctx
	doneOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	frames atomic.Uint64
}

// NewFrameLoop creates a loop calling frame every interval
func NewFrameLoop(interval time.Duration, clock Clock, frame FrameFunc) *FrameLoop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &FrameLoop{
		interval: interval,
		clock:    clock,
		frame:    frame,
		jobs:     make(chan func(), jobQueueSize),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the loop; it runs until Stop is called or ctx is cancelled
func (l *FrameLoop) Start(ctx context.Context) {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		core.Go(func() { l.loop(ctx) })
	}
}

// Stop cancels the recurring frame callback and waits for the loop to exit
func (l *FrameLoop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
		l.wg.Wait()
		l.running.Store(false)
	})
}

// Post queues job to run on the loop goroutine between frames
// Returns false if the loop has been stopped or its context cancelled
func (l *FrameLoop) Post(job func()) bool {
	select {
	case <-l.stopChan:
		return false
	case <-l.done:
		return false
	default:
	}

	select {
	case l.jobs <- job:
		return true
	case <-l.stopChan:
		return false
	case <-l.done:
		return false
	}
}

// Frames returns the number of frame callbacks run so far
func (l *FrameLoop) Frames() uint64 {
	return l.frames.Load()
}

// Running reports whether the loop goroutine is active
func (l *FrameLoop) Running() bool {
	return l.running.Load()
}

func (l *FrameLoop) loop(ctx context.Context) {
	defer l.wg.Done()
	defer l.running.Store(false)
	defer l.doneOnce.Do(func() { close(l.done) })

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-ctx.Done():
			return
		case job := <-l.jobs:
			job()
		case <-ticker.C:
			if l.frame != nil {
				l.frame(l.clock.Now())
			}
			l.frames.Add(1)
		}
	}
}
