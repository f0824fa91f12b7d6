package pkg

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Clock calls Tick at a fixed interval until its context is done. While
// paused the ticks are skipped and do not count towards the elapsed time.
type Clock struct {
	Interval time.Duration
	Tick     func()

	elapsed time.Duration
	ticks   int
	paused  bool

	*sync.Mutex
}

func NewClock(interval time.Duration, tick func()) *Clock {
	return &Clock{
		Interval: interval,
		Tick:     tick,
		Mutex:    new(sync.Mutex),
	}
}

// String returns the elapsed play time as m:ss.
func (cl *Clock) String() string {
	elapsed := cl.Elapsed()
	return fmt.Sprintf("%d:%02d", int(elapsed.Minutes()), int(elapsed.Seconds())%60)
}

// Run blocks until ctx is done.
func (cl *Clock) Run(ctx context.Context) {
	tick := time.NewTicker(cl.Interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if !cl.advance() {
				continue
			}

			if cl.Tick != nil {
				cl.Tick()
			}
		}
	}
}

func (cl *Clock) advance() bool {
	cl.Lock()
	defer cl.Unlock()

	if cl.paused {
		return false
	}

	cl.ticks++
	cl.elapsed += cl.Interval
	return true
}

func (cl *Clock) Pause() {
	cl.Lock()
	defer cl.Unlock()

	cl.paused = true
}

func (cl *Clock) Resume() {
	cl.Lock()
	defer cl.Unlock()

	cl.paused = false
}

func (cl *Clock) Paused() bool {
	cl.Lock()
	defer cl.Unlock()

	return cl.paused
}

// Reset zeroes the elapsed time, for a new game.
func (cl *Clock) Reset() {
	cl.Lock()
	defer cl.Unlock()

	cl.elapsed = 0
}

func (cl *Clock) Elapsed() time.Duration {
	cl.Lock()
	defer cl.Unlock()

	return cl.elapsed
}

// Ticks returns the number of ticks delivered since the clock was created.
func (cl *Clock) Ticks() int {
	cl.Lock()
	defer cl.Unlock()

	return cl.ticks
}
