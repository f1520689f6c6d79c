// Package tickdriver feeds a tween.Manager wall-clock deltas from a
// background goroutine on a fixed tick, the way a game loop's own ticker
// would. It is deliberately kept out of package tween itself: the core
// engine owns no clock and performs no I/O, so anything that reads
// time.Now lives here instead.
package tickdriver

import (
	"sync"
	"time"

	"github.com/lixenwraith/tweenengine/tween"
)

// Ticker drives a *tween.Manager on a fixed interval, computing each
// delta from the wall-clock gap between ticks.
type Ticker struct {
	manager  *tween.Manager
	interval time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New returns a Ticker that will call manager.Update(delta) once per
// interval once Start is called.
func New(manager *tween.Manager, interval time.Duration) *Ticker {
	return &Ticker{manager: manager, interval: interval}
}

// Start launches the background goroutine. Calling Start on an
// already-running Ticker is a no-op.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.running = true
	t.stopCh = make(chan struct{})
	t.doneCh = make(chan struct{})
	go t.run(t.stopCh, t.doneCh)
}

func (t *Ticker) run(stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now
			t.manager.Update(delta)
		}
	}
}

// Stop halts the background goroutine and waits for it to exit. Calling
// Stop on a non-running Ticker is a no-op.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	stop := t.stopCh
	done := t.doneCh
	t.mu.Unlock()

	close(stop)
	<-done
}
