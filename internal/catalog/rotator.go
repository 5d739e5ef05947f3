package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Rotator cycles through a fixed list of strings on a timer. Current is safe
// to call from any goroutine while the rotator runs.
type Rotator struct {
	items    []string
	interval time.Duration
	index    atomic.Int64

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRotator returns a stopped rotator over items
func NewRotator(items []string, interval time.Duration) *Rotator {
	return &Rotator{
		items:    append([]string(nil), items...),
		interval: interval,
	}
}

// Current returns the item currently shown, or "" for an empty rotator
func (r *Rotator) Current() string {
	if len(r.items) == 0 {
		return ""
	}
	return r.items[int(r.index.Load())%len(r.items)]
}

// Advance moves to the next item, wrapping at the end
func (r *Rotator) Advance() {
	if len(r.items) == 0 {
		return
	}
	for {
		old := r.index.Load()
		next := (old + 1) % int64(len(r.items))
		if r.index.CompareAndSwap(old, next) {
			return
		}
	}
}

// Start advances the rotator every interval until ctx is done or Stop is
// called. Starting a running rotator is a no-op.
func (r *Rotator) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil || r.interval <= 0 || len(r.items) < 2 {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Advance()
			}
		}
	}(r.done)
}

// Stop halts the timer and waits for its goroutine to exit
func (r *Rotator) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
