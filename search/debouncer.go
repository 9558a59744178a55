package search

import (
	"context"
	"sync"
	"time"
)

// Debouncer delays each call until input has been quiet for Delay. Every
// trigger takes a new generation; the previous pending or in-flight call is
// cancelled and its result is dropped if it arrives late.
type Debouncer[T any] struct {
	Delay time.Duration

	mu         sync.Mutex
	deliverMu  sync.Mutex
	timer      *time.Timer
	cancel     context.CancelFunc
	generation uint64
	delivered  uint64
}

func NewDebouncer[T any](delay time.Duration) *Debouncer[T] {
	return &Debouncer[T]{Delay: delay}
}

// Trigger schedules fetch. deliver runs only for the newest generation.
// It returns the generation assigned to this call.
func (d *Debouncer[T]) Trigger(ctx context.Context, fetch func(context.Context) (T, error), deliver func(T, error)) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()

	d.generation++
	generation := d.generation

	callCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	d.timer = time.AfterFunc(d.Delay, func() {
		result, err := fetch(callCtx)

		d.deliverMu.Lock()
		defer d.deliverMu.Unlock()

		if !d.isLatest(generation) {
			return
		}

		d.mu.Lock()
		d.delivered = generation
		d.mu.Unlock()

		if deliver != nil {
			deliver(result, err)
		}
	})

	return generation
}

// Generation is the token of the most recent trigger.
func (d *Debouncer[T]) Generation() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.generation
}

// Stop cancels the pending or in-flight call. Its result is dropped.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.generation++
}

func (d *Debouncer[T]) isLatest(generation uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return generation == d.generation && generation > d.delivered
}

func (d *Debouncer[T]) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
