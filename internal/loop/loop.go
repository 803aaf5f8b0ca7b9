// internal/loop/loop.go
//
// Single-goroutine event loop.
// Responsibilities:
//   - Serialize every mutation of controller and engine state: HTTP handlers,
//     terminal key presses and timer callbacks all run as closures on Run's goroutine.
//   - Implement game.Scheduler: After posts the callback back into the queue.
//   - Notify subscribers after each mutating closure so front ends can re-render.
//
// Notes:
//   - Do and Query block until the closure has run; never call them from inside a closure.
//   - Query is for reads and does not notify, so a subscriber that re-reads
//     state on every signal does not wake itself.
//   - A panicking closure is logged and the loop keeps going.
//   - Notifications coalesce: a slow subscriber sees at most one pending signal.

package loop

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrStopped is returned by Do once Run has returned.
var ErrStopped = errors.New("loop stopped")

// Loop is a serial executor.
type Loop struct {
	queue chan task
	done  chan struct{}
	stop  sync.Once

	mu     sync.RWMutex          // guards subs
	subs   map[int]chan struct{} // subscriber id -> signal
	nextID int
}

type task struct {
	fn     func()
	notify bool
}

// New returns a loop; start it with Run.
func New() *Loop {
	return &Loop{
		queue: make(chan task, 64),
		done:  make(chan struct{}),
		subs:  make(map[int]chan struct{}),
	}
}

// Run processes closures until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer l.stop.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-l.queue:
			l.exec(t.fn)
			if t.notify {
				l.notify()
			}
		}
	}
}

func (l *Loop) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("loop closure panicked")
		}
	}()
	fn()
}

// Do runs fn on the loop, waits for it to finish and then notifies subscribers.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	return l.run(ctx, fn, true)
}

// Query runs a read-only fn on the loop and waits for it.
func (l *Loop) Query(ctx context.Context, fn func()) error {
	return l.run(ctx, fn, false)
}

func (l *Loop) run(ctx context.Context, fn func(), notify bool) error {
	finished := make(chan struct{})
	wrapped := func() {
		defer close(finished)
		fn()
	}
	select {
	case l.queue <- task{fn: wrapped, notify: notify}:
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} { return l.done }

// Post queues fn without waiting. It is dropped if the loop has stopped.
func (l *Loop) Post(fn func()) {
	select {
	case l.queue <- task{fn: fn, notify: true}:
	case <-l.done:
	}
}

// After runs fn on the loop once d has elapsed.
func (l *Loop) After(d time.Duration, fn func()) {
	time.AfterFunc(d, func() { l.Post(fn) })
}

// Subscribe returns a channel signalled after each processed closure, and a
// function that cancels the subscription.
func (l *Loop) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.subs[id] = ch
	l.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.subs, id)
			l.mu.Unlock()
		})
	}
}

func (l *Loop) notify() {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, ch := range l.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
