package feed

import (
	"context"
	"sync"

	"github.com/rs/xid"
)

// Broadcaster fans out the latest value to its subscribers. Each subscriber
// is served by its own goroutine and only ever receives the most recent
// value published since its last delivery, so a slow listener never blocks
// publishers nor sees a stale value after a newer one.
type Broadcaster[T any] struct {
	mutex       sync.Mutex
	latest      T
	subscribers map[xid.ID]*subscriber[T]
}

// Publish replaces the current value and schedules its delivery.
func (b *Broadcaster[T]) Publish(value T) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.latest = value

	for _, s := range b.subscribers {
		s.offer(value)
	}
}

// Latest returns the last published value.
func (b *Broadcaster[T]) Latest() T {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.latest
}

// Subscribe starts delivering values to fn, beginning with the current one.
// Delivery stops when the returned function is called or ctx is done.
func (b *Broadcaster[T]) Subscribe(ctx context.Context, fn func(T)) func() {
	id := xid.New()

	s := &subscriber[T]{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}

	b.mutex.Lock()
	b.subscribers[id] = s
	s.offer(b.latest)
	b.mutex.Unlock()

	go s.run(fn)

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mutex.Lock()
			delete(b.subscribers, id)
			b.mutex.Unlock()

			close(s.done)
		})
	}

	context.AfterFunc(ctx, unsubscribe)

	return unsubscribe
}

// Len returns the number of active subscribers.
func (b *Broadcaster[T]) Len() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return len(b.subscribers)
}

func NewBroadcaster[T any](initial T) *Broadcaster[T] {
	return &Broadcaster[T]{
		latest:      initial,
		subscribers: make(map[xid.ID]*subscriber[T]),
	}
}

type subscriber[T any] struct {
	mutex   sync.Mutex
	pending T
	dirty   bool
	wake    chan struct{}
	done    chan struct{}
}

func (s *subscriber[T]) offer(value T) {
	s.mutex.Lock()
	s.pending = value
	s.dirty = true
	s.mutex.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber[T]) run(fn func(T)) {
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}

		select {
		case <-s.done:
			return
		default:
		}

		s.mutex.Lock()
		value, dirty := s.pending, s.dirty
		var zero T
		s.pending = zero
		s.dirty = false
		s.mutex.Unlock()

		if dirty {
			fn(value)
		}
	}
}
