package channels

import (
	"sync"
)

// Broadcaster holds the latest published value. Readers get the current value
// or wait for the next publish through Changed.
type Broadcaster[T any] struct {
	lock    *sync.RWMutex
	value   T
	changed chan struct{}
}

func NewBroadcaster[T any](value T) *Broadcaster[T] {
	return &Broadcaster[T]{
		lock:    new(sync.RWMutex),
		value:   value,
		changed: make(chan struct{}),
	}
}

func (b *Broadcaster[T]) Publish(value T) {
	b.Update(func(T) T { return value })
}

// Update publishes the result of fn applied to the current value. fn runs
// under the write lock and must not mutate its argument in place.
func (b *Broadcaster[T]) Update(fn func(T) T) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.value = fn(b.value)
	close(b.changed)
	b.changed = make(chan struct{})
}

func (b *Broadcaster[T]) Value() T {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.value
}

// Changed returns a channel closed by the next Publish or Update.
func (b *Broadcaster[T]) Changed() <-chan struct{} {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.changed
}
