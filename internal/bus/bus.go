// Package bus is the in-process event registry the client uses to tell UI
// subscribers what changed in a snapshot.
package bus

import (
	"log"
	"sync"
)

// Handler receives an event payload; nil for events without one.
type Handler func(payload any)

type subscription struct {
	fn Handler
}

// Bus maps event names to handler sets. Emit is synchronous and a panicking
// handler never stops the others.
type Bus struct {
	mu       sync.Mutex
	handlers map[EventName][]*subscription
	logger   *log.Logger
}

// New returns an empty bus that reports handler failures to logger, or to the
// standard logger when logger is nil.
func New(logger *log.Logger) *Bus {
	if logger == nil {
		logger = log.Default()
	}
	return &Bus{
		handlers: make(map[EventName][]*subscription),
		logger:   logger,
	}
}

// On registers fn for name. The returned func removes exactly this
// registration and may be called more than once.
func (b *Bus) On(name EventName, fn Handler) (unsubscribe func()) {
	sub := &subscription{fn: fn}
	b.mu.Lock()
	b.handlers[name] = append(b.handlers[name], sub)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(name, sub) })
	}
}

func (b *Bus) remove(name EventName, sub *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.handlers[name]
	for i, s := range subs {
		if s == sub {
			b.handlers[name] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.handlers[name]) == 0 {
		delete(b.handlers, name)
	}
}

// Emit runs every handler registered for name before returning, in
// registration order. Handlers added or removed during Emit take effect on the
// next call.
func (b *Bus) Emit(name EventName, payload any) {
	b.mu.Lock()
	subs := append([]*subscription(nil), b.handlers[name]...)
	b.mu.Unlock()

	for _, sub := range subs {
		b.invoke(name, sub, payload)
	}
}

func (b *Bus) invoke(name EventName, sub *subscription, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Printf("bus: handler for %s panicked: %v", name, r)
		}
	}()
	sub.fn(payload)
}

// Handlers returns the number of handlers registered for name.
func (b *Bus) Handlers(name EventName) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers[name])
}

// On registers a handler that only sees payloads of type T. Payloads of any
// other type are skipped.
func On[T any](b *Bus, name EventName, fn func(T)) (unsubscribe func()) {
	return b.On(name, func(payload any) {
		if v, ok := payload.(T); ok {
			fn(v)
		}
	})
}
