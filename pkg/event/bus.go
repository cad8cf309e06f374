package event

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"
)

type HandlerFunc func(eventName string, payload any) error

type SubscriptionID uint64

type Bus interface {
	Emit(eventName string, payload any) error
	Subscribe(eventName string, handler HandlerFunc) Subscription
	Unsubscribe(eventName string, id SubscriptionID)
	Len(eventName string) int
	Has(eventName string) bool
}

type subscriber struct {
	id      SubscriptionID
	handler HandlerFunc
}

type eventBus struct {
	mu     sync.RWMutex
	h      map[string][]subscriber
	nextID SubscriptionID
}

// NewBus creates a new Bus.
//
// It returns a Bus interface.
func NewBus() Bus {
	return &eventBus{
		h: make(map[string][]subscriber),
	}
}

// Subscribe appends handler to the subscribers of eventName.
//
// The same handler may be subscribed more than once; every registration gets
// its own id and is invoked once per Emit.
func (b *eventBus) Subscribe(eventName string, handler HandlerFunc) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.h[eventName] = append(b.h[eventName], subscriber{id: id, handler: handler})

	return Subscription{bus: b, eventName: eventName, id: id}
}

// Unsubscribe removes every registration with the given id from eventName.
// Unknown names and ids are ignored. The key itself stays in the registry.
func (b *eventBus) Unsubscribe(eventName string, id SubscriptionID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.h[eventName]
	if !ok {
		return
	}

	kept := make([]subscriber, 0, len(subs))
	for _, s := range subs {
		if s.id != id {
			kept = append(kept, s)
		}
	}
	b.h[eventName] = kept
}

// Emit calls every handler subscribed to eventName, in subscription order,
// and returns once all of them have returned.
//
// Handlers see a snapshot of the subscriber list taken when Emit starts.
// A failing or panicking handler does not stop the others; all failures are
// combined into the returned error.
func (b *eventBus) Emit(eventName string, payload any) error {
	b.mu.RLock()
	subs := make([]subscriber, len(b.h[eventName]))
	copy(subs, b.h[eventName])
	b.mu.RUnlock()

	var errs error
	for _, s := range subs {
		if err := invoke(s.handler, eventName, payload); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", eventName, err))
		}
	}
	return errs
}

func (b *eventBus) Len(eventName string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.h[eventName])
}

func (b *eventBus) Has(eventName string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.h[eventName]
	return ok
}

func invoke(handler HandlerFunc, eventName string, payload any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return handler(eventName, payload)
}

// Typed adapts a handler for a single payload type.
func Typed[T any](fn func(payload T) error) HandlerFunc {
	return func(eventName string, payload any) error {
		p, ok := payload.(T)
		if !ok {
			return fmt.Errorf("%w: got %T", ErrPayloadType, payload)
		}
		return fn(p)
	}
}
