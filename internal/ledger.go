package internal

import (
	"sync"

	"github.com/rs/zerolog"

	"shop-events/pkg/event"
)

// Ledger is an in-memory stand-in for a database. Every write is
// republished as a save event.
type Ledger struct {
	mu       sync.RWMutex
	store    map[string]any
	eventBus event.Bus
	log      zerolog.Logger
}

func NewLedger(logger zerolog.Logger) *Ledger {
	return &Ledger{
		store:    make(map[string]any),
		eventBus: event.NewBus(),
		log:      logger,
	}
}

// Save stores data under id, overwriting any previous value, and emits a
// save event. The write itself cannot fail; the returned error comes from
// save subscribers.
func (l *Ledger) Save(id string, data any) error {
	l.mu.Lock()
	l.store[id] = data
	l.mu.Unlock()

	err := l.eventBus.Emit(EventSave, SaveRecord{ID: id, Data: data})

	l.log.Info().Str("id", id).Interface("data", data).Msg("data saved")
	return err
}

func (l *Ledger) OnSave(fn func(SaveRecord) error) event.Subscription {
	return l.eventBus.Subscribe(EventSave, event.Typed(fn))
}

func (l *Ledger) Get(id string) (any, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.store[id]
	return v, ok
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.store)
}
