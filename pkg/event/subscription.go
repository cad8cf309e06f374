package event

// Subscription is the handle returned by Subscribe. Calling Unsubscribe
// removes exactly that registration.
type Subscription struct {
	bus       Bus
	eventName string
	id        SubscriptionID
}

func (s Subscription) ID() SubscriptionID { return s.id }

func (s Subscription) EventName() string { return s.eventName }

// Unsubscribe is safe to call more than once. It is a no-op on the zero value.
func (s Subscription) Unsubscribe() {
	if s.bus == nil {
		return
	}
	s.bus.Unsubscribe(s.eventName, s.id)
}
