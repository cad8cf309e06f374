package internal

import (
	"sync"

	"go.uber.org/multierr"

	"shop-events/pkg/event"
)

type Cart struct {
	mu       sync.Mutex
	products map[string]int
	eventBus event.Bus
}

type emission struct {
	name    string
	payload any
}

func NewCart() *Cart {
	return &Cart{
		products: make(map[string]int),
		eventBus: event.NewBus(),
	}
}

// AddProduct adds quantity to the product's stored amount. Negative
// quantities are accepted and lower the total.
func (c *Cart) AddProduct(product string, quantity int) error {
	c.mu.Lock()
	c.products[product] += quantity
	total := c.products[product]
	c.mu.Unlock()

	return c.emit(
		emission{EventProductAdded, ProductAdded{Product: product, Quantity: quantity}},
		emission{EventQuantityUpdated, QuantityUpdated{Product: product, Quantity: total, InCart: true}},
	)
}

// RemoveProduct subtracts quantity from a held product and drops it once the
// total reaches zero or below. Products that are not held are ignored.
func (c *Cart) RemoveProduct(product string, quantity int) error {
	c.mu.Lock()
	if !c.holds(product) {
		c.mu.Unlock()
		return nil
	}
	c.products[product] -= quantity
	updated := QuantityUpdated{Product: product, Quantity: c.products[product], InCart: true}
	if updated.Quantity <= 0 {
		delete(c.products, product)
		updated.Quantity, updated.InCart = 0, false
	}
	c.mu.Unlock()

	return c.emit(
		emission{EventProductRemoved, ProductRemoved{Product: product, Quantity: quantity}},
		emission{EventQuantityUpdated, updated},
	)
}

// UpdateQuantity overwrites the amount of a held product. The new value is
// stored as given, zero and negative included.
func (c *Cart) UpdateQuantity(product string, quantity int) error {
	c.mu.Lock()
	if !c.holds(product) {
		c.mu.Unlock()
		return nil
	}
	c.products[product] = quantity
	c.mu.Unlock()

	return c.emit(
		emission{EventQuantityUpdated, QuantityUpdated{Product: product, Quantity: quantity, InCart: true}},
	)
}

// ClearCart announces that the cart labelled label was cleared. It leaves the
// contents untouched; emptying them is up to the subscribers.
func (c *Cart) ClearCart(label string, quantity int) error {
	return c.emit(emission{EventCartCleared, CartCleared{Cart: label, Quantity: quantity}})
}

func (c *Cart) OnProductAdded(fn func(ProductAdded) error) event.Subscription {
	return c.eventBus.Subscribe(EventProductAdded, event.Typed(fn))
}

func (c *Cart) OnProductRemoved(fn func(ProductRemoved) error) event.Subscription {
	return c.eventBus.Subscribe(EventProductRemoved, event.Typed(fn))
}

func (c *Cart) OnQuantityUpdated(fn func(QuantityUpdated) error) event.Subscription {
	return c.eventBus.Subscribe(EventQuantityUpdated, event.Typed(fn))
}

func (c *Cart) OnCartCleared(fn func(CartCleared) error) event.Subscription {
	return c.eventBus.Subscribe(EventCartCleared, event.Typed(fn))
}

func (c *Cart) Quantity(product string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	q, ok := c.products[product]
	return q, ok
}

// Contents returns a copy of the stored quantities.
func (c *Cart) Contents() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int, len(c.products))
	for p, q := range c.products {
		out[p] = q
	}
	return out
}

// holds reports whether product is in the cart with a non-zero amount.
// Must be called with mu held.
func (c *Cart) holds(product string) bool {
	return c.products[product] != 0
}

func (c *Cart) emit(emissions ...emission) error {
	var errs error
	for _, e := range emissions {
		errs = multierr.Append(errs, c.eventBus.Emit(e.name, e.payload))
	}
	return errs
}
