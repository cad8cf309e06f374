package internal

import (
	"context"

	"github.com/rs/zerolog"

	"shop-events/pkg/event"
	"shop-events/pkg/executor"
)

// Shop wires a cart to a ledger: product and clear events are written to
// the ledger and every event is logged.
type Shop struct {
	Cart   *Cart
	Ledger *Ledger

	log  zerolog.Logger
	subs []event.Subscription
}

func NewShop(cart *Cart, ledger *Ledger, logger zerolog.Logger) *Shop {
	shop := &Shop{
		Cart:   cart,
		Ledger: ledger,
		log:    logger,
	}

	shop.subs = append(shop.subs,
		ledger.OnSave(shop.dataUpdated),
		cart.OnProductAdded(shop.productAdded),
		cart.OnProductRemoved(shop.productRemoved),
		cart.OnQuantityUpdated(shop.quantityUpdated),
		cart.OnCartCleared(shop.cartCleared),
	)

	return shop
}

// Run executes steps against the cart.
func (shop *Shop) Run(ctx context.Context, steps []executor.Step) error {
	return executor.Execute(ctx, shop.Cart, steps)
}

// Close revokes every subscription made by NewShop.
func (shop *Shop) Close() {
	for _, sub := range shop.subs {
		sub.Unsubscribe()
	}
	shop.subs = nil
}

func (shop *Shop) dataUpdated(rec SaveRecord) error {
	shop.log.Info().Str("id", rec.ID).Interface("data", rec.Data).Msg("data updated")
	return nil
}

func (shop *Shop) productAdded(e ProductAdded) error {
	shop.log.Info().Str("product", e.Product).Int("quantity", e.Quantity).Msg("product added")
	return shop.Ledger.Save(e.Product, e.Quantity)
}

func (shop *Shop) productRemoved(e ProductRemoved) error {
	shop.log.Info().Str("product", e.Product).Int("quantity", e.Quantity).Msg("product removed")
	return shop.Ledger.Save(e.Product, e.Quantity)
}

func (shop *Shop) quantityUpdated(e QuantityUpdated) error {
	shop.log.Info().
		Str("product", e.Product).
		Int("quantity", e.Quantity).
		Bool("in_cart", e.InCart).
		Msg("quantity updated")
	return nil
}

func (shop *Shop) cartCleared(e CartCleared) error {
	shop.log.Info().Str("cart", e.Cart).Int("quantity", e.Quantity).Msg("cart cleared")
	return shop.Ledger.Save(e.Cart, e.Quantity)
}
