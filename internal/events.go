package internal

const (
	EventSave            = "save"
	EventProductAdded    = "product-added"
	EventProductRemoved  = "product-removed"
	EventQuantityUpdated = "quantity-updated"
	EventCartCleared     = "cart-cleared"
)

type SaveRecord struct {
	ID   string
	Data any
}

// ProductAdded carries the added amount, not the new total.
type ProductAdded struct {
	Product  string
	Quantity int
}

// ProductRemoved carries the requested amount, not the new total.
type ProductRemoved struct {
	Product  string
	Quantity int
}

// QuantityUpdated carries the stored total after a change. InCart is false
// when the product was dropped from the cart, in which case Quantity is 0.
type QuantityUpdated struct {
	Product  string
	Quantity int
	InCart   bool
}

type CartCleared struct {
	Cart     string
	Quantity int
}
