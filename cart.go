package mercadinho

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInsufficientStock is returned when a cart add asks for more than the
// product's available stock.
var ErrInsufficientStock = errors.New("insufficient stock")

// CartItem pairs a snapshot of a product with the purchased quantity.
//
// The snapshot keeps the name and price at the moment the item was added;
// renaming or deleting the product afterwards does not affect the item.
type CartItem struct {
	Product  Product
	Quantity Quantity
}

// Subtotal is the item's contribution to the purchase total.
func (i CartItem) Subtotal() Money { return i.Product.Price.Mul(i.Quantity) }

// Cart is the transient list of items of one checkout session. It is never
// persisted.
type Cart struct {
	items []CartItem
}

// NewCart creates an empty cart.
func NewCart() *Cart { return &Cart{} }

// Items returns a copy of the cart content, in add order.
func (c *Cart) Items() []CartItem { return slices.Clone(c.items) }

// Len returns the number of items in the cart.
func (c *Cart) Len() int { return len(c.items) }

// IsEmpty reports whether the cart holds no item.
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Add reserves qty from the catalog product with this id and appends a
// snapshot item. It refuses with ErrInsufficientStock when qty exceeds the
// available stock, leaving both cart and catalog untouched.
func (c *Cart) Add(catalog *Catalog, id int, qty Quantity) (CartItem, error) {
	p := catalog.get(id)
	if p == nil {
		return CartItem{}, fmt.Errorf("cannot add product %d to cart: %w", id, ErrNotFound)
	}
	if qty.GreaterThan(p.Stock) {
		return CartItem{}, fmt.Errorf("cannot add %s %s of %q (%s available): %w",
			qty, p.Unit(), p.Name, p.Stock, ErrInsufficientStock)
	}
	p.Stock = p.Stock.Sub(qty)
	item := CartItem{Product: *p, Quantity: qty}
	c.items = append(c.items, item)
	return item, nil
}

// Remove drops the first item (in add order) whose product carries this id
// and returns its quantity to the matching catalog product. It reports false
// when no item matches; an id no longer present in the catalog still removes
// the item, there is just no stock to restore to.
func (c *Cart) Remove(catalog *Catalog, id int) (CartItem, bool) {
	for i, item := range c.items {
		if item.Product.ID != id {
			continue
		}
		if p := catalog.get(id); p != nil {
			p.Stock = p.Stock.Add(item.Quantity)
		}
		c.items = append(c.items[:i], c.items[i+1:]...)
		return item, true
	}
	return CartItem{}, false
}

// Clear discards every item without returning stock to the catalog. Remove is
// the only path that restores stock; a cleared cart keeps the in-memory
// decrement until the catalog is reloaded from file. The two behaviors are
// kept distinct: Clear mirrors the register's historical "cancel purchase".
func (c *Cart) Clear() { c.items = nil }

// Total sums the subtotals of every item.
func (c *Cart) Total() Money {
	var total Money
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}
