package mercadinho

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNotFound is returned when no product carries the requested id.
var ErrNotFound = errors.New("product not found")

// Product is one catalog entry.
type Product struct {
	ID       int
	Name     string // single token, no whitespace (store format constraint)
	ByWeight bool   // sold by weight (kg) rather than by the unit
	Price    Money
	Stock    Quantity
}

// Unit returns the unit label used on receipts and listings.
func (p Product) Unit() string {
	if p.ByWeight {
		return "kg"
	}
	return "un"
}

// ValidateName checks that a product name can survive the whitespace-delimited
// store format: non-empty and without embedded whitespace.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("product name cannot be empty")
	}
	if strings.ContainsFunc(name, func(r rune) bool { return r == ' ' || r == '\t' }) {
		return fmt.Errorf("product name %q cannot contain whitespace", name)
	}
	return nil
}

// Catalog is the ordered list of products of the store.
//
// Product ids are dense: after every mutation, the product at position i
// carries id i+1. The interactive prompts depend on that contract, so Remove
// reindexes the whole list.
type Catalog struct {
	products []Product
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog { return &Catalog{} }

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// IsEmpty reports whether the catalog holds no product.
func (c *Catalog) IsEmpty() bool { return len(c.products) == 0 }

// Products returns a copy of the product list, in id order.
func (c *Catalog) Products() []Product { return slices.Clone(c.products) }

// Get returns a copy of the product with this id.
func (c *Catalog) Get(id int) (Product, bool) {
	if p := c.get(id); p != nil {
		return *p, true
	}
	return Product{}, false
}

// get returns a pointer into the backing list, for in-place mutation.
func (c *Catalog) get(id int) *Product {
	for i := range c.products {
		if c.products[i].ID == id {
			return &c.products[i]
		}
	}
	return nil
}

// Create appends a new product with the next dense id and returns it.
func (c *Catalog) Create(name string, byWeight bool, price Money, stock Quantity) (Product, error) {
	if err := ValidateName(name); err != nil {
		return Product{}, err
	}
	p := Product{
		ID:       len(c.products) + 1,
		Name:     name,
		ByWeight: byWeight,
		Price:    price,
		Stock:    stock,
	}
	c.products = append(c.products, p)
	return p, nil
}

// Update replaces the name, sold-by-weight flag and price of the product with
// this id. The stock level is deliberately left untouched: stock changes go
// through AdjustStock.
func (c *Catalog) Update(id int, name string, byWeight bool, price Money) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	p := c.get(id)
	if p == nil {
		return fmt.Errorf("cannot update product %d: %w", id, ErrNotFound)
	}
	p.Name = name
	p.ByWeight = byWeight
	p.Price = price
	return nil
}

// Remove deletes the product with this id and reindexes the remaining
// products so that ids stay dense.
func (c *Catalog) Remove(id int) error {
	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			c.reindex()
			return nil
		}
	}
	return fmt.Errorf("cannot remove product %d: %w", id, ErrNotFound)
}

// AdjustStock adds a signed delta to the product's stock and returns the new
// level. There is no floor: a delta larger than the current stock drives the
// level negative, matching the store's historical behavior.
func (c *Catalog) AdjustStock(id int, delta Quantity) (Quantity, error) {
	p := c.get(id)
	if p == nil {
		return Quantity{}, fmt.Errorf("cannot adjust stock of product %d: %w", id, ErrNotFound)
	}
	p.Stock = p.Stock.Add(delta)
	return p.Stock, nil
}

// reindex recomputes every id as its 1-based position.
func (c *Catalog) reindex() {
	for i := range c.products {
		c.products[i].ID = i + 1
	}
}
