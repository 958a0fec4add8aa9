package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vastberg/warehouse/internal/core/domain"
)

var (
	ErrNilProduct      = errors.New("product cannot be nil")
	ErrProductNotFound = errors.New("product not found")
)

// MemoryCatalog is an in-memory product store. It keeps insertion
// order and hands out snapshot slices, so analytics running on a
// snapshot are unaffected by later mutations. Not safe for concurrent
// writers.
type MemoryCatalog struct {
	name     string
	products []domain.Product
	changed  map[uuid.UUID]struct{}
}

func NewMemoryCatalog(name string) *MemoryCatalog {
	return &MemoryCatalog{
		name:    name,
		changed: make(map[uuid.UUID]struct{}),
	}
}

func (c *MemoryCatalog) Name() string { return c.name }

func (c *MemoryCatalog) IsEmpty() bool { return len(c.products) == 0 }

func (c *MemoryCatalog) Add(p domain.Product) error {
	if p == nil {
		return ErrNilProduct
	}
	c.products = append(c.products, p)
	return nil
}

func (c *MemoryCatalog) ProductByID(id uuid.UUID) (domain.Product, bool) {
	for _, p := range c.products {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

func (c *MemoryCatalog) Remove(id uuid.UUID) {
	for i, p := range c.products {
		if p.ID() == id {
			c.products = append(c.products[:i:i], c.products[i+1:]...)
			delete(c.changed, id)
			return
		}
	}
}

// UpdatePrice sets a new price on the identified product and records
// the id in the changed set.
func (c *MemoryCatalog) UpdatePrice(id uuid.UUID, price decimal.Decimal) error {
	p, ok := c.ProductByID(id)
	if !ok {
		return fmt.Errorf("update price for %s: %w", id, ErrProductNotFound)
	}
	if err := p.SetPrice(price); err != nil {
		return fmt.Errorf("update price for %s: %w", id, err)
	}
	c.changed[id] = struct{}{}
	return nil
}

// ChangedProducts returns the products whose price was updated since
// the catalog was created or last cleared, in insertion order.
func (c *MemoryCatalog) ChangedProducts() []domain.Product {
	var out []domain.Product
	for _, p := range c.products {
		if _, ok := c.changed[p.ID()]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (c *MemoryCatalog) Clear() {
	c.products = nil
	c.changed = make(map[uuid.UUID]struct{})
}

func (c *MemoryCatalog) Products() []domain.Product {
	return append([]domain.Product(nil), c.products...)
}

func (c *MemoryCatalog) ShippableProducts() []domain.Shippable {
	var out []domain.Shippable
	for _, p := range c.products {
		if s, ok := p.(domain.Shippable); ok {
			out = append(out, s)
		}
	}
	return out
}

func (c *MemoryCatalog) PerishableProducts() []domain.Perishable {
	var out []domain.Perishable
	for _, p := range c.products {
		if per, ok := p.(domain.Perishable); ok {
			out = append(out, per)
		}
	}
	return out
}

// ExpiredProducts returns the perishable products whose expiration
// date lies strictly before the given day.
func (c *MemoryCatalog) ExpiredProducts(today time.Time) []domain.Perishable {
	var out []domain.Perishable
	for _, p := range c.products {
		if per, ok := p.(domain.Perishable); ok && per.ExpirationDate().Before(today) {
			out = append(out, per)
		}
	}
	return out
}

// ProductsByCategory groups the catalog's products by category,
// preserving insertion order within each group.
func (c *MemoryCatalog) ProductsByCategory() map[domain.Category][]domain.Product {
	out := make(map[domain.Category][]domain.Product)
	for _, p := range c.products {
		out[p.Category()] = append(out[p.Category()], p)
	}
	return out
}
