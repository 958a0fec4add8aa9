package port

import "github.com/vastberg/warehouse/internal/core/domain"

// Catalog is the read-only view of the product collection consumed by
// the analytics engine. Every method returns a snapshot slice in
// insertion order; mutating the catalog afterwards must not affect
// slices already handed out.
type Catalog interface {
	// Products returns every product.
	Products() []domain.Product

	// ShippableProducts returns the products carrying the shippable capability.
	ShippableProducts() []domain.Shippable

	// PerishableProducts returns the products carrying the perishable capability.
	PerishableProducts() []domain.Perishable
}
