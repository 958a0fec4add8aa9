package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrZeroID           = errors.New("product id cannot be zero")
	ErrBlankName        = errors.New("product name cannot be blank")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrNegativeWeight   = errors.New("weight cannot be negative")
	ErrNegativeWarranty = errors.New("warranty months cannot be negative")
	ErrZeroExpiration   = errors.New("expiration date cannot be zero")
)

// Product is the read surface shared by every catalog item. Prices are
// exact decimals. SetPrice is the only mutation and exists for the
// catalog's price-update operation.
type Product interface {
	ID() uuid.UUID
	Name() string
	Category() Category
	Price() decimal.Decimal
	SetPrice(price decimal.Decimal) error
	Details() string
}

// Perishable marks products that carry an expiration date.
type Perishable interface {
	Product
	ExpirationDate() time.Time
}

// Shippable marks products that have a weight and a shipping cost.
// Weight is in kilograms; a zero weight is valid and means unweighted.
type Shippable interface {
	Product
	Weight() float64
	ShippingCost() decimal.Decimal
}

// baseProduct carries the fields common to all product variants.
type baseProduct struct {
	id       uuid.UUID
	name     string
	category Category
	price    decimal.Decimal
}

func newBaseProduct(id uuid.UUID, name string, category Category, price decimal.Decimal) (baseProduct, error) {
	if id == uuid.Nil {
		return baseProduct{}, ErrZeroID
	}
	if strings.TrimSpace(name) == "" {
		return baseProduct{}, ErrBlankName
	}
	if price.IsNegative() {
		return baseProduct{}, ErrNegativePrice
	}
	return baseProduct{id: id, name: name, category: category, price: price}, nil
}

func (b *baseProduct) ID() uuid.UUID          { return b.id }
func (b *baseProduct) Name() string           { return b.name }
func (b *baseProduct) Category() Category     { return b.category }
func (b *baseProduct) Price() decimal.Decimal { return b.price }

func (b *baseProduct) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	b.price = price
	return nil
}
