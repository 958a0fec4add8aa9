package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Electronics ship at a flat base cost with a surcharge above 5 kg.
var (
	electronicsBaseShippingCost = decimal.NewFromInt(79)
	electronicsHeavySurcharge   = decimal.NewFromInt(49)
	electronicsHeavyThresholdKg = decimal.NewFromInt(5)
)

// ElectronicsProduct is a shippable, non-perishable product.
type ElectronicsProduct struct {
	baseProduct
	warrantyMonths int
	weight         decimal.Decimal
}

func NewElectronicsProduct(id uuid.UUID, name string, category Category, price decimal.Decimal, warrantyMonths int, weight decimal.Decimal) (*ElectronicsProduct, error) {
	base, err := newBaseProduct(id, name, category, price)
	if err != nil {
		return nil, err
	}
	if warrantyMonths < 0 {
		return nil, ErrNegativeWarranty
	}
	if weight.IsNegative() {
		return nil, ErrNegativeWeight
	}
	return &ElectronicsProduct{baseProduct: base, warrantyMonths: warrantyMonths, weight: weight}, nil
}

func (e *ElectronicsProduct) WarrantyMonths() int { return e.warrantyMonths }

func (e *ElectronicsProduct) Weight() float64 { return e.weight.InexactFloat64() }

func (e *ElectronicsProduct) ShippingCost() decimal.Decimal {
	cost := electronicsBaseShippingCost
	if e.weight.GreaterThan(electronicsHeavyThresholdKg) {
		cost = cost.Add(electronicsHeavySurcharge)
	}
	return cost
}

func (e *ElectronicsProduct) Details() string {
	return fmt.Sprintf("Electronics: %s, Warranty: %d months", e.Name(), e.warrantyMonths)
}
