package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Food is shipped at a flat rate per kilogram.
var foodShippingRatePerKg = decimal.NewFromInt(50)

// FoodProduct is a perishable, shippable product.
type FoodProduct struct {
	baseProduct
	expirationDate time.Time
	weight         decimal.Decimal
}

func NewFoodProduct(id uuid.UUID, name string, category Category, price decimal.Decimal, expirationDate time.Time, weight decimal.Decimal) (*FoodProduct, error) {
	base, err := newBaseProduct(id, name, category, price)
	if err != nil {
		return nil, err
	}
	if expirationDate.IsZero() {
		return nil, ErrZeroExpiration
	}
	if weight.IsNegative() {
		return nil, ErrNegativeWeight
	}
	return &FoodProduct{baseProduct: base, expirationDate: expirationDate, weight: weight}, nil
}

func (f *FoodProduct) ExpirationDate() time.Time { return f.expirationDate }

func (f *FoodProduct) Weight() float64 { return f.weight.InexactFloat64() }

func (f *FoodProduct) ShippingCost() decimal.Decimal {
	return f.weight.Mul(foodShippingRatePerKg)
}

func (f *FoodProduct) Details() string {
	return fmt.Sprintf("Food: %s, Expires: %s", f.Name(), f.expirationDate.Format("2006-01-02"))
}
