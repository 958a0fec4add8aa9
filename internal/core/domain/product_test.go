package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var testExpiration = time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)

func testCategory(t *testing.T, name string) Category {
	t.Helper()
	c, err := NewCategoryInterner().Category(name)
	if err != nil {
		t.Fatalf("intern category %q: %v", name, err)
	}
	return c
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewFoodProduct_Validation(t *testing.T) {
	cat := testCategory(t, "Dairy")

	tests := []struct {
		name    string
		id      uuid.UUID
		pname   string
		price   decimal.Decimal
		expires time.Time
		weight  decimal.Decimal
		wantErr error
	}{
		{"zero id", uuid.Nil, "Milk", dec("10"), testExpiration, dec("1"), ErrZeroID},
		{"blank name", uuid.New(), "   ", dec("10"), testExpiration, dec("1"), ErrBlankName},
		{"negative price", uuid.New(), "Milk", dec("-1"), testExpiration, dec("1"), ErrNegativePrice},
		{"zero expiration", uuid.New(), "Milk", dec("10"), time.Time{}, dec("1"), ErrZeroExpiration},
		{"negative weight", uuid.New(), "Milk", dec("10"), testExpiration, dec("-0.5"), ErrNegativeWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFoodProduct(tt.id, tt.pname, cat, tt.price, tt.expires, tt.weight)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if _, err := NewFoodProduct(uuid.New(), "Milk", cat, dec("10"), testExpiration, dec("1")); err != nil {
		t.Errorf("valid food product rejected: %v", err)
	}
}

func TestNewElectronicsProduct_Validation(t *testing.T) {
	cat := testCategory(t, "Electronics")

	if _, err := NewElectronicsProduct(uuid.New(), "Laptop", cat, dec("999"), -1, dec("2")); !errors.Is(err, ErrNegativeWarranty) {
		t.Errorf("expected ErrNegativeWarranty, got %v", err)
	}
	if _, err := NewElectronicsProduct(uuid.New(), "Laptop", cat, dec("999"), 12, dec("-2")); !errors.Is(err, ErrNegativeWeight) {
		t.Errorf("expected ErrNegativeWeight, got %v", err)
	}
	if _, err := NewElectronicsProduct(uuid.New(), "Laptop", cat, dec("999"), 12, dec("2")); err != nil {
		t.Errorf("valid electronics product rejected: %v", err)
	}
}

func TestFoodProduct_ShippingCostPerKg(t *testing.T) {
	cat := testCategory(t, "Dairy")
	p, err := NewFoodProduct(uuid.New(), "Cheese", cat, dec("80"), testExpiration, dec("2.5"))
	if err != nil {
		t.Fatalf("new food product: %v", err)
	}

	if got := p.ShippingCost(); !got.Equal(dec("125")) {
		t.Errorf("expected shipping cost 125 for 2.5 kg, got %s", got)
	}
}

func TestElectronicsProduct_ShippingCostSurcharge(t *testing.T) {
	cat := testCategory(t, "Electronics")

	tests := []struct {
		weight string
		want   string
	}{
		{"4", "79"},
		{"5", "79"}, // surcharge only above 5 kg
		{"6", "128"},
	}
	for _, tt := range tests {
		p, err := NewElectronicsProduct(uuid.New(), "TV", cat, dec("500"), 24, dec(tt.weight))
		if err != nil {
			t.Fatalf("new electronics product: %v", err)
		}
		if got := p.ShippingCost(); !got.Equal(dec(tt.want)) {
			t.Errorf("weight %s kg: expected cost %s, got %s", tt.weight, tt.want, got)
		}
	}
}

func TestSetPrice(t *testing.T) {
	cat := testCategory(t, "Dairy")
	p, err := NewFoodProduct(uuid.New(), "Milk", cat, dec("10"), testExpiration, dec("1"))
	if err != nil {
		t.Fatalf("new food product: %v", err)
	}

	if err := p.SetPrice(dec("12.50")); err != nil {
		t.Fatalf("SetPrice failed: %v", err)
	}
	if !p.Price().Equal(dec("12.50")) {
		t.Errorf("expected price 12.50, got %s", p.Price())
	}

	if err := p.SetPrice(dec("-1")); !errors.Is(err, ErrNegativePrice) {
		t.Errorf("expected ErrNegativePrice, got %v", err)
	}
	if !p.Price().Equal(dec("12.50")) {
		t.Errorf("rejected price must not stick, got %s", p.Price())
	}
}

func TestDetails(t *testing.T) {
	food, err := NewFoodProduct(uuid.New(), "Milk", testCategory(t, "Dairy"), dec("10"), testExpiration, dec("1"))
	if err != nil {
		t.Fatalf("new food product: %v", err)
	}
	if got := food.Details(); got != "Food: Milk, Expires: 2026-03-12" {
		t.Errorf("unexpected food details: %q", got)
	}

	tv, err := NewElectronicsProduct(uuid.New(), "TV", testCategory(t, "Electronics"), dec("500"), 24, dec("6"))
	if err != nil {
		t.Fatalf("new electronics product: %v", err)
	}
	if got := tv.Details(); got != "Electronics: TV, Warranty: 24 months" {
		t.Errorf("unexpected electronics details: %q", got)
	}
}
