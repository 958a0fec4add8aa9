package service

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vastberg/warehouse/internal/core/domain"
	"github.com/vastberg/warehouse/internal/port"
)

var ErrInvalidRange = errors.New("invalid price range: min exceeds max")

// Analyzer answers analytical queries over a catalog. Every method is
// a pure function of the catalog snapshot and its parameters; nothing
// is cached and the catalog is never mutated. Callers that share a
// catalog with concurrent writers must hand the analyzer a stable
// snapshot first.
type Analyzer struct {
	catalog port.Catalog
	now     func() time.Time
}

func NewAnalyzer(catalog port.Catalog) *Analyzer {
	return &Analyzer{catalog: catalog, now: time.Now}
}

// FindInPriceRange returns the products with min <= price <= max, in
// catalog order. Both bounds are inclusive.
func (a *Analyzer) FindInPriceRange(min, max decimal.Decimal) ([]domain.Product, error) {
	if min.GreaterThan(max) {
		return nil, ErrInvalidRange
	}
	var out []domain.Product
	for _, p := range a.catalog.Products() {
		if p.Price().GreaterThanOrEqual(min) && p.Price().LessThanOrEqual(max) {
			out = append(out, p)
		}
	}
	return out, nil
}

// FindExpiringWithinDays returns the perishable products expiring
// between today and today+days inclusive. Already-expired products are
// excluded; days = 0 covers only items expiring today.
func (a *Analyzer) FindExpiringWithinDays(days int) []domain.Perishable {
	today := a.today()
	end := today.AddDate(0, 0, days)
	var out []domain.Perishable
	for _, p := range a.catalog.PerishableProducts() {
		exp := dateOnly(p.ExpirationDate())
		if !exp.Before(today) && !exp.After(end) {
			out = append(out, p)
		}
	}
	return out
}

// SearchByName performs a case-insensitive substring match on product
// names. An empty term matches everything.
func (a *Analyzer) SearchByName(term string) []domain.Product {
	needle := strings.ToLower(term)
	var out []domain.Product
	for _, p := range a.catalog.Products() {
		if strings.Contains(strings.ToLower(p.Name()), needle) {
			out = append(out, p)
		}
	}
	return out
}

// FindAbovePrice returns the products priced strictly above threshold.
func (a *Analyzer) FindAbovePrice(threshold decimal.Decimal) []domain.Product {
	var out []domain.Product
	for _, p := range a.catalog.Products() {
		if p.Price().GreaterThan(threshold) {
			out = append(out, p)
		}
	}
	return out
}

// WeightedAveragePriceByCategory computes, per category, the average
// price weighted by product weight: sum(price*weight)/sum(weight) over
// the members with weight > 0. A category with no positively weighted
// members falls back to the arithmetic mean of all its members.
// Results are rounded to two decimals, half up.
func (a *Analyzer) WeightedAveragePriceByCategory() map[domain.Category]decimal.Decimal {
	groups := make(map[domain.Category][]domain.Product)
	for _, p := range a.catalog.Products() {
		groups[p.Category()] = append(groups[p.Category()], p)
	}

	out := make(map[domain.Category]decimal.Decimal, len(groups))
	for cat, members := range groups {
		weightedSum := decimal.Zero
		weightSum := 0.0
		for _, p := range members {
			s, ok := p.(domain.Shippable)
			if !ok {
				continue
			}
			w := s.Weight()
			if w <= 0 {
				continue
			}
			weightedSum = weightedSum.Add(p.Price().Mul(decimal.NewFromFloat(w)))
			weightSum += w
		}

		var avg decimal.Decimal
		if weightSum > 0 {
			avg = weightedSum.Div(decimal.NewFromFloat(weightSum))
		} else {
			sum := decimal.Zero
			for _, p := range members {
				sum = sum.Add(p.Price())
			}
			avg = sum.Div(decimal.NewFromInt(int64(len(members))))
		}
		out[cat] = avg.Round(2)
	}
	return out
}

// FindPriceOutliers returns the products whose price deviates from the
// mean by more than k population standard deviations. The deviation is
// measured against sigma computed over all products, so a single
// extreme price inflates the threshold it is tested against.
func (a *Analyzer) FindPriceOutliers(k float64) []domain.Product {
	products := a.catalog.Products()
	n := len(products)
	if n == 0 {
		return nil
	}

	sum := 0.0
	for _, p := range products {
		sum += p.Price().InexactFloat64()
	}
	mean := sum / float64(n)

	variance := 0.0
	for _, p := range products {
		d := p.Price().InexactFloat64() - mean
		variance += d * d
	}
	variance /= float64(n)
	threshold := k * math.Sqrt(variance)

	var out []domain.Product
	for _, p := range products {
		if math.Abs(p.Price().InexactFloat64()-mean) > threshold {
			out = append(out, p)
		}
	}
	return out
}

// Expiration-proximity discount factors.
var (
	discountSameDay   = decimal.NewFromFloat(0.50)
	discountNextDay   = decimal.NewFromFloat(0.70)
	discountThreeDays = decimal.NewFromFloat(0.85)
)

// ExpirationBasedDiscounts returns a discounted price per product.
// Perishables are discounted by proximity to expiration: 50% off when
// expiring today, 30% off tomorrow, 15% off within three days, nothing
// otherwise (including already expired). Perishable results are
// rounded to two decimals, half up; non-perishables keep their exact
// original price.
func (a *Analyzer) ExpirationBasedDiscounts() map[domain.Product]decimal.Decimal {
	today := a.today()
	out := make(map[domain.Product]decimal.Decimal)
	for _, p := range a.catalog.Products() {
		per, ok := p.(domain.Perishable)
		if !ok {
			out[p] = p.Price()
			continue
		}

		discounted := p.Price()
		switch d := daysBetween(today, per.ExpirationDate()); {
		case d == 0:
			discounted = discounted.Mul(discountSameDay)
		case d == 1:
			discounted = discounted.Mul(discountNextDay)
		case d > 1 && d <= 3:
			discounted = discounted.Mul(discountThreeDays)
		}
		out[p] = discounted.Round(2)
	}
	return out
}

func (a *Analyzer) today() time.Time {
	return dateOnly(a.now())
}

// dateOnly normalizes a timestamp to midnight UTC so day arithmetic is
// exact.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole-day difference from one date to
// another, negative when to precedes from.
func daysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)) / (24 * time.Hour))
}
