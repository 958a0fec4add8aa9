package service

import (
	"github.com/shopspring/decimal"

	"github.com/vastberg/warehouse/internal/core/domain"
)

// Policy constants for inventory validation. The thresholds are fixed
// business rules, not configuration.
var highValueThreshold = decimal.NewFromInt(1000)

const (
	highValueWarningPercentage = 70.0
	minimumCategoryDiversity   = 2
)

// InventoryValidation summarizes business-rule checks over the
// inventory: the share of high-value products and the category
// diversity, with derived pass/fail flags.
type InventoryValidation struct {
	HighValuePercentage float64
	CategoryDiversity   int
	HighValueWarning    bool
	MinimumDiversity    bool
}

func newInventoryValidation(percentage float64, diversity int) InventoryValidation {
	return InventoryValidation{
		HighValuePercentage: percentage,
		CategoryDiversity:   diversity,
		HighValueWarning:    percentage > highValueWarningPercentage,
		MinimumDiversity:    diversity >= minimumCategoryDiversity,
	}
}

// ValidateInventoryConstraints evaluates the high-value ratio (price
// >= 1000) and category diversity. An empty catalog yields zero
// percentage and zero diversity.
func (a *Analyzer) ValidateInventoryConstraints() InventoryValidation {
	products := a.catalog.Products()
	if len(products) == 0 {
		return newInventoryValidation(0, 0)
	}

	highValue := 0
	categories := make(map[domain.Category]struct{})
	for _, p := range products {
		if p.Price().GreaterThanOrEqual(highValueThreshold) {
			highValue++
		}
		categories[p.Category()] = struct{}{}
	}

	percentage := float64(highValue) * 100.0 / float64(len(products))
	return newInventoryValidation(percentage, len(categories))
}

// InventoryStatistics is a snapshot of aggregate inventory metrics,
// computed fresh on every call. MostExpensive and Cheapest are nil for
// an empty catalog; under price ties the first product in catalog
// order wins.
type InventoryStatistics struct {
	TotalProducts int
	TotalValue    decimal.Decimal
	AveragePrice  decimal.Decimal
	ExpiredCount  int
	CategoryCount int
	MostExpensive domain.Product
	Cheapest      domain.Product
}

func (a *Analyzer) InventoryStatistics() InventoryStatistics {
	products := a.catalog.Products()
	stats := InventoryStatistics{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
		AveragePrice:  decimal.Zero,
	}
	if len(products) == 0 {
		return stats
	}

	today := a.today()
	categories := make(map[domain.Category]struct{})
	for _, p := range products {
		stats.TotalValue = stats.TotalValue.Add(p.Price())
		categories[p.Category()] = struct{}{}

		if per, ok := p.(domain.Perishable); ok && dateOnly(per.ExpirationDate()).Before(today) {
			stats.ExpiredCount++
		}
		if stats.MostExpensive == nil || p.Price().GreaterThan(stats.MostExpensive.Price()) {
			stats.MostExpensive = p
		}
		if stats.Cheapest == nil || p.Price().LessThan(stats.Cheapest.Price()) {
			stats.Cheapest = p
		}
	}

	stats.AveragePrice = stats.TotalValue.Div(decimal.NewFromInt(int64(len(products)))).Round(2)
	stats.CategoryCount = len(categories)
	return stats
}
