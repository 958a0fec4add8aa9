package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vastberg/warehouse/internal/core/domain"
)

// ShippingGroup is one weight-bounded batch of shippable products
// assembled by OptimizeShippingGroups. Groups are immutable after
// construction and belong to the caller that requested them.
type ShippingGroup struct {
	products          []domain.Shippable
	totalWeight       float64
	totalShippingCost decimal.Decimal
}

func NewShippingGroup(products []domain.Shippable) ShippingGroup {
	g := ShippingGroup{
		products:          append([]domain.Shippable(nil), products...),
		totalShippingCost: decimal.Zero,
	}
	for _, s := range g.products {
		g.totalWeight += s.Weight()
		g.totalShippingCost = g.totalShippingCost.Add(s.ShippingCost())
	}
	return g
}

func (g ShippingGroup) Products() []domain.Shippable {
	return append([]domain.Shippable(nil), g.products...)
}

func (g ShippingGroup) TotalWeight() float64 { return g.totalWeight }

func (g ShippingGroup) TotalShippingCost() decimal.Decimal { return g.totalShippingCost }

// OptimizeShippingGroups partitions every shippable product into
// groups whose total weight stays within maxWeight, using first-fit
// decreasing: items are taken in descending weight order (stable, so
// equal weights keep catalog order) and placed into the first group
// with room, or a new group when none fits. A single item heavier than
// maxWeight becomes its own over-limit group rather than an error. FFD
// is a heuristic; the group count is not guaranteed minimal.
func (a *Analyzer) OptimizeShippingGroups(maxWeight float64) []ShippingGroup {
	items := a.catalog.ShippableProducts()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Weight() > items[j].Weight()
	})

	var bins [][]domain.Shippable
	var binWeights []float64
	for _, item := range items {
		w := item.Weight()
		placed := false
		for i := range bins {
			if binWeights[i]+w <= maxWeight {
				bins[i] = append(bins[i], item)
				binWeights[i] += w
				placed = true
				break
			}
		}
		if !placed {
			bins = append(bins, []domain.Shippable{item})
			binWeights = append(binWeights, w)
		}
	}

	groups := make([]ShippingGroup, 0, len(bins))
	for _, bin := range bins {
		groups = append(groups, NewShippingGroup(bin))
	}
	return groups
}
