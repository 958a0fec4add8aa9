package main

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/vastberg/warehouse/internal/adapter/storage"
	"github.com/vastberg/warehouse/internal/core/domain"
	"github.com/vastberg/warehouse/internal/core/service"
)

const (
	catalogName    = "main"
	maxGroupWeight = 10.0
	outlierSigma   = 2.0
	expiryWindow   = 3
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	registry := storage.NewRegistry()
	catalog := registry.Catalog(catalogName)
	interner := domain.NewCategoryInterner()

	if err := seed(catalog, interner); err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalog")
	}
	log.Info().Str("catalog", catalog.Name()).Int("products", len(catalog.Products())).Msg("catalog seeded")

	analyzer := service.NewAnalyzer(catalog)

	stats := analyzer.InventoryStatistics()
	log.Info().
		Int("total", stats.TotalProducts).
		Str("total_value", stats.TotalValue.String()).
		Str("average_price", stats.AveragePrice.String()).
		Int("expired", stats.ExpiredCount).
		Int("categories", stats.CategoryCount).
		Str("most_expensive", stats.MostExpensive.Name()).
		Str("cheapest", stats.Cheapest.Name()).
		Msg("inventory statistics")

	validation := analyzer.ValidateInventoryConstraints()
	log.Info().
		Float64("high_value_pct", validation.HighValuePercentage).
		Int("diversity", validation.CategoryDiversity).
		Bool("high_value_warning", validation.HighValueWarning).
		Bool("minimum_diversity", validation.MinimumDiversity).
		Msg("inventory validation")

	for category, avg := range analyzer.WeightedAveragePriceByCategory() {
		log.Info().Str("category", category.Name()).Str("weighted_avg", avg.String()).Msg("weighted average price")
	}

	expiring := analyzer.FindExpiringWithinDays(expiryWindow)
	for _, p := range expiring {
		log.Info().Str("product", p.Name()).Time("expires", p.ExpirationDate()).Msg("expiring soon")
	}

	for p, price := range analyzer.ExpirationBasedDiscounts() {
		if !price.Equal(p.Price()) {
			log.Info().Str("product", p.Name()).Str("price", p.Price().String()).Str("discounted", price.String()).Msg("discount applied")
		}
	}

	for _, p := range analyzer.FindPriceOutliers(outlierSigma) {
		log.Warn().Str("product", p.Name()).Str("price", p.Price().String()).Msg("price outlier")
	}

	groups := analyzer.OptimizeShippingGroups(maxGroupWeight)
	for i, g := range groups {
		log.Info().
			Int("group", i+1).
			Int("items", len(g.Products())).
			Float64("weight", g.TotalWeight()).
			Str("shipping_cost", g.TotalShippingCost().String()).
			Msg("shipping group")
	}
}

func seed(catalog *storage.MemoryCatalog, interner *domain.CategoryInterner) error {
	now := time.Now()

	type foodSpec struct {
		name, category, price string
		expiresInDays         int
		weight                string
	}
	foods := []foodSpec{
		{"Whole Milk", "dairy", "15.50", 0, "1.0"},
		{"Aged Cheese", "dairy", "89.00", 14, "0.4"},
		{"Yogurt", "dairy", "12.00", 1, "0.5"},
		{"Sourdough Bread", "bakery", "42.00", 2, "0.6"},
		{"Rye Crisp", "bakery", "25.00", 120, "0.3"},
		{"Smoked Salmon", "seafood", "159.00", -1, "0.8"},
	}
	for _, f := range foods {
		cat, err := interner.Category(f.category)
		if err != nil {
			return err
		}
		p, err := domain.NewFoodProduct(uuid.New(), f.name, cat, decimal.RequireFromString(f.price),
			now.AddDate(0, 0, f.expiresInDays), decimal.RequireFromString(f.weight))
		if err != nil {
			return err
		}
		if err := catalog.Add(p); err != nil {
			return err
		}
	}

	type electronicsSpec struct {
		name, category, price string
		warrantyMonths        int
		weight                string
	}
	gadgets := []electronicsSpec{
		{"Laptop", "electronics", "12999.00", 24, "2.2"},
		{"Monitor", "electronics", "3499.00", 36, "6.5"},
		{"Headphones", "electronics", "899.00", 12, "0.3"},
	}
	for _, g := range gadgets {
		cat, err := interner.Category(g.category)
		if err != nil {
			return err
		}
		p, err := domain.NewElectronicsProduct(uuid.New(), g.name, cat, decimal.RequireFromString(g.price),
			g.warrantyMonths, decimal.RequireFromString(g.weight))
		if err != nil {
			return err
		}
		if err := catalog.Add(p); err != nil {
			return err
		}
	}

	return nil
}
