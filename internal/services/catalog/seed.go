package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/trading-store/internal/models"
)

// SeedProducts один раз наполняет пустую коллекцию товаров
// четырьмя образцами. Если коллекция уже содержит хотя бы один
// документ, ничего не вставляется.
//
// Частично засеянная коллекция не дополняется: проверка только
// на пустоту, без дедупликации.
func (s *Service) SeedProducts(ctx context.Context) error {
	const op = "catalog.SeedProducts"

	count, err := s.repo.CountProducts(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range sampleProducts() {
		if _, err := s.repo.CreateProduct(ctx, p); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	s.log.Info("seeded empty product collection", slog.Int("count", len(sampleProducts())))
	return nil
}

func sampleProducts() []models.Product {
	return []models.Product{
		{
			Title:          "Forex Mastery eBook",
			Description:    strPtr("Comprehensive guide to mastering Forex trading."),
			Kind:           models.KindEbook,
			Categories:     []string{"forex", "education"},
			Price:          49.0,
			SalePrice:      floatPtr(29.0),
			IsSubscription: false,
			Interval:       nil,
			AssetURL:       strPtr("https://example.com/ebooks/forex-mastery.pdf"),
			ThumbnailURL:   strPtr("https://images.unsplash.com/photo-1553729459-efe14ef6055d"),
		},
		{
			Title:          "Premium Crypto Signals",
			Description:    strPtr("High-probability crypto trade signals delivered daily."),
			Kind:           models.KindSignal,
			Categories:     []string{"crypto", "signals"},
			Price:          0,
			SalePrice:      nil,
			IsSubscription: true,
			Interval:       strPtr(models.IntervalMonth),
			AssetURL:       nil,
			ThumbnailURL:   strPtr("https://images.unsplash.com/photo-1642790106117-5ac12e8df149"),
		},
		{
			Title:          "Advanced Forex Course",
			Description:    strPtr("Video course covering advanced strategies."),
			Kind:           models.KindCourse,
			Categories:     []string{"forex", "course"},
			Price:          199.0,
			SalePrice:      floatPtr(149.0),
			IsSubscription: false,
			Interval:       nil,
			AssetURL:       strPtr("https://example.com/courses/advanced-forex"),
			ThumbnailURL:   strPtr("https://images.unsplash.com/photo-1517245386807-bb43f82c33c4"),
		},
		{
			Title:          "AutoTrader Pro Bot",
			Description:    strPtr("Algorithmic trading bot with configurable risk."),
			Kind:           models.KindBot,
			Categories:     []string{"bot", "automation"},
			Price:          0,
			SalePrice:      nil,
			IsSubscription: true,
			Interval:       strPtr(models.IntervalMonth),
			AssetURL:       nil,
			ThumbnailURL:   strPtr("https://images.unsplash.com/photo-1518779578993-ec3579fee39f"),
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}
