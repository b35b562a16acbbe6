package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/magabrotheeeer/trading-store/internal/models"
)

// CreateReview сохраняет отзыв и возвращает его ID.
func (s *Storage) CreateReview(ctx context.Context, review models.Review) (string, error) {
	const op = "storage.CreateReview"
	id, err := s.insert(ctx, collReviews, review)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// ListReviewsByProduct возвращает не более limit отзывов о товаре.
//
// Фильтрация идёт по строковому равенству product_id, существование
// товара не проверяется.
func (s *Storage) ListReviewsByProduct(ctx context.Context, productID string, limit int64) ([]models.Review, error) {
	const op = "storage.ListReviewsByProduct"
	var reviews []models.Review
	if err := s.find(ctx, collReviews, bson.M{"product_id": productID}, limit, &reviews); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reviews, nil
}
