// Package review содержит бизнес-логику отзывов о товарах.
package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/trading-store/internal/models"
)

// listLimit — жёсткий предел количества отзывов в листинге.
const listLimit = 100

// Repository определяет методы хранилища, нужные для работы с отзывами.
type Repository interface {
	// GetProduct возвращает товар по строковому идентификатору.
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	// CreateReview сохраняет отзыв и возвращает его ID.
	CreateReview(ctx context.Context, review models.Review) (string, error)
	// ListReviewsByProduct возвращает не более limit отзывов о товаре.
	ListReviewsByProduct(ctx context.Context, productID string, limit int64) ([]models.Review, error)
}

// Service реализует бизнес-логику отзывов.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Add сохраняет отзыв пользователя о товаре и возвращает ID записи.
//
// Товар должен существовать на момент записи; ошибки хранилища
// (mongodb.ErrInvalidID, mongodb.ErrNotFound) пробрасываются вызывающему.
func (s *Service) Add(ctx context.Context, userID, productID string, rating int, comment *string) (string, error) {
	const op = "review.Add"

	if _, err := s.repo.GetProduct(ctx, productID); err != nil {
		return "", err
	}

	entry := models.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
	}
	id, err := s.repo.CreateReview(ctx, entry)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("created new review", slog.String("id", id), slog.String("product_id", productID))
	return id, nil
}

// List возвращает отзывы о товаре, не более 100. Существование товара
// при чтении не проверяется.
func (s *Service) List(ctx context.Context, productID string) ([]models.Review, error) {
	const op = "review.List"
	reviews, err := s.repo.ListReviewsByProduct(ctx, productID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reviews, nil
}
