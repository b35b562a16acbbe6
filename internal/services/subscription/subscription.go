// Package subscription содержит бизнес-логику подписок на подписочные
// товары: создание с расчётом конца расчётного периода и листинг.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/trading-store/internal/lib/interval"
	"github.com/magabrotheeeer/trading-store/internal/models"
	"github.com/magabrotheeeer/trading-store/internal/storage/mongodb"
)

// listLimit — жёсткий предел количества подписок в листинге.
const listLimit = 100

// ErrNotSubscription возвращается, когда товар отсутствует или
// не является подписочным.
var ErrNotSubscription = errors.New("product is not a subscription")

// Repository определяет методы хранилища, нужные для работы с подписками.
type Repository interface {
	// GetProduct возвращает товар по строковому идентификатору.
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	// CreateSubscription сохраняет подписку и возвращает её ID.
	CreateSubscription(ctx context.Context, sub models.Subscription) (string, error)
	// ListSubscriptionsByUser возвращает не более limit подписок пользователя.
	ListSubscriptionsByUser(ctx context.Context, userID string, limit int64) ([]models.Subscription, error)
}

// Service реализует бизнес-логику подписок.
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

// Create оформляет подписку пользователя на подписочный товар и
// возвращает ID подписки и её статус.
//
// Отсутствующий товар и товар без is_subscription дают ErrNotSubscription;
// некорректный идентификатор — mongodb.ErrInvalidID. Конец расчётного
// периода считается от started_at по интервалу товара.
func (s *Service) Create(ctx context.Context, userID, productID string) (string, string, error) {
	const op = "subscription.Create"

	product, err := s.repo.GetProduct(ctx, productID)
	if errors.Is(err, mongodb.ErrNotFound) {
		return "", "", ErrNotSubscription
	}
	if err != nil {
		return "", "", err
	}
	if !product.IsSubscription {
		return "", "", ErrNotSubscription
	}

	now := time.Now().UTC()
	entry := models.Subscription{
		UserID:           userID,
		ProductID:        productID,
		Status:           models.SubscriptionStatusActive,
		StartedAt:        now,
		CurrentPeriodEnd: now.Add(interval.Period(product.Interval)),
	}
	id, err := s.repo.CreateSubscription(ctx, entry)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("created new subscription", slog.String("id", id), slog.String("product_id", productID))
	return id, entry.Status, nil
}

// List возвращает подписки пользователя, не более 100.
func (s *Service) List(ctx context.Context, userID string) ([]models.Subscription, error) {
	const op = "subscription.List"
	subs, err := s.repo.ListSubscriptionsByUser(ctx, userID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return subs, nil
}
