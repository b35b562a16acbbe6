package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/magabrotheeeer/trading-store/internal/models"
)

// CreateSubscription сохраняет подписку и возвращает её ID.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (string, error) {
	const op = "storage.CreateSubscription"
	id, err := s.insert(ctx, collSubscriptions, sub)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// ListSubscriptionsByUser возвращает не более limit подписок пользователя.
func (s *Storage) ListSubscriptionsByUser(ctx context.Context, userID string, limit int64) ([]models.Subscription, error) {
	const op = "storage.ListSubscriptionsByUser"
	var subs []models.Subscription
	if err := s.find(ctx, collSubscriptions, bson.M{"user_id": userID}, limit, &subs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return subs, nil
}
