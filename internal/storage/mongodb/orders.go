package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/magabrotheeeer/trading-store/internal/models"
)

// CreateOrder сохраняет заказ и возвращает его ID.
func (s *Storage) CreateOrder(ctx context.Context, order models.Order) (string, error) {
	const op = "storage.CreateOrder"
	id, err := s.insert(ctx, collOrders, order)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// ListOrdersByUser возвращает не более limit заказов пользователя.
func (s *Storage) ListOrdersByUser(ctx context.Context, userID string, limit int64) ([]models.Order, error) {
	const op = "storage.ListOrdersByUser"
	var orders []models.Order
	if err := s.find(ctx, collOrders, bson.M{"user_id": userID}, limit, &orders); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}
