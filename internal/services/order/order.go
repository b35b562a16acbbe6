// Package order содержит бизнес-логику оформления заказов на цифровые
// товары. Платёжный шлюз не подключён: заказ сразу сохраняется со
// статусом "paid".
package order

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/trading-store/internal/lib/license"
	"github.com/magabrotheeeer/trading-store/internal/models"
)

// listLimit — жёсткий предел количества заказов в листинге.
const listLimit = 100

// Repository определяет методы хранилища, нужные для работы с заказами.
type Repository interface {
	// GetProduct возвращает товар по строковому идентификатору.
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	// CreateOrder сохраняет заказ и возвращает его ID.
	CreateOrder(ctx context.Context, order models.Order) (string, error)
	// ListOrdersByUser возвращает не более limit заказов пользователя.
	ListOrdersByUser(ctx context.Context, userID string, limit int64) ([]models.Order, error)
}

// Service реализует бизнес-логику заказов.
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

// Create оформляет заказ пользователя на товар и возвращает ID заказа
// и его статус.
//
// Сумма берётся из sale_price, если тот задан и не равен нулю, иначе из
// price, иначе ноль. Лицензионный ключ генерируется только для товаров
// вида course и bot. Ошибки хранилища (mongodb.ErrInvalidID,
// mongodb.ErrNotFound) пробрасываются вызывающему.
func (s *Service) Create(ctx context.Context, userID, productID string) (string, string, error) {
	const op = "order.Create"

	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return "", "", err
	}

	var amount float64
	switch {
	case product.SalePrice != nil && *product.SalePrice > 0:
		amount = *product.SalePrice
	case product.Price > 0:
		amount = product.Price
	}

	var licenseKey *string
	if product.Kind == models.KindCourse || product.Kind == models.KindBot {
		key, err := license.NewKey()
		if err != nil {
			return "", "", fmt.Errorf("%s: %w", op, err)
		}
		licenseKey = &key
	}

	entry := models.Order{
		UserID:     userID,
		ProductID:  productID,
		Amount:     amount,
		Currency:   models.CurrencyUSD,
		Status:     models.OrderStatusPaid,
		LicenseKey: licenseKey,
	}
	id, err := s.repo.CreateOrder(ctx, entry)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("created new order", slog.String("id", id), slog.String("product_id", productID))
	return id, entry.Status, nil
}

// List возвращает заказы пользователя, не более 100.
func (s *Service) List(ctx context.Context, userID string) ([]models.Order, error) {
	const op = "order.List"
	orders, err := s.repo.ListOrdersByUser(ctx, userID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}
