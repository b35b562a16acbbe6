// Package catalog содержит бизнес-логику каталога товаров:
// создание, листинг и первичное наполнение коллекции.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/trading-store/internal/models"
)

// listLimit — жёсткий предел количества товаров в листинге.
const listLimit = 100

// ProductRepository определяет методы для работы с товарами в хранилище.
type ProductRepository interface {
	// CreateProduct сохраняет товар и возвращает его ID.
	CreateProduct(ctx context.Context, product models.Product) (string, error)
	// ListProducts возвращает не более limit товаров.
	ListProducts(ctx context.Context, limit int64) ([]models.Product, error)
	// CountProducts возвращает количество товаров в коллекции.
	CountProducts(ctx context.Context) (int64, error)
}

// Service реализует бизнес-логику каталога товаров.
type Service struct {
	repo ProductRepository
	log  *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo ProductRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create сохраняет новый товар и возвращает его ID.
func (s *Service) Create(ctx context.Context, product models.Product) (string, error) {
	const op = "catalog.Create"
	id, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created new product", slog.String("id", id), slog.String("title", product.Title))
	return id, nil
}

// List возвращает товары каталога, не более 100.
func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	const op = "catalog.List"
	products, err := s.repo.ListProducts(ctx, listLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}
