package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/magabrotheeeer/trading-store/internal/models"
)

// CreateProduct сохраняет товар и возвращает его ID.
func (s *Storage) CreateProduct(ctx context.Context, product models.Product) (string, error) {
	const op = "storage.CreateProduct"
	id, err := s.insert(ctx, collProducts, product)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// GetProduct возвращает товар по строковому идентификатору.
//
// Для некорректного идентификатора возвращается ErrInvalidID,
// для отсутствующего товара — ErrNotFound.
func (s *Storage) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	const op = "storage.GetProduct"
	if err := s.guard(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidID)
	}
	var p models.Product
	err = s.db.Collection(collProducts).FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// ListProducts возвращает не более limit товаров в порядке хранения.
func (s *Storage) ListProducts(ctx context.Context, limit int64) ([]models.Product, error) {
	const op = "storage.ListProducts"
	var products []models.Product
	if err := s.find(ctx, collProducts, bson.M{}, limit, &products); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

// CountProducts возвращает количество документов в коллекции товаров.
func (s *Storage) CountProducts(ctx context.Context) (int64, error) {
	const op = "storage.CountProducts"
	if err := s.guard(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := s.db.Collection(collProducts).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
