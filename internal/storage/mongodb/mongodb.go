// Package mongodb реализует хранилище данных на основе MongoDB
// для магазина цифровых товаров. Каждая сущность лежит в своей
// коллекции; методы работают с одиночными документами без транзакций.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Имена коллекций документного хранилища.
const (
	collUsers         = "user"
	collProducts      = "product"
	collOrders        = "order"
	collSubscriptions = "subscription"
	collReviews       = "review"
)

var (
	// ErrUnavailable возвращается, когда хранилище не сконфигурировано.
	ErrUnavailable = errors.New("storage is not configured")
	// ErrNotFound возвращается, когда документ отсутствует в коллекции.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID возвращается для некорректного идентификатора документа.
	ErrInvalidID = errors.New("invalid document id")
)

// Storage инкапсулирует подключение к MongoDB и реализует методы
// работы с пользователями, товарами, заказами, подписками и отзывами.
type Storage struct {
	client *mongo.Client
	db     *mongo.Database
}

// New подключается к MongoDB по строке подключения и проверяет соединение.
func New(ctx context.Context, uri, databaseName string) (*Storage, error) {
	const op = "storage.New"

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		client: client,
		db:     client.Database(databaseName),
	}, nil
}

// guard проверяет, что хранилище сконфигурировано.
func (s *Storage) guard() error {
	if s == nil || s.db == nil {
		return ErrUnavailable
	}
	return nil
}

// insert добавляет документ в коллекцию и возвращает hex-идентификатор.
func (s *Storage) insert(ctx context.Context, collection string, doc any) (string, error) {
	const op = "storage.insert"
	if err := s.guard(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id type %T", op, res.InsertedID)
	}
	return oid.Hex(), nil
}

// find выбирает документы коллекции по фильтру с ограничением количества
// и декодирует их в results. Порядок — естественный порядок хранения.
func (s *Storage) find(ctx context.Context, collection string, filter bson.M, limit int64, results any) error {
	const op = "storage.find"
	if err := s.guard(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	cur, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = cur.Close(ctx)
	}()
	if err = cur.All(ctx, results); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Ping проверяет доступность хранилища.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.Ping"
	if err := s.guard(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListCollectionNames возвращает не более max имён коллекций базы данных.
func (s *Storage) ListCollectionNames(ctx context.Context, max int) ([]string, error) {
	const op = "storage.ListCollectionNames"
	if err := s.guard(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(names) > max {
		names = names[:max]
	}
	return names, nil
}

// Close закрывает подключение к MongoDB.
func (s *Storage) Close(ctx context.Context) error {
	const op = "storage.Close"
	if err := s.guard(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
