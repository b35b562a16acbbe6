package mongodb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/trading-store/internal/models"
)

func setupTestDb(t *testing.T) (*Storage, func()) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForListeningPort("27017/tcp").
			WithStartupTimeout(3 * time.Minute),
	}

	mongoContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start container")

	port, err := mongoContainer.MappedPort(ctx, "27017")
	require.NoError(t, err, "failed to get port")

	uri := fmt.Sprintf("mongodb://localhost:%s", port.Port())

	// Пробуем подключиться несколько раз с ретраями
	var storage *Storage
	for i := 0; i < 10; i++ {
		storage, err = New(ctx, uri, "trading_store_test")
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")

	cleanup := func() {
		if storage != nil {
			_ = storage.Close(ctx)
		}
		if mongoContainer != nil {
			_ = mongoContainer.Terminate(ctx)
		}
	}

	return storage, cleanup
}

func TestStorage_Users(t *testing.T) {
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	email := fmt.Sprintf("user-%s@example.com", uuid.NewString())
	id, err := storage.CreateUser(ctx, models.User{
		Name:           "Test User",
		Email:          email,
		HashedPassword: "hashed",
		Role:           models.RoleUser,
		IsActive:       true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	user, err := storage.FindUserByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, email, user.Email)
	assert.Equal(t, id, user.ID.Hex())

	_, err = storage.FindUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_Products(t *testing.T) {
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	count, err := storage.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	id, err := storage.CreateProduct(ctx, models.Product{
		Title: "Test Ebook",
		Kind:  models.KindEbook,
		Price: 49,
	})
	require.NoError(t, err)

	product, err := storage.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Test Ebook", product.Title)

	_, err = storage.GetProduct(ctx, "not-an-object-id")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = storage.GetProduct(ctx, "64f000000000000000000000")
	assert.ErrorIs(t, err, ErrNotFound)

	products, err := storage.ListProducts(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, products, 1)

	count, err = storage.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Лимит усекает выборку, когда документов больше
	for i := 0; i < 6; i++ {
		_, err = storage.CreateProduct(ctx, models.Product{
			Title: fmt.Sprintf("Extra Ebook %d", i),
			Kind:  models.KindEbook,
			Price: 10,
		})
		require.NoError(t, err)
	}
	count, err = storage.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)

	products, err = storage.ListProducts(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, products, 5)
}

func TestStorage_OrdersSubscriptionsReviews(t *testing.T) {
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	userID := uuid.NewString()
	productID := uuid.NewString()

	_, err := storage.CreateOrder(ctx, models.Order{
		UserID:    userID,
		ProductID: productID,
		Amount:    29,
		Currency:  models.CurrencyUSD,
		Status:    models.OrderStatusPaid,
	})
	require.NoError(t, err)

	orders, err := storage.ListOrdersByUser(ctx, userID, 100)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 29.0, orders[0].Amount)

	// Чужие заказы не возвращаются
	orders, err = storage.ListOrdersByUser(ctx, uuid.NewString(), 100)
	require.NoError(t, err)
	assert.Empty(t, orders)

	// Лимит действует и на отфильтрованную выборку
	for i := 0; i < 6; i++ {
		_, err = storage.CreateOrder(ctx, models.Order{
			UserID:    userID,
			ProductID: productID,
			Amount:    float64(i),
			Currency:  models.CurrencyUSD,
			Status:    models.OrderStatusPaid,
		})
		require.NoError(t, err)
	}
	orders, err = storage.ListOrdersByUser(ctx, userID, 5)
	require.NoError(t, err)
	assert.Len(t, orders, 5)

	now := time.Now().UTC().Truncate(time.Millisecond)
	_, err = storage.CreateSubscription(ctx, models.Subscription{
		UserID:           userID,
		ProductID:        productID,
		Status:           models.SubscriptionStatusActive,
		StartedAt:        now,
		CurrentPeriodEnd: now.Add(30 * 24 * time.Hour),
	})
	require.NoError(t, err)

	subs, err := storage.ListSubscriptionsByUser(ctx, userID, 100)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, models.SubscriptionStatusActive, subs[0].Status)

	comment := "great product"
	_, err = storage.CreateReview(ctx, models.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    5,
		Comment:   &comment,
	})
	require.NoError(t, err)

	reviews, err := storage.ListReviewsByProduct(ctx, productID, 100)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
}

func TestStorage_Diagnostics(t *testing.T) {
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, storage.Ping(ctx))

	_, err := storage.CreateProduct(ctx, models.Product{Title: "One", Kind: models.KindEbook})
	require.NoError(t, err)
	_, err = storage.CreateUser(ctx, models.User{Email: "diag@example.com"})
	require.NoError(t, err)

	names, err := storage.ListCollectionNames(ctx, 5)
	require.NoError(t, err)
	assert.Contains(t, names, collProducts)
	assert.Contains(t, names, collUsers)
	assert.LessOrEqual(t, len(names), 5)
}

func TestStorage_NotConfigured(t *testing.T) {
	var storage *Storage

	_, err := storage.CreateProduct(context.Background(), models.Product{Title: "X"})
	assert.ErrorIs(t, err, ErrUnavailable)

	err = storage.Ping(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
