// Package tradingstore предоставляет маршруты и сборку основного приложения.
package tradingstore

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/trading-store/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/trading-store/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/trading-store/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/trading-store/internal/http/handlers/diag/dbtest"
	"github.com/magabrotheeeer/trading-store/internal/http/handlers/diag/health"
	"github.com/magabrotheeeer/trading-store/internal/http/handlers/diag/schema"
	ordercreate "github.com/magabrotheeeer/trading-store/internal/http/handlers/order/create"
	orderlist "github.com/magabrotheeeer/trading-store/internal/http/handlers/order/list"
	productcreate "github.com/magabrotheeeer/trading-store/internal/http/handlers/product/create"
	productlist "github.com/magabrotheeeer/trading-store/internal/http/handlers/product/list"
	reviewcreate "github.com/magabrotheeeer/trading-store/internal/http/handlers/review/create"
	reviewlist "github.com/magabrotheeeer/trading-store/internal/http/handlers/review/list"
	subcreate "github.com/magabrotheeeer/trading-store/internal/http/handlers/subscription/create"
	sublist "github.com/magabrotheeeer/trading-store/internal/http/handlers/subscription/list"
	"github.com/magabrotheeeer/trading-store/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/trading-store/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/trading-store/internal/services/catalog"
	orderservice "github.com/magabrotheeeer/trading-store/internal/services/order"
	reviewservice "github.com/magabrotheeeer/trading-store/internal/services/review"
	subservice "github.com/magabrotheeeer/trading-store/internal/services/subscription"
	"github.com/magabrotheeeer/trading-store/internal/storage/mongodb"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, storage *mongodb.Storage,
	authService *authservice.Service, catalogService *catalogservice.Service,
	orderService *orderservice.Service, subscriptionService *subservice.Service,
	reviewService *reviewservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Get("/", health.New(logger).ServeHTTP)
	r.Get("/schema", schema.New(logger).ServeHTTP)
	r.Get("/test", dbtest.New(logger, diagStorage(storage)).ServeHTTP)
	r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
	r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
	r.Get("/products", productlist.New(logger, catalogService).ServeHTTP)
	r.Get("/reviews/{product_id}", reviewlist.New(logger, reviewService).ServeHTTP)

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(authService, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Get("/auth/me", me.New(logger).ServeHTTP)
		r.Post("/products", productcreate.New(logger, catalogService).ServeHTTP)
		r.Post("/orders", ordercreate.New(logger, orderService).ServeHTTP)
		r.Get("/orders", orderlist.New(logger, orderService).ServeHTTP)
		r.Post("/subscriptions", subcreate.New(logger, subscriptionService).ServeHTTP)
		r.Get("/subscriptions", sublist.New(logger, subscriptionService).ServeHTTP)
		r.Post("/reviews", reviewcreate.New(logger, reviewService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

// diagStorage оборачивает nil *mongodb.Storage в nil-интерфейс,
// чтобы диагностический обработчик видел отсутствие хранилища.
func diagStorage(storage *mongodb.Storage) dbtest.Storage {
	if storage == nil {
		return nil
	}
	return storage
}
