package tradingstore

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/trading-store/internal/config"
	"github.com/magabrotheeeer/trading-store/internal/lib/jwt"
	"github.com/magabrotheeeer/trading-store/internal/lib/sl"
	authservice "github.com/magabrotheeeer/trading-store/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/trading-store/internal/services/catalog"
	orderservice "github.com/magabrotheeeer/trading-store/internal/services/order"
	reviewservice "github.com/magabrotheeeer/trading-store/internal/services/review"
	subservice "github.com/magabrotheeeer/trading-store/internal/services/subscription"
	"github.com/magabrotheeeer/trading-store/internal/storage/mongodb"
)

type App struct {
	server  *http.Server
	logger  *slog.Logger
	storage *mongodb.Storage
}

// New собирает приложение: хранилище, сервисы, маршруты и HTTP-сервер.
//
// Недоступность MongoDB при старте не фатальна: сервис поднимается
// без хранилища, диагностический маршрут сообщает о его состоянии,
// а операции с данными возвращают ошибку.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	storage, err := mongodb.New(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		logger.Warn("failed to connect to mongodb, starting without storage", sl.Err(err))
		storage = nil
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewService(storage, jwtMaker)
	catalogService := catalogservice.NewService(storage, logger)
	orderService := orderservice.NewService(storage, logger)
	subscriptionService := subservice.NewService(storage, logger)
	reviewService := reviewservice.NewService(storage, logger)

	if storage != nil {
		if err := catalogService.SeedProducts(ctx); err != nil {
			logger.Warn("failed to seed products", sl.Err(err))
		}
	}

	router := chi.NewRouter()

	RegisterRoutes(router, logger, storage,
		authService, catalogService, orderService, subscriptionService, reviewService)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		logger:  logger,
		storage: storage,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.storage != nil {
			if closeErr := a.storage.Close(timeoutCtx); closeErr != nil {
				a.logger.Error("failed to close storage", sl.Err(closeErr))
			}
		}
		return err
	}
}
