// Package dbtest реализует диагностический HTTP-обработчик проверки
// подключения к базе данных. Обработчик никогда не возвращает ошибку:
// все проблемы отражаются в значениях полей ответа.
package dbtest

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/trading-store/internal/lib/sl"
)

// Число имён коллекций в ответе ограничено.
const maxCollections = 10

// Storage описывает минимальный интерфейс хранилища для диагностики.
type Storage interface {
	Ping(ctx context.Context) error
	ListCollectionNames(ctx context.Context, max int) ([]string, error)
}

// Handler обрабатывает диагностический запрос состояния базы данных.
type Handler struct {
	log     *slog.Logger
	storage Storage
}

// New создает новый Handler с переданными логгером и хранилищем.
// Хранилище может быть nil, если подключение не удалось при старте.
func New(log *slog.Logger, storage Storage) *Handler {
	return &Handler{
		log:     log,
		storage: storage,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.diag.dbtest"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	// Индикаторы окружения заполняются всегда, независимо от состояния
	// подключения: это диагностика конфигурации, а не хранилища.
	result := map[string]any{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      envIndicator("DATABASE_URL"),
		"database_name":     envIndicator("DATABASE_NAME"),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.storage == nil {
		render.JSON(w, r, result)
		return
	}
	if err := h.storage.Ping(r.Context()); err != nil {
		log.Error("database ping failed", sl.Err(err))
		render.JSON(w, r, result)
		return
	}

	result["database"] = "✅ Available"
	result["connection_status"] = "Connected"

	names, err := h.storage.ListCollectionNames(r.Context(), maxCollections)
	if err != nil {
		log.Error("failed to list collections", sl.Err(err))
		result["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		render.JSON(w, r, result)
		return
	}

	result["database"] = "✅ Connected & Working"
	result["collections"] = names
	render.JSON(w, r, result)
}

// envIndicator возвращает метку наличия непустой переменной окружения.
func envIndicator(name string) string {
	if os.Getenv(name) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate усекает строку до max символов, не разрезая руны.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
