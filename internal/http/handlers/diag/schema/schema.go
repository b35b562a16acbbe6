// Package schema реализует HTTP-обработчик, возвращающий список
// коллекций предметной области.
package schema

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// Handler обрабатывает запрос списка коллекций.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]any{
		"schemas": []string{"user", "product", "order", "subscription", "review"},
	})
}
