// Package list реализует HTTP-обработчик листинга заказов текущего
// пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/trading-store/internal/http/middlewarectx"
	"github.com/magabrotheeeer/trading-store/internal/http/response"
	"github.com/magabrotheeeer/trading-store/internal/lib/sl"
	"github.com/magabrotheeeer/trading-store/internal/models"
)

// Service описывает интерфейс бизнес-логики листинга заказов.
type Service interface {
	List(ctx context.Context, userID string) ([]models.Order, error)
}

// Handler обрабатывает HTTP-запросы листинга заказов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	orders, err := h.service.List(r.Context(), user.ID.Hex())
	if err != nil {
		log.Error("failed to list orders", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list orders"))
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	log.Info("orders listed", slog.Int("count", len(orders)))
	render.JSON(w, r, orders)
}
