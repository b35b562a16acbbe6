// Package list реализует HTTP-обработчик листинга отзывов о товаре.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/trading-store/internal/http/response"
	"github.com/magabrotheeeer/trading-store/internal/lib/sl"
	"github.com/magabrotheeeer/trading-store/internal/models"
)

// Service описывает интерфейс бизнес-логики листинга отзывов.
type Service interface {
	List(ctx context.Context, productID string) ([]models.Review, error)
}

// Handler обрабатывает HTTP-запросы листинга отзывов.
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
	const op = "handlers.review.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	productID := chi.URLParam(r, "product_id")

	reviews, err := h.service.List(r.Context(), productID)
	if err != nil {
		log.Error("failed to list reviews", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list reviews"))
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	log.Info("reviews listed", slog.String("product_id", productID), slog.Int("count", len(reviews)))
	render.JSON(w, r, reviews)
}
