// Package create реализует HTTP-обработчик оформления заказа.
//
// Платёж не проводится: заказ создаётся сразу со статусом "paid",
// для курсов и ботов дополнительно выпускается лицензионный ключ.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/trading-store/internal/http/middlewarectx"
	"github.com/magabrotheeeer/trading-store/internal/http/response"
	"github.com/magabrotheeeer/trading-store/internal/lib/sl"
	"github.com/magabrotheeeer/trading-store/internal/storage/mongodb"
)

// Request — входные данные нового заказа.
type Request struct {
	ProductID string `json:"product_id" validate:"required"`
}

// Service описывает интерфейс бизнес-логики оформления заказа.
type Service interface {
	Create(ctx context.Context, userID, productID string) (string, string, error)
}

// Handler обрабатывает HTTP-запросы на оформление заказов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Оформить заказ
// @Description Создает заказ текущего пользователя на товар. Возвращает ID заказа и статус.
// @Tags Orders
// @Accept  json
// @Produce  json
// @Param request body Request true "Идентификатор товара"
// @Success 200 {object} map[string]any "Созданный заказ"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или идентификатор товара"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Товар не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при оформлении заказа"
// @Router /orders [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.create"

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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	id, status, err := h.service.Create(r.Context(), user.ID.Hex(), req.ProductID)
	switch {
	case errors.Is(err, mongodb.ErrInvalidID):
		log.Error("invalid product id", slog.String("product_id", req.ProductID))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid product id"))
		return
	case errors.Is(err, mongodb.ErrNotFound):
		log.Error("product not found", slog.String("product_id", req.ProductID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("product not found"))
		return
	case err != nil:
		log.Error("failed to create order", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create order"))
		return
	}

	log.Info("order created", slog.String("id", id), slog.String("status", status))
	render.JSON(w, r, map[string]any{
		"id":     id,
		"status": status,
	})
}
