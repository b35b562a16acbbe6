// Package create реализует HTTP-обработчик создания товара каталога.
//
// Создавать товары может только пользователь с ролью admin; проверка
// роли выполняется на границе обработчика по данным из контекста.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/trading-store/internal/http/middlewarectx"
	"github.com/magabrotheeeer/trading-store/internal/http/response"
	"github.com/magabrotheeeer/trading-store/internal/lib/sl"
	"github.com/magabrotheeeer/trading-store/internal/models"
)

// Request — входные данные нового товара.
type Request struct {
	Title          string   `json:"title" validate:"required"`
	Description    *string  `json:"description"`
	Kind           string   `json:"kind" validate:"required,oneof=ebook signal course bot"`
	Categories     []string `json:"categories"`
	Price          float64  `json:"price" validate:"gte=0"`
	SalePrice      *float64 `json:"sale_price" validate:"omitempty,gte=0"`
	IsSubscription bool     `json:"is_subscription"`
	Interval       *string  `json:"interval" validate:"omitempty,oneof=week month year"`
	AssetURL       *string  `json:"asset_url"`
	ThumbnailURL   *string  `json:"thumbnail_url"`
}

// Service описывает интерфейс бизнес-логики создания товара.
type Service interface {
	Create(ctx context.Context, product models.Product) (string, error)
}

// Handler обрабатывает HTTP-запросы на создание товаров.
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
// @Summary Создать товар
// @Description Создает новый товар каталога. Доступно только администраторам.
// @Tags Products
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные нового товара"
// @Success 200 {object} map[string]any "ID созданного товара"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании товара"
// @Router /products [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.create"

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
	if user.Role != models.RoleAdmin {
		log.Error("forbidden: admins only", slog.String("role", user.Role))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("admins only"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("title", req.Title))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	product := models.Product{
		Title:          req.Title,
		Description:    req.Description,
		Kind:           req.Kind,
		Categories:     req.Categories,
		Price:          req.Price,
		SalePrice:      req.SalePrice,
		IsSubscription: req.IsSubscription,
		Interval:       req.Interval,
		AssetURL:       req.AssetURL,
		ThumbnailURL:   req.ThumbnailURL,
		Rating:         0,
	}
	id, err := h.service.Create(r.Context(), product)
	if err != nil {
		log.Error("failed to create product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create product"))
		return
	}

	log.Info("product created", slog.String("id", id))
	render.JSON(w, r, map[string]any{
		"id": id,
	})
}
