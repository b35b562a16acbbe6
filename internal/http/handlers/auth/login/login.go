// Package login реализует HTTP-обработчик аутентификации пользователей.
//
// Учетные данные принимаются как form-поля username и password
// (OAuth2-совместимая форма, username несёт email). При успехе
// возвращается токен доступа.
package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/trading-store/internal/http/response"
	"github.com/magabrotheeeer/trading-store/internal/lib/sl"
	"github.com/magabrotheeeer/trading-store/internal/services/auth"
)

// Request — учетные данные из формы входа.
type Request struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Response — ответ с выпущенным токеном доступа.
type Response struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Handler обрабатывает HTTP-запросы на вход.
type Handler struct {
	log         *slog.Logger
	authService Service
	validate    *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, authService Service) *Handler {
	return &Handler{
		log:         log,
		authService: authService,
		validate:    validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Вход пользователя
// @Description Аутентифицирует пользователя по email (поле username) и паролю. Возвращает bearer-токен со сроком действия 24 часа.
// @Tags Auth
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param username formData string true "Email пользователя"
// @Param password formData string true "Пароль"
// @Success 200 {object} Response "Токен доступа"
// @Failure 400 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	req := Request{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		log.Error("invalid credentials", slog.String("email", req.Username))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("incorrect email or password"))
		return
	}
	if err != nil {
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to login"))
		return
	}

	log.Info("login success", slog.String("email", req.Username))
	render.JSON(w, r, Response{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
