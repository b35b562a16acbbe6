// Package auth содержит бизнес-логику регистрации, входа пользователей
// и разрешения личности по токену доступа.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/trading-store/internal/lib/jwt"
	"github.com/magabrotheeeer/trading-store/internal/lib/password"
	"github.com/magabrotheeeer/trading-store/internal/models"
	"github.com/magabrotheeeer/trading-store/internal/storage/mongodb"
)

var (
	// ErrEmailTaken возвращается при попытке регистрации с занятым email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials возвращается при неверных учетных данных
	// или невалидном токене.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (string, error)
	// FindUserByEmail возвращает пользователя по точному совпадению email
	// или mongodb.ErrNotFound, если такого пользователя нет.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service отвечает за регистрацию, авторизацию и проверку токенов.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewService создает новый экземпляр Service.
func NewService(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и дефолтной
// ролью "user". Возвращает публичную проекцию созданного пользователя.
//
// Уникальность email обеспечивается предварительной проверкой по точному
// совпадению сохраненного значения, а не ограничением базы данных.
func (s *Service) Register(ctx context.Context, name, email, rawPassword string) (*models.PublicUser, error) {
	const op = "auth.Register"

	_, err := s.users.FindUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, mongodb.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Name:           name,
		Email:          email,
		HashedPassword: hashed,
		Role:           models.RoleUser, // дефолтная роль при регистрации
		AvatarURL:      nil,
		IsActive:       true,
	}
	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.PublicUser{
		ID:        id,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		AvatarURL: user.AvatarURL,
	}, nil
}

// Login проверяет пароль пользователя и выпускает токен доступа
// с субъектом email.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "auth.Login"

	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, mongodb.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.HashedPassword, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.Email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ResolveToken проверяет токен и возвращает пользователя, которому он выдан.
//
// Любая проблема — неверная подпись, истекший срок, пустой субъект или
// отсутствующий пользователь — сводится к ErrInvalidCredentials.
func (s *Service) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if claims.Subject == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.users.FindUserByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
