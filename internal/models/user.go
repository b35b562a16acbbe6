// Package models содержит доменные структуры магазина цифровых товаров:
// пользователей, продукты, заказы, подписки и отзывы. Структуры
// размечены bson-тегами для хранения в MongoDB.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Роли пользователей. Role — закрытое множество из двух значений.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы.
//
// Email уникален в пределах коллекции (проверяется при регистрации).
// Хэш пароля никогда не сериализуется в JSON.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	Role           string             `bson:"role" json:"role"`
	AvatarURL      *string            `bson:"avatar_url" json:"avatar_url"`
	IsActive       bool               `bson:"is_active" json:"is_active"`
}

// PublicUser — публичная проекция пользователя для ответов API.
type PublicUser struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatar_url"`
}

// Public возвращает публичную проекцию пользователя.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
	}
}
