package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review представляет отзыв пользователя о товаре.
//
// Ограничение 1..5 на рейтинг проверяется при валидации запроса.
// Уникальность пары (user_id, product_id) не требуется: пользователь
// может оставить несколько отзывов на один товар.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	ProductID string             `bson:"product_id" json:"product_id"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   *string            `bson:"comment" json:"comment"`
}
