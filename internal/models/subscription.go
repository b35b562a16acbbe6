package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Статусы подписок.
const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusPastDue  = "past_due"
	SubscriptionStatusCanceled = "canceled"
)

// Subscription представляет подписку пользователя на подписочный товар.
//
// CurrentPeriodEnd вычисляется при создании из started_at и биллингового
// интервала товара; после создания запись не изменяется.
type Subscription struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           string             `bson:"user_id" json:"user_id"`
	ProductID        string             `bson:"product_id" json:"product_id"`
	Status           string             `bson:"status" json:"status"`
	StartedAt        time.Time          `bson:"started_at" json:"started_at"`
	CurrentPeriodEnd time.Time          `bson:"current_period_end" json:"current_period_end"`
}
