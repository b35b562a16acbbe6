package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Валюты заказов.
const (
	CurrencyUSD  = "USD"
	CurrencyEUR  = "EUR"
	CurrencyUSDT = "USDT"
)

// Статусы заказов.
const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusFailed   = "failed"
	OrderStatusRefunded = "refunded"
)

// Order представляет покупку товара пользователем.
//
// LicenseKey заполняется только для товаров вида course и bot.
// Заказ создаётся сразу со статусом "paid": платёжный шлюз не
// подключён, оплата заглушена.
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	ProductID  string             `bson:"product_id" json:"product_id"`
	Amount     float64            `bson:"amount" json:"amount"`
	Currency   string             `bson:"currency" json:"currency"`
	Status     string             `bson:"status" json:"status"`
	LicenseKey *string            `bson:"license_key" json:"license_key"`
}
