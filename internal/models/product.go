package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Виды цифровых товаров.
const (
	KindEbook  = "ebook"
	KindSignal = "signal"
	KindCourse = "course"
	KindBot    = "bot"
)

// Биллинговые интервалы для подписочных товаров.
const (
	IntervalWeek  = "week"
	IntervalMonth = "month"
	IntervalYear  = "year"
)

// Product представляет цифровой товар каталога.
//
// Опциональные поля хранятся указателями: отсутствие значения в документе
// отличимо от пустой строки или нуля. Interval заполняется только для
// подписочных товаров.
type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Description    *string            `bson:"description" json:"description"`
	Kind           string             `bson:"kind" json:"kind"`
	Categories     []string           `bson:"categories" json:"categories"`
	Price          float64            `bson:"price" json:"price"`
	SalePrice      *float64           `bson:"sale_price" json:"sale_price"`
	IsSubscription bool               `bson:"is_subscription" json:"is_subscription"`
	Interval       *string            `bson:"interval" json:"interval"`
	AssetURL       *string            `bson:"asset_url" json:"asset_url"`
	ThumbnailURL   *string            `bson:"thumbnail_url" json:"thumbnail_url"`
	Rating         float64            `bson:"rating" json:"rating"`
}
