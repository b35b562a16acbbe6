// Package jwt реализует выпуск и проверку JWT токенов доступа.
//
// Maker определяет интерфейс для создания и проверки токенов, где
// субъектом выступает email пользователя. MakerImpl — реализация на
// секретном ключе HS256 и фиксированном времени жизни токена.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken выпускает токен с субъектом email
	GenerateToken(email string) (string, error)
	// ParseToken проверяет подпись и срок действия токена
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
