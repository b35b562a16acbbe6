// Package license генерирует лицензионные ключи для цифровых товаров,
// требующих доступа после покупки (курсы и боты).
package license

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewKey возвращает лицензионный ключ — 8 случайных байт в hex-кодировке
// (16 символов).
func NewKey() (string, error) {
	const op = "license.NewKey"
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return hex.EncodeToString(buf), nil
}
