package ids

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const rawLen = 8

// New возвращает идентификатор вида "<prefix><16 hex символов>".
// Префикс кодирует тип сущности: r - поездка, d - водитель и т.д.
func New(prefix string) (string, error) {
	buf := make([]byte, rawLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return prefix + hex.EncodeToString(buf), nil
}
