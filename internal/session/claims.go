package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims данные сессии, извлекаемые из access-токена
type tokenClaims struct {
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// parseClaims извлекает claims из токена без проверки подписи
// Клиент не владеет ключом подписи - подлинность токена проверяет backend
// на каждом запросе, здесь нужны только userId/role/exp для отображения
func parseClaims(token string) (*tokenClaims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &tokenClaims{}

	if v, ok := mapClaims["userId"].(string); ok {
		claims.UserID = v
	} else if v, ok := mapClaims["id"].(string); ok {
		claims.UserID = v
	}

	if v, ok := mapClaims["role"].(string); ok {
		claims.Role = v
	}

	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}
