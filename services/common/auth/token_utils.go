package auth

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

var (
	secretOnce sync.Once
	secretKey  []byte
)

// SecretKey returns the shared HS256 signing key, loaded from JWT_SECRET on
// first use. Nil when the variable is unset.
func SecretKey() []byte {
	secretOnce.Do(func() {
		_ = godotenv.Load()
		if secret := strings.TrimSpace(os.Getenv("JWT_SECRET")); secret != "" {
			secretKey = []byte(secret)
		}
	})
	return secretKey
}

// ParseAndValidateToken parses a JWT token string and returns its claims.
func ParseAndValidateToken(tokenStr string) (jwt.MapClaims, error) {
	key := SecretKey()
	if key == nil {
		return nil, fmt.Errorf("JWT secret not configured")
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})

	if err != nil || token == nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
