package security

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/linemk/siya-shop/internal/domain/models"
)

// NewToken issues a JWT for the session identity with the given lifetime.
// The email doubles as the subject since the session model has no user ids.
// The signing secret comes from the JWT_SECRET environment variable.
func NewToken(ctx context.Context, user models.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.Email,
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return "", errors.New("JWT_SECRET environment variable is not set")
	}
	return token.SignedString([]byte(secretStr))
}
