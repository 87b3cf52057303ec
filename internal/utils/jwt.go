package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"nisapoti-admin/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 2 * time.Hour

// GenerateToken signs a bearer token for an admin account. The secret is
// expected in the environment variable JWT_SECRET.
func GenerateToken(user *models.AdminUser) (string, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return "", errors.New("JWT_SECRET not configured")
	}

	now := time.Now()

	claims := models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "nisapoti-admin",
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ID:        uuid.NewString(),
		},
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ParseToken validates a bearer token string and returns its claims.
func ParseToken(tokenStr string) (*models.AdminClaims, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET not configured")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.AdminClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
