// Package middleware provides HTTP middleware for the dashboard API.
package middleware

import (
	"strings"

	"nisapoti-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth re-derives the caller's identity from the signed bearer token
// on every request; no client-held session state is trusted. A missing
// token yields 401, an invalid or expired one 403.
func RequireAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		return utils.Forbidden(c, "invalid token")
	}

	c.Locals("claims", claims)
	return c.Next()
}
