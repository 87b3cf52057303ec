package handlers

import (
	"errors"

	"nisapoti-admin/internal/services/auth"
	"nisapoti-admin/internal/utils"
	"nisapoti-admin/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates an admin and returns a bearer token with the account
// summary. Validation failures never reach the database.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input loginRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(input); err != nil {
		return utils.BadRequest(c, "Email and password are required")
	}

	user, token, err := h.authService.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.QueryFailed(c, "Authentication failed", err)
	}

	return utils.Success(c, fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}
