package http

import (
	"travel-journal/internal/auth/usecase"

	"github.com/gofiber/fiber/v2"
)

// AuthHTTPHandler handles HTTP requests for authentication.
type AuthHTTPHandler struct {
	usecase usecase.AuthUsecaseInterface
}

// NewAuthHTTPHandler creates a new authentication HTTP handler.
func NewAuthHTTPHandler(uc usecase.AuthUsecaseInterface) *AuthHTTPHandler {
	return &AuthHTTPHandler{usecase: uc}
}

// SetupAuthRoutes sets up the public authentication routes.
func (h *AuthHTTPHandler) SetupAuthRoutes(router fiber.Router) {
	router.Post("/signup", h.Signup)
	router.Post("/login", h.Login)
}

// Signup handles user registration.
func (h *AuthHTTPHandler) Signup(c *fiber.Ctx) error {
	var req usecase.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
			"code":  "invalid_body",
		})
	}

	user, err := h.usecase.Signup(c.UserContext(), req)
	if err != nil {
		switch err {
		case usecase.ErrUsernameTaken, usecase.ErrEmailTaken:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
				"code":  "conflict",
			})
		case usecase.ErrUsernameRequired, usecase.ErrPasswordRequired, usecase.ErrInvalidEmailFormat:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
				"code":  "validation_failed",
			})
		}
		// Store failures and other unexpected errors never surface their
		// internals to the client.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
			"code":  "internal_error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles user login and returns the minted session token.
func (h *AuthHTTPHandler) Login(c *fiber.Ctx) error {
	var req usecase.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
			"code":  "invalid_body",
		})
	}

	resp, err := h.usecase.Login(c.UserContext(), req)
	if err != nil {
		// Uniform message for unknown identity and wrong password.
		if err == usecase.ErrInvalidCredentials {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid credentials",
				"code":  "invalid_credentials",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
			"code":  "internal_error",
		})
	}

	return c.JSON(resp)
}
