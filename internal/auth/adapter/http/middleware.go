package http

import (
	"errors"
	"strings"

	"travel-journal/internal/auth/adapter/security"
	"travel-journal/internal/auth/usecase"
	"travel-journal/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware provides the bearer-token authentication gate for Fiber.
type AuthMiddleware struct {
	usecase usecase.AuthUsecaseInterface
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(uc usecase.AuthUsecaseInterface) *AuthMiddleware {
	return &AuthMiddleware{usecase: uc}
}

// Protect returns middleware that requires a valid bearer token.
//
// Status mapping, applied uniformly: a missing or malformed token is 401,
// a well-formed token that fails verification (expired or bad signature)
// is 403.
func (m *AuthMiddleware) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := extractBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
				"code":  "authentication_required",
			})
		}

		claims, err := m.usecase.ValidateToken(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, security.ErrTokenExpired) || errors.Is(err, security.ErrTokenSignatureInvalid) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"error": "Invalid or expired token",
					"code":  "not_authorized",
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
				"code":  "authentication_required",
			})
		}

		// Attach the caller's identity for downstream ownership scoping.
		ctx := utils.WithUserID(c.UserContext(), claims.UserID)
		ctx = utils.WithUsername(ctx, claims.Username)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// extractBearerToken extracts the token from the Authorization header.
func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "no authentication token found")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", fiber.NewError(fiber.StatusUnauthorized, "malformed authorization header")
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "no authentication token found")
	}
	return token, nil
}
