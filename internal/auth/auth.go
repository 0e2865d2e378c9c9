package auth

import (
	"fmt"

	authhttp "travel-journal/internal/auth/adapter/http"
	"travel-journal/internal/auth/adapter/persistence/mongodb"
	"travel-journal/internal/auth/adapter/security"
	"travel-journal/internal/auth/config"
	"travel-journal/internal/auth/domain/repository"
	"travel-journal/internal/auth/usecase"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuthModule represents the complete authentication module.
type AuthModule struct {
	repository repository.CredentialRepository
	tokenSvc   repository.TokenService
	usecase    usecase.AuthUsecaseInterface
	handler    *authhttp.AuthHTTPHandler
	config     *config.Config
}

// NewAuthModule creates a new authentication module instance.
func NewAuthModule(db *mongo.Database, cfg *config.Config) (*AuthModule, error) {
	credRepo, err := mongodb.NewMongoCredentialRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential repository: %w", err)
	}

	tokenSvc, err := security.NewJWTokenService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	authUsecase := usecase.NewAuthUsecase(credRepo, tokenSvc)
	handler := authhttp.NewAuthHTTPHandler(authUsecase)

	return &AuthModule{
		repository: credRepo,
		tokenSvc:   tokenSvc,
		usecase:    authUsecase,
		handler:    handler,
		config:     cfg,
	}, nil
}

// RegisterRoutes registers the authentication routes under /auth.
func (am *AuthModule) RegisterRoutes(router fiber.Router) {
	am.handler.SetupAuthRoutes(router.Group("/auth"))
}

// GetUsecase returns the auth usecase for external access.
func (am *AuthModule) GetUsecase() usecase.AuthUsecaseInterface {
	return am.usecase
}

// GetMiddleware returns the bearer-token middleware guarding protected routes.
func (am *AuthModule) GetMiddleware() *authhttp.AuthMiddleware {
	return authhttp.NewAuthMiddleware(am.usecase)
}
