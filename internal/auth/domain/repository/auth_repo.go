package repository

import (
	"context"

	"travel-journal/internal/auth/domain/model"
)

// CredentialRepository defines the interface for credential store operations.
type CredentialRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	// GetUserByIdentity looks a user up by username or email.
	GetUserByIdentity(ctx context.Context, identity string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}
