package di

import (
	"context"
	"fmt"
	"sync"

	"travel-journal/internal/auth"
	authconfig "travel-journal/internal/auth/config"
	"travel-journal/internal/journal"
	"travel-journal/internal/media"
	"travel-journal/internal/media/cloudinary"
	"travel-journal/internal/shared/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Container wires the application modules together. Configuration and
// connections are constructed once here and passed down explicitly; no
// package holds ambient global state.
type Container struct {
	mu sync.RWMutex

	// Module instances
	AuthModule    *auth.AuthModule
	JournalModule *journal.JournalModule
	MediaResolver *media.Resolver

	// Database connections
	MongoDB *mongo.Database

	// Configuration
	AuthConfig  *authconfig.Config
	MediaConfig *media.Config

	// Logger
	Logger logger.Logger
}

// NewContainer creates a new DI container.
func NewContainer() *Container {
	return &Container{}
}

// InitializeAuth initializes the authentication module.
func (c *Container) InitializeAuth(mongoDB *mongo.Database, cfg *authconfig.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.MongoDB = mongoDB
	c.AuthConfig = cfg

	authModule, err := auth.NewAuthModule(mongoDB, cfg)
	if err != nil {
		return fmt.Errorf("failed to create auth module: %w", err)
	}

	c.AuthModule = authModule
	return nil
}

// InitializeMedia initializes the media attachment resolver. Without an
// upload URL the resolver runs in URL-passthrough-only mode.
func (c *Container) InitializeMedia(cfg *media.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.MediaConfig = cfg

	var uploader media.Uploader
	if cfg.UploadURL != "" {
		uploader = cloudinary.NewUploader(cfg)
	}
	c.MediaResolver = media.NewResolver(uploader)
	return nil
}

// InitializeJournal initializes the trip/entry CRUD module. Auth and media
// must be initialized first.
func (c *Container) InitializeJournal(journalLogger *zap.Logger) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.AuthModule == nil {
		return fmt.Errorf("auth module must be initialized before the journal module")
	}
	if c.MediaResolver == nil {
		return fmt.Errorf("media resolver must be initialized before the journal module")
	}
	if c.MongoDB == nil {
		return fmt.Errorf("MongoDB must be initialized before the journal module")
	}

	journalModule, err := journal.NewJournalModule(c.MongoDB, c.MediaResolver, journalLogger)
	if err != nil {
		return fmt.Errorf("failed to create journal module: %w", err)
	}

	c.JournalModule = journalModule
	return nil
}

// GetAuthModule returns the auth module.
func (c *Container) GetAuthModule() *auth.AuthModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AuthModule
}

// GetJournalModule returns the journal module.
func (c *Container) GetJournalModule() *journal.JournalModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.JournalModule
}

// HealthCheck verifies the store is reachable.
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.MongoDB == nil {
		return fmt.Errorf("MongoDB is not initialized")
	}
	if err := c.MongoDB.Client().Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	return nil
}
