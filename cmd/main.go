package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	authconfig "travel-journal/internal/auth/config"
	"travel-journal/internal/di"
	"travel-journal/internal/media"
	"travel-journal/internal/shared/logger"
	"travel-journal/internal/shared/utils"

	"github.com/caarlos0/env/v6"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Host        string `env:"SERVER_HOST" envDefault:"localhost"`
	Port        string `env:"SERVER_PORT" envDefault:"5000"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	serverCfg := &ServerConfig{}
	if err := env.Parse(serverCfg); err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	appLogger := logger.NewLogger().WithComponent("main")
	appLogger.Info("Travel Journal API starting")

	journalLogger, err := newZapLogger(serverCfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize journal logger: %v", err)
	}
	defer journalLogger.Sync()

	// Load module configuration
	authCfg, err := authconfig.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load auth configuration: %v", err)
	}
	mediaCfg, err := media.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load media configuration: %v", err)
	}

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(authCfg.MongoDBURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			appLogger.Errorf("Failed to disconnect MongoDB: %v", err)
		}
	}()

	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	appLogger.Info("MongoDB connection established")

	mongoDB := mongoClient.Database(authCfg.DatabaseName)

	// Wire modules through the container
	container := di.NewContainer()
	if err := container.InitializeAuth(mongoDB, authCfg); err != nil {
		log.Fatalf("Failed to initialize auth module: %v", err)
	}
	if err := container.InitializeMedia(mediaCfg); err != nil {
		log.Fatalf("Failed to initialize media resolver: %v", err)
	}
	if err := container.InitializeJournal(journalLogger); err != nil {
		log.Fatalf("Failed to initialize journal module: %v", err)
	}
	appLogger.Info("Modules initialized")

	// Setup HTTP server (Fiber) with middleware
	app := fiber.New(fiber.Config{
		AppName:      "Travel Journal API v1.0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			appLogger.Errorf("HTTP error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
				"code":  "internal_error",
			})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	// Mirror the request ID into the request context so context-aware loggers
	// pick it up.
	app.Use(func(c *fiber.Ctx) error {
		if rid, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok && rid != "" {
			c.SetUserContext(utils.WithRequestID(c.UserContext(), rid))
		}
		return c.Next()
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		healthCtx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		if err := container.HealthCheck(healthCtx); err != nil {
			appLogger.Errorf("Health check failed: %v", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "UNHEALTHY",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status":    "HEALTHY",
			"timestamp": time.Now().UTC(),
		})
	})

	// Register module routes: /auth is public, /trips and /entries sit
	// behind the bearer-token gate.
	authModule := container.GetAuthModule()
	authModule.RegisterRoutes(app)
	container.GetJournalModule().RegisterRoutes(app, authModule.GetMiddleware().Protect())
	appLogger.Info("Routes registered")

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		appLogger.Info("Shutdown signal received")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			appLogger.Errorf("Server shutdown failed: %v", err)
		}
	}()

	addr := serverCfg.Host + ":" + serverCfg.Port
	appLogger.Infof("Listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
	appLogger.Info("Server stopped cleanly")
}

// newZapLogger builds the structured logger used by the journal usecases.
func newZapLogger(environment string) (*zap.Logger, error) {
	if environment == "production" || environment == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
