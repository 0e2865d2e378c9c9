package journal

import (
	"fmt"

	journalhttp "travel-journal/internal/journal/adapter/http"
	"travel-journal/internal/journal/adapter/persistence/mongodb"
	"travel-journal/internal/journal/domain/repository"
	"travel-journal/internal/journal/usecase"
	"travel-journal/internal/media"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// JournalModule bundles the ownership-scoped trip and entry CRUD service.
type JournalModule struct {
	tripRepo  repository.TripRepository
	entryRepo repository.EntryRepository
	trips     usecase.TripUsecaseInterface
	entries   usecase.EntryUsecaseInterface
	handler   *journalhttp.JournalHTTPHandler
}

// NewJournalModule creates a new journal module instance.
func NewJournalModule(db *mongo.Database, resolver *media.Resolver, logger *zap.Logger) (*JournalModule, error) {
	tripRepo, err := mongodb.NewMongoTripRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create trip repository: %w", err)
	}
	entryRepo, err := mongodb.NewMongoEntryRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry repository: %w", err)
	}

	tripUsecase := usecase.NewTripUsecase(tripRepo, resolver, logger)
	entryUsecase := usecase.NewEntryUsecase(entryRepo, resolver, logger)
	handler := journalhttp.NewJournalHTTPHandler(tripUsecase, entryUsecase)

	return &JournalModule{
		tripRepo:  tripRepo,
		entryRepo: entryRepo,
		trips:     tripUsecase,
		entries:   entryUsecase,
		handler:   handler,
	}, nil
}

// RegisterRoutes registers the trip and entry routes behind the given
// authentication gate.
func (jm *JournalModule) RegisterRoutes(router fiber.Router, protect fiber.Handler) {
	jm.handler.SetupJournalRoutes(router, protect)
}
