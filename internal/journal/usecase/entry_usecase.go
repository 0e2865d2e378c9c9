package usecase

import (
	"context"
	"mime/multipart"
	"strings"

	"travel-journal/internal/journal/domain/model"
	"travel-journal/internal/journal/domain/repository"
	"travel-journal/internal/media"
	apperrors "travel-journal/internal/shared/errors"

	"go.uber.org/zap"
)

// CreateEntryRequest is the payload for creating an entry. It arrives either
// as JSON or as multipart form fields next to an optional image file.
type CreateEntryRequest struct {
	Title    string `json:"title" form:"title"`
	Content  string `json:"content" form:"content"`
	Date     string `json:"date" form:"date"`
	Location string `json:"location" form:"location"`
	ImageURL string `json:"imageUrl" form:"imageUrl"`
	TripID   string `json:"tripId" form:"tripId"`
}

// UpdateEntryRequest is a partial entry update; nil fields are left untouched.
type UpdateEntryRequest struct {
	Title    *string `json:"title" form:"title"`
	Content  *string `json:"content" form:"content"`
	Date     *string `json:"date" form:"date"`
	Location *string `json:"location" form:"location"`
	ImageURL *string `json:"imageUrl" form:"imageUrl"`
	TripID   *string `json:"tripId" form:"tripId"`
}

// EntryUsecaseInterface defines the ownership-scoped entry operations.
type EntryUsecaseInterface interface {
	List(ctx context.Context, userID, tripID string) ([]*model.Entry, error)
	Create(ctx context.Context, userID string, req CreateEntryRequest, image *multipart.FileHeader) (*model.Entry, error)
	Update(ctx context.Context, userID, id string, req UpdateEntryRequest, image *multipart.FileHeader) (*model.Entry, error)
	Delete(ctx context.Context, userID, id string) error
}

// EntryUsecase implements the entry CRUD contract.
type EntryUsecase struct {
	repo     repository.EntryRepository
	resolver *media.Resolver
	logger   *zap.Logger
}

// NewEntryUsecase creates a new entry usecase.
func NewEntryUsecase(repo repository.EntryRepository, resolver *media.Resolver, logger *zap.Logger) *EntryUsecase {
	return &EntryUsecase{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}
}

// List returns the user's entries, newest date first, optionally filtered to
// one trip.
func (uc *EntryUsecase) List(ctx context.Context, userID, tripID string) ([]*model.Entry, error) {
	entries, err := uc.repo.List(ctx, userID, tripID)
	if err != nil {
		uc.logger.Error("failed to list entries", zap.String("userID", userID), zap.Error(err))
		return nil, apperrors.WrapError(err, "failed to list entries")
	}
	return entries, nil
}

// Create validates the payload, resolves the image attachment (uploaded file
// wins over a provided URL), stamps the owner and stores the entry.
func (uc *EntryUsecase) Create(ctx context.Context, userID string, req CreateEntryRequest, image *multipart.FileHeader) (*model.Entry, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}
	if content == "" {
		return nil, apperrors.NewValidationError("content is required")
	}
	if req.Date == "" {
		return nil, apperrors.NewValidationError("date is required")
	}
	if !model.ValidDate(req.Date) {
		return nil, apperrors.NewValidationError("date must be a calendar date (YYYY-MM-DD)")
	}

	imageURL, err := uc.resolver.Resolve(ctx, strings.TrimSpace(req.ImageURL), image)
	if err != nil {
		uc.logger.Error("image resolution failed", zap.String("userID", userID), zap.Error(err))
		return nil, apperrors.WrapError(err, "failed to resolve image attachment")
	}

	entry := &model.Entry{
		Title:    title,
		Content:  content,
		Date:     req.Date,
		Location: strings.TrimSpace(req.Location),
		ImageURL: imageURL,
		UserID:   userID,
		TripID:   strings.TrimSpace(req.TripID),
	}

	if err := uc.repo.Create(ctx, entry); err != nil {
		uc.logger.Error("failed to create entry", zap.String("userID", userID), zap.Error(err))
		return nil, apperrors.WrapError(err, "failed to create entry")
	}

	uc.logger.Debug("entry created", zap.String("userID", userID), zap.String("entryID", entry.ID))
	return entry, nil
}

// Update applies the provided fields to the user's entry. The image is
// re-resolved only when a new file or URL is supplied. Missing and foreign
// IDs are both not found.
func (uc *EntryUsecase) Update(ctx context.Context, userID, id string, req UpdateEntryRequest, image *multipart.FileHeader) (*model.Entry, error) {
	update := model.EntryUpdate{}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewValidationError("title may not be empty")
		}
		update.Title = &title
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, apperrors.NewValidationError("content may not be empty")
		}
		update.Content = &content
	}
	if req.Date != nil {
		if !model.ValidDate(*req.Date) {
			return nil, apperrors.NewValidationError("date must be a calendar date (YYYY-MM-DD)")
		}
		update.Date = req.Date
	}
	if req.Location != nil {
		location := strings.TrimSpace(*req.Location)
		update.Location = &location
	}
	if req.TripID != nil {
		tripID := strings.TrimSpace(*req.TripID)
		update.TripID = &tripID
	}

	if image != nil || req.ImageURL != nil {
		providedURL := ""
		if req.ImageURL != nil {
			providedURL = strings.TrimSpace(*req.ImageURL)
		}
		imageURL, err := uc.resolver.Resolve(ctx, providedURL, image)
		if err != nil {
			uc.logger.Error("image resolution failed", zap.String("userID", userID), zap.Error(err))
			return nil, apperrors.WrapError(err, "failed to resolve image attachment")
		}
		update.ImageURL = &imageURL
	}

	entry, err := uc.repo.Update(ctx, userID, id, update)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Error("failed to update entry", zap.String("userID", userID), zap.String("entryID", id), zap.Error(err))
		return nil, apperrors.WrapError(err, "failed to update entry")
	}
	return entry, nil
}

// Delete removes the user's entry. Like trip deletion it is an idempotent
// no-op when nothing matches.
func (uc *EntryUsecase) Delete(ctx context.Context, userID, id string) error {
	if err := uc.repo.Delete(ctx, userID, id); err != nil {
		uc.logger.Error("failed to delete entry", zap.String("userID", userID), zap.String("entryID", id), zap.Error(err))
		return apperrors.WrapError(err, "failed to delete entry")
	}
	return nil
}

var _ EntryUsecaseInterface = (*EntryUsecase)(nil)
