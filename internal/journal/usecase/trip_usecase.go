package usecase

import (
	"context"
	"strings"

	"travel-journal/internal/journal/domain/model"
	"travel-journal/internal/journal/domain/repository"
	"travel-journal/internal/media"
	apperrors "travel-journal/internal/shared/errors"

	"go.uber.org/zap"
)

// CreateTripRequest is the payload for creating a trip.
type CreateTripRequest struct {
	Name     string `json:"name" form:"name"`
	Date     string `json:"date" form:"date"`
	ImageURL string `json:"imageUrl" form:"imageUrl"`
}

// UpdateTripRequest is a partial trip update; nil fields are left untouched.
type UpdateTripRequest struct {
	Name     *string `json:"name" form:"name"`
	Date     *string `json:"date" form:"date"`
	ImageURL *string `json:"imageUrl" form:"imageUrl"`
}

// TripUsecaseInterface defines the ownership-scoped trip operations. The
// userID always comes from the validated token, never from the payload.
type TripUsecaseInterface interface {
	List(ctx context.Context, userID string) ([]*model.Trip, error)
	Create(ctx context.Context, userID string, req CreateTripRequest) (*model.Trip, error)
	Update(ctx context.Context, userID, id string, req UpdateTripRequest) (*model.Trip, error)
	Delete(ctx context.Context, userID, id string) error
}

// TripUsecase implements the trip CRUD contract.
type TripUsecase struct {
	repo     repository.TripRepository
	resolver *media.Resolver
	logger   *zap.Logger
}

// NewTripUsecase creates a new trip usecase.
func NewTripUsecase(repo repository.TripRepository, resolver *media.Resolver, logger *zap.Logger) *TripUsecase {
	return &TripUsecase{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}
}

// List returns the user's trips, newest date first.
func (uc *TripUsecase) List(ctx context.Context, userID string) ([]*model.Trip, error) {
	trips, err := uc.repo.List(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to list trips", zap.String("userID", userID), zap.Error(err))
		return nil, apperrors.WrapError(err, "failed to list trips")
	}
	return trips, nil
}

// Create validates the payload, resolves the image attachment, stamps the
// owner and stores the trip.
func (uc *TripUsecase) Create(ctx context.Context, userID string, req CreateTripRequest) (*model.Trip, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if req.Date == "" {
		return nil, apperrors.NewValidationError("date is required")
	}
	if !model.ValidDate(req.Date) {
		return nil, apperrors.NewValidationError("date must be a calendar date (YYYY-MM-DD)")
	}

	imageURL, err := uc.resolver.Resolve(ctx, strings.TrimSpace(req.ImageURL), nil)
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to resolve image attachment")
	}

	trip := &model.Trip{
		Name:     name,
		Date:     req.Date,
		ImageURL: imageURL,
		UserID:   userID,
	}

	if err := uc.repo.Create(ctx, trip); err != nil {
		uc.logger.Error("failed to create trip", zap.String("userID", userID), zap.Error(err))
		return nil, apperrors.WrapError(err, "failed to create trip")
	}

	uc.logger.Debug("trip created", zap.String("userID", userID), zap.String("tripID", trip.ID))
	return trip, nil
}

// Update applies the provided fields to the user's trip. A missing trip and
// another user's trip are indistinguishable: both are not found.
func (uc *TripUsecase) Update(ctx context.Context, userID, id string, req UpdateTripRequest) (*model.Trip, error) {
	update := model.TripUpdate{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name may not be empty")
		}
		update.Name = &name
	}
	if req.Date != nil {
		if !model.ValidDate(*req.Date) {
			return nil, apperrors.NewValidationError("date must be a calendar date (YYYY-MM-DD)")
		}
		update.Date = req.Date
	}
	if req.ImageURL != nil {
		imageURL, err := uc.resolver.Resolve(ctx, strings.TrimSpace(*req.ImageURL), nil)
		if err != nil {
			return nil, apperrors.WrapError(err, "failed to resolve image attachment")
		}
		update.ImageURL = &imageURL
	}

	trip, err := uc.repo.Update(ctx, userID, id, update)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Error("failed to update trip", zap.String("userID", userID), zap.String("tripID", id), zap.Error(err))
		return nil, apperrors.WrapError(err, "failed to update trip")
	}
	return trip, nil
}

// Delete removes the user's trip. Deleting a missing or foreign ID is a
// silent no-op; the operation is idempotent. Entries referencing the trip
// survive it.
func (uc *TripUsecase) Delete(ctx context.Context, userID, id string) error {
	if err := uc.repo.Delete(ctx, userID, id); err != nil {
		uc.logger.Error("failed to delete trip", zap.String("userID", userID), zap.String("tripID", id), zap.Error(err))
		return apperrors.WrapError(err, "failed to delete trip")
	}
	return nil
}

var _ TripUsecaseInterface = (*TripUsecase)(nil)
