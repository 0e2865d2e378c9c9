package repository

import (
	"context"

	"travel-journal/internal/journal/domain/model"
)

// TripRepository defines the store operations for trips. Every operation is
// scoped by the owning user's ID; a record belonging to another user behaves
// exactly like a missing one.
type TripRepository interface {
	List(ctx context.Context, userID string) ([]*model.Trip, error)
	Create(ctx context.Context, trip *model.Trip) error
	Update(ctx context.Context, userID, id string, update model.TripUpdate) (*model.Trip, error)
	// Delete is an idempotent no-op when nothing matches.
	Delete(ctx context.Context, userID, id string) error
}

// EntryRepository defines the store operations for entries, scoped the same
// way as TripRepository. An empty tripID lists all of the user's entries.
type EntryRepository interface {
	List(ctx context.Context, userID, tripID string) ([]*model.Entry, error)
	Create(ctx context.Context, entry *model.Entry) error
	Update(ctx context.Context, userID, id string, update model.EntryUpdate) (*model.Entry, error)
	Delete(ctx context.Context, userID, id string) error
}
