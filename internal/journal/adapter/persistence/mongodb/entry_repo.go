package mongodb

import (
	"context"
	"time"

	"travel-journal/internal/journal/domain/model"
	apperrors "travel-journal/internal/shared/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEntryRepository implements the EntryRepository interface using MongoDB.
type MongoEntryRepository struct {
	entries *mongo.Collection
}

// NewMongoEntryRepository creates a new MongoDB entry repository and ensures
// the owner-scoped indexes exist.
func NewMongoEntryRepository(db *mongo.Database) (*MongoEntryRepository, error) {
	repo := &MongoEntryRepository{
		entries: db.Collection("entries"),
	}

	ctx := context.Background()

	ownerDateIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}},
	}
	if _, err := repo.entries.Indexes().CreateOne(ctx, ownerDateIndex); err != nil {
		return nil, err
	}

	ownerTripIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "trip_id", Value: 1}},
	}
	if _, err := repo.entries.Indexes().CreateOne(ctx, ownerTripIndex); err != nil {
		return nil, err
	}

	return repo, nil
}

// List returns the user's entries sorted by date descending, optionally
// filtered by trip.
func (r *MongoEntryRepository) List(ctx context.Context, userID, tripID string) ([]*model.Entry, error) {
	filter := bson.M{"user_id": userID}
	if tripID != "" {
		filter["trip_id"] = tripID
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.entries.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]*model.Entry, 0)
	for cursor.Next(ctx) {
		var entry model.Entry
		if err := cursor.Decode(&entry); err != nil {
			return nil, err
		}
		entry.ID = entry.ObjectID.Hex()
		entries = append(entries, &entry)
	}
	return entries, cursor.Err()
}

// Create inserts the entry and assigns its server-side ID and timestamps.
func (r *MongoEntryRepository) Create(ctx context.Context, entry *model.Entry) error {
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	entry.ObjectID = primitive.NewObjectID()

	if _, err := r.entries.InsertOne(ctx, entry); err != nil {
		return err
	}
	entry.ID = entry.ObjectID.Hex()
	return nil
}

// Update applies the provided fields to the entry matching both ID and owner,
// returning the post-update document.
func (r *MongoEntryRepository) Update(ctx context.Context, userID, id string, update model.EntryUpdate) (*model.Entry, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("entry")
	}

	set := bson.M{"updated_at": time.Now()}
	unset := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.ImageURL != nil {
		set["image_url"] = *update.ImageURL
	}
	if update.TripID != nil {
		// An explicit empty tripId detaches the entry from its trip.
		if *update.TripID == "" {
			unset["trip_id"] = ""
		} else {
			set["trip_id"] = *update.TripID
		}
	}

	change := bson.M{"$set": set}
	if len(unset) > 0 {
		change["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	filter := bson.M{"_id": objectID, "user_id": userID}

	var entry model.Entry
	err = r.entries.FindOneAndUpdate(ctx, filter, change, opts).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NewNotFoundError("entry")
		}
		return nil, err
	}
	entry.ID = entry.ObjectID.Hex()
	return &entry, nil
}

// Delete removes the entry matching both ID and owner. Zero matches is still
// success; the operation is idempotent.
func (r *MongoEntryRepository) Delete(ctx context.Context, userID, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	_, err = r.entries.DeleteOne(ctx, bson.M{"_id": objectID, "user_id": userID})
	return err
}
