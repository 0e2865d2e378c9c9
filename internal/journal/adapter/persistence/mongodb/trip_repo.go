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

// MongoTripRepository implements the TripRepository interface using MongoDB.
// Every filter includes the owner's user ID, so a foreign record ID behaves
// exactly like a missing one.
type MongoTripRepository struct {
	trips *mongo.Collection
}

// NewMongoTripRepository creates a new MongoDB trip repository and ensures
// the owner/date index exists.
func NewMongoTripRepository(db *mongo.Database) (*MongoTripRepository, error) {
	repo := &MongoTripRepository{
		trips: db.Collection("trips"),
	}

	ownerDateIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}},
	}
	if _, err := repo.trips.Indexes().CreateOne(context.Background(), ownerDateIndex); err != nil {
		return nil, err
	}

	return repo, nil
}

// List returns the user's trips sorted by date descending.
func (r *MongoTripRepository) List(ctx context.Context, userID string) ([]*model.Trip, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.trips.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	trips := make([]*model.Trip, 0)
	for cursor.Next(ctx) {
		var trip model.Trip
		if err := cursor.Decode(&trip); err != nil {
			return nil, err
		}
		trip.ID = trip.ObjectID.Hex()
		trips = append(trips, &trip)
	}
	return trips, cursor.Err()
}

// Create inserts the trip and assigns its server-side ID and timestamps.
func (r *MongoTripRepository) Create(ctx context.Context, trip *model.Trip) error {
	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	trip.ObjectID = primitive.NewObjectID()

	if _, err := r.trips.InsertOne(ctx, trip); err != nil {
		return err
	}
	trip.ID = trip.ObjectID.Hex()
	return nil
}

// Update applies the provided fields to the trip matching both ID and owner,
// returning the post-update document.
func (r *MongoTripRepository) Update(ctx context.Context, userID, id string, update model.TripUpdate) (*model.Trip, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("trip")
	}

	set := bson.M{"updated_at": time.Now()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}
	if update.ImageURL != nil {
		set["image_url"] = *update.ImageURL
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	filter := bson.M{"_id": objectID, "user_id": userID}

	var trip model.Trip
	err = r.trips.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&trip)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NewNotFoundError("trip")
		}
		return nil, err
	}
	trip.ID = trip.ObjectID.Hex()
	return &trip, nil
}

// Delete removes the trip matching both ID and owner. Zero matches is still
// success; the operation is idempotent.
func (r *MongoTripRepository) Delete(ctx context.Context, userID, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	_, err = r.trips.DeleteOne(ctx, bson.M{"_id": objectID, "user_id": userID})
	return err
}
