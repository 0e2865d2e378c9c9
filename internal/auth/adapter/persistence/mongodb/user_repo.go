package mongodb

import (
	"context"
	"strings"
	"time"

	"travel-journal/internal/auth/domain/model"
	"travel-journal/internal/auth/usecase"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCredentialRepository implements the CredentialRepository interface
// using MongoDB.
type MongoCredentialRepository struct {
	db    *mongo.Database
	users *mongo.Collection
}

// NewMongoCredentialRepository creates a new MongoDB credential repository
// and ensures the uniqueness indexes exist.
func NewMongoCredentialRepository(db *mongo.Database) (*MongoCredentialRepository, error) {
	repo := &MongoCredentialRepository{
		db:    db,
		users: db.Collection("users"),
	}

	ctx := context.Background()

	usernameIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.users.Indexes().CreateOne(ctx, usernameIndex); err != nil {
		return nil, err
	}

	// Sparse because email is optional; uniqueness only applies when present.
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true),
	}
	if _, err := repo.users.Indexes().CreateOne(ctx, emailIndex); err != nil {
		return nil, err
	}

	return repo, nil
}

// CreateUser creates a new user in the database.
func (r *MongoCredentialRepository) CreateUser(ctx context.Context, user *model.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.ObjectID = primitive.NewObjectID()

	if _, err := r.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), "email") {
				return usecase.ErrEmailTaken
			}
			return usecase.ErrUsernameTaken
		}
		return err
	}

	user.ID = user.ObjectID.Hex()
	return nil
}

// GetUserByIdentity retrieves a user by username or email.
func (r *MongoCredentialRepository) GetUserByIdentity(ctx context.Context, identity string) (*model.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": identity},
		bson.M{"email": strings.ToLower(identity)},
	}}
	return r.findOne(ctx, filter)
}

// GetUserByUsername retrieves a user by username.
func (r *MongoCredentialRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// GetUserByEmail retrieves a user by email.
func (r *MongoCredentialRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *MongoCredentialRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	user.ID = user.ObjectID.Hex()
	return &user, nil
}
