package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry is a dated journal record owned by exactly one user and optionally
// associated with one of that user's trips. The association is not
// containment: deleting a trip leaves its entries in place.
type Entry struct {
	ID        string             `json:"id" bson:"-"`
	ObjectID  primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	Date      string             `json:"date" bson:"date"`
	Location  string             `json:"location,omitempty" bson:"location,omitempty"`
	ImageURL  string             `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	UserID    string             `json:"userId" bson:"user_id"`
	TripID    string             `json:"tripId,omitempty" bson:"trip_id,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// EntryUpdate carries a partial update; nil fields are left untouched.
type EntryUpdate struct {
	Title    *string
	Content  *string
	Date     *string
	Location *string
	ImageURL *string
	TripID   *string
}
