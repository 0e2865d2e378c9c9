package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar-date format used by trips and entries. Dates are
// stored as strings so they round-trip JSON unchanged and sort
// lexicographically in the date-descending indexes.
const DateLayout = "2006-01-02"

// ValidDate reports whether s is a well-formed calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Trip is a named journey owned by exactly one user. The owner is stamped at
// creation and never changes.
type Trip struct {
	ID        string             `json:"id" bson:"-"`
	ObjectID  primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Date      string             `json:"date" bson:"date"`
	ImageURL  string             `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	UserID    string             `json:"userId" bson:"user_id"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// TripUpdate carries a partial update; nil fields are left untouched.
type TripUpdate struct {
	Name     *string
	Date     *string
	ImageURL *string
}
