package domain

import (
	"errors"
	"time"
)

var ErrClientNotFound = errors.New("client not found")

// ClientNote is a dated free-form observation about a client
// (allergies, preferences, pending work).
type ClientNote struct {
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Client is a salon customer.
type Client struct {
	ID        string       `json:"id" bson:"_id,omitempty"`
	FirstName string       `json:"first_name" bson:"first_name"`
	LastName  string       `json:"last_name" bson:"last_name"`
	Phone     string       `json:"phone" bson:"phone"`
	Email     string       `json:"email,omitempty" bson:"email,omitempty"`
	Notes     []ClientNote `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}
