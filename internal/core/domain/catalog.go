package domain

import (
	"errors"
	"time"
)

// ServiceCategory groups catalog entries for filtering and display.
type ServiceCategory string

const (
	CategoryManicure   ServiceCategory = "manicure"
	CategoryPedicure   ServiceCategory = "pedicure"
	CategoryNailArt    ServiceCategory = "nail_art"
	CategoryTreatments ServiceCategory = "treatments"
	CategoryKapping    ServiceCategory = "kapping"
	CategoryOther      ServiceCategory = "other"
)

var ErrServiceNotFound = errors.New("service not found")
var ErrInvalidCategory = errors.New("unknown service category")

// Valid reports whether the category belongs to the closed set.
func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryManicure, CategoryPedicure, CategoryNailArt,
		CategoryTreatments, CategoryKapping, CategoryOther:
		return true
	}
	return false
}

// Service is a bookable catalog entry (a treatment the salon offers).
type Service struct {
	ID              string          `json:"id" bson:"_id,omitempty"`
	Name            string          `json:"name" bson:"name"`
	Category        ServiceCategory `json:"category" bson:"category"`
	DurationMinutes int             `json:"duration_minutes" bson:"duration_minutes"`
	Price           float64         `json:"price" bson:"price"`
	Description     string          `json:"description,omitempty" bson:"description,omitempty"`
	Active          bool            `json:"active" bson:"active"`
	DisplayOrder    int             `json:"display_order,omitempty" bson:"display_order,omitempty"`
	CreatedAt       time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" bson:"updated_at"`
}
