package ports

import (
	"context"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

// ServiceInput carries the mutable fields of a catalog entry.
type ServiceInput struct {
	Name            string
	Category        string
	DurationMinutes int
	Price           float64
	Description     string
	DisplayOrder    int
}

// CatalogService defines use-case operations for the service catalog.
type CatalogService interface {
	Create(ctx context.Context, in ServiceInput) (*domain.Service, error)
	Get(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context, filter ListServicesFilter) ([]*domain.Service, error)
	Update(ctx context.Context, id string, in ServiceInput) (*domain.Service, error)
	Deactivate(ctx context.Context, id string) error
}
