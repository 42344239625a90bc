package ports

import (
	"context"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

// ListServicesFilter carries the query parameters for listing catalog entries.
type ListServicesFilter struct {
	Category   string // optional: filter by category
	ActiveOnly bool
}

// CatalogRepository defines persistence operations for the service catalog.
type CatalogRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	// List returns entries matching filter, sorted by display order then name.
	List(ctx context.Context, filter ListServicesFilter) ([]*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
}
