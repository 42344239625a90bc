package ports

import (
	"context"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

// ClientRepository defines persistence operations for salon clients.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	// Search does a partial, case-insensitive match on first or last name.
	// An empty query returns all clients.
	Search(ctx context.Context, query string) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
}
