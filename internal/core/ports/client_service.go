package ports

import (
	"context"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

// ClientInput carries the mutable contact fields of a client.
type ClientInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

// ClientService defines use-case operations for clients.
type ClientService interface {
	Create(ctx context.Context, in ClientInput) (*domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Search(ctx context.Context, query string) ([]*domain.Client, error)
	Update(ctx context.Context, id string, in ClientInput) (*domain.Client, error)
	AddNote(ctx context.Context, id, text string) (*domain.Client, error)
}
