package ports

import (
	"context"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

// AuthRepository defines the interface for account persistence.
// FindByEmail expects an already-normalized (lowercase) email.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
