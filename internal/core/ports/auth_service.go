package ports

import (
	"context"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

// AuthService defines registration and login use-cases.
type AuthService interface {
	Register(ctx context.Context, email, password, role, employeeID string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
