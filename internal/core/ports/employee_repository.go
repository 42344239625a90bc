package ports

import (
	"context"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

// EmployeeRepository defines persistence operations for salon employees.
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
}
