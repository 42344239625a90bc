package ports

import (
	"context"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

// EmployeeInput carries the mutable fields of an employee.
type EmployeeInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	WorkDays  []string
	StartTime string
	EndTime   string
}

// EmployeeService defines use-case operations for employees.
// Deactivate is the only removal path; records are never hard-deleted.
type EmployeeService interface {
	Create(ctx context.Context, in EmployeeInput) (*domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Employee, error)
	Update(ctx context.Context, id string, in EmployeeInput) (*domain.Employee, error)
	Deactivate(ctx context.Context, id string) error
}
