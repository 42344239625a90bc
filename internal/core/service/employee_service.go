package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lia-nails/salon-system/internal/core/domain"
	"github.com/lia-nails/salon-system/internal/core/ports"
)

// EmployeeService implements employee management use-cases.
type EmployeeService struct {
	repo ports.EmployeeRepository
	log  zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, log: log}
}

func (s *EmployeeService) Create(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	now := time.Now().UTC()
	employee := &domain.Employee{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Email:     in.Email,
		WorkDays:  in.WorkDays,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}

	s.log.Info().Str("employee_id", created.ID).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context, activeOnly bool) ([]*domain.Employee, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *EmployeeService) Update(ctx context.Context, id string, in ports.EmployeeInput) (*domain.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	employee.FirstName = in.FirstName
	employee.LastName = in.LastName
	employee.Phone = in.Phone
	employee.Email = in.Email
	employee.WorkDays = in.WorkDays
	employee.StartTime = in.StartTime
	employee.EndTime = in.EndTime
	employee.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return employee, nil
}

// Deactivate marks the employee inactive; bookings and history stay intact.
func (s *EmployeeService) Deactivate(ctx context.Context, id string) error {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	employee.Active = false
	employee.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, employee); err != nil {
		return fmt.Errorf("deactivate employee: %w", err)
	}

	s.log.Info().Str("employee_id", id).Msg("employee deactivated")
	return nil
}
