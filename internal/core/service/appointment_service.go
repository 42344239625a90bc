package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lia-nails/salon-system/internal/core/domain"
	"github.com/lia-nails/salon-system/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// AppointmentService implements booking use-cases.
type AppointmentService struct {
	repo    ports.AppointmentRepository
	catalog ports.CatalogRepository
	log     zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, catalog ports.CatalogRepository, log zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, catalog: catalog, log: log}
}

// Create books a new appointment in pending state. The duration defaults to
// the catalog entry's duration when the caller does not override it.
func (s *AppointmentService) Create(ctx context.Context, in ports.CreateAppointmentInput) (*domain.Appointment, error) {
	entry, err := s.catalog.FindByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	duration := in.DurationMinutes
	if duration <= 0 {
		duration = entry.DurationMinutes
	}

	now := time.Now().UTC()
	appointment := &domain.Appointment{
		ClientID:        in.ClientID,
		EmployeeID:      in.EmployeeID,
		ServiceID:       in.ServiceID,
		ScheduledAt:     in.ScheduledAt.UTC(),
		DurationMinutes: duration,
		Status:          domain.StatusPending,
		DepositRequired: in.DepositRequired,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, appointment)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.log.Info().
		Str("appointment_id", created.ID).
		Str("employee_id", created.EmployeeID).
		Time("scheduled_at", created.ScheduledAt).
		Msg("appointment created")

	return created, nil
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AppointmentService) List(ctx context.Context, filter ports.ListAppointmentsFilter) (*ports.ListAppointmentsResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.ListAppointmentsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// Transition applies a status change, enforcing the appointment state machine.
func (s *AppointmentService) Transition(ctx context.Context, id string, in ports.TransitionInput) (*domain.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := domain.AppointmentStatus(in.Status)
	if !appointment.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, appointment.Status, next)
	}

	totalPaid := 0.0
	if next == domain.StatusCompleted {
		totalPaid = in.TotalPaid
	}

	if err := s.repo.UpdateStatus(ctx, id, next, totalPaid); err != nil {
		return nil, fmt.Errorf("update appointment status: %w", err)
	}

	appointment.Status = next
	if totalPaid > 0 {
		appointment.TotalPaid = totalPaid
	}
	appointment.UpdatedAt = time.Now().UTC()

	s.log.Info().Str("appointment_id", id).Str("status", string(next)).Msg("appointment status updated")
	return appointment, nil
}
