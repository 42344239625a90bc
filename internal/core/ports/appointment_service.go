package ports

import (
	"context"
	"time"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

// CreateAppointmentInput carries all data needed to book an appointment.
// DurationMinutes may be zero, in which case the catalog entry's duration
// is used.
type CreateAppointmentInput struct {
	ClientID        string
	EmployeeID      string
	ServiceID       string
	ScheduledAt     time.Time
	DurationMinutes int
	DepositRequired bool
}

// TransitionInput carries a status change request. TotalPaid is only
// meaningful when the target status is completed.
type TransitionInput struct {
	Status    string
	TotalPaid float64
}

// ListAppointmentsResult is returned by List.
type ListAppointmentsResult struct {
	Items      []*domain.Appointment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AppointmentService defines use-case operations for appointments.
type AppointmentService interface {
	Create(ctx context.Context, in CreateAppointmentInput) (*domain.Appointment, error)
	Get(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter ListAppointmentsFilter) (*ListAppointmentsResult, error)
	Transition(ctx context.Context, id string, in TransitionInput) (*domain.Appointment, error)
}
