package ports

import (
	"context"
	"time"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

// ListAppointmentsFilter carries the query parameters for listing appointments.
// When EmployeeID is non-empty the result is scoped to that employee's agenda.
type ListAppointmentsFilter struct {
	EmployeeID string
	Status     string    // optional: filter by appointment status
	DateFrom   time.Time // optional: scheduled_at >= DateFrom
	DateTo     time.Time // optional: scheduled_at <= DateTo
	Page       int       // 1-based
	Limit      int       // max rows per page (capped at 100 by service)
}

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	// List returns a page of appointments matching filter and the total count.
	List(ctx context.Context, filter ListAppointmentsFilter) ([]*domain.Appointment, int64, error)
	// UpdateStatus applies the new status and any settlement fields atomically.
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus, totalPaid float64) error
	// FindDueForReminder returns confirmed appointments scheduled inside
	// [from, to] whose reminder flag is still unset.
	FindDueForReminder(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
	MarkReminderSent(ctx context.Context, id string) error
}
