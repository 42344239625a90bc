package ports

import (
	"context"
	"time"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

// ListPaymentsFilter carries the query parameters for listing payments.
type ListPaymentsFilter struct {
	AppointmentID string    // optional: scope to one appointment
	DateFrom      time.Time // optional: paid_at >= DateFrom
	DateTo        time.Time // optional: paid_at <= DateTo
}

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	List(ctx context.Context, filter ListPaymentsFilter) ([]*domain.Payment, error)
}
