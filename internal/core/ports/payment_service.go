package ports

import (
	"context"
	"time"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

// PaymentInput carries the data needed to record a payment.
type PaymentInput struct {
	AppointmentID string
	Amount        float64
	Method        string
	Kind          string
	PaidAt        time.Time
}

// PaymentService defines use-case operations for payments.
type PaymentService interface {
	Record(ctx context.Context, in PaymentInput) (*domain.Payment, error)
	List(ctx context.Context, filter ListPaymentsFilter) ([]*domain.Payment, error)
}
