package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lia-nails/salon-system/internal/core/domain"
	"github.com/lia-nails/salon-system/internal/core/ports"
)

// PaymentService implements payment recording use-cases.
type PaymentService struct {
	repo         ports.PaymentRepository
	appointments ports.AppointmentRepository
	log          zerolog.Logger
}

func NewPaymentService(repo ports.PaymentRepository, appointments ports.AppointmentRepository, log zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, appointments: appointments, log: log}
}

// Record stores a payment against an existing appointment.
func (s *PaymentService) Record(ctx context.Context, in ports.PaymentInput) (*domain.Payment, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidPayment)
	}
	kind := domain.PaymentKind(in.Kind)
	if kind != domain.PaymentDeposit && kind != domain.PaymentFinal {
		return nil, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidPayment, in.Kind)
	}

	if _, err := s.appointments.FindByID(ctx, in.AppointmentID); err != nil {
		return nil, err
	}

	paidAt := in.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	payment := &domain.Payment{
		AppointmentID: in.AppointmentID,
		Amount:        in.Amount,
		Method:        in.Method,
		Kind:          kind,
		PaidAt:        paidAt.UTC(),
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	s.log.Info().
		Str("payment_id", created.ID).
		Str("appointment_id", created.AppointmentID).
		Float64("amount", created.Amount).
		Msg("payment recorded")

	return created, nil
}

func (s *PaymentService) List(ctx context.Context, filter ports.ListPaymentsFilter) ([]*domain.Payment, error) {
	return s.repo.List(ctx, filter)
}
