package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lia-nails/salon-system/internal/core/ports"
)

// SentGuard abstracts the at-most-once store (Redis) that keeps a reminder
// from going out twice when workers overlap.
type SentGuard interface {
	AlreadySent(ctx context.Context, appointmentID string) (bool, error)
	Mark(ctx context.Context, appointmentID string) error
}

// Notifier delivers the actual reminder message (SMS, WhatsApp, ...).
type Notifier interface {
	SendReminder(ctx context.Context, job ports.ReminderJob) error
}

type reminderService struct {
	appointments ports.AppointmentRepository
	guard        SentGuard
	notifier     Notifier
	log          zerolog.Logger
}

// NewReminderService returns a ReminderService implementation.
func NewReminderService(
	appointments ports.AppointmentRepository,
	guard SentGuard,
	notifier Notifier,
	log zerolog.Logger,
) ports.ReminderService {
	return &reminderService{
		appointments: appointments,
		guard:        guard,
		notifier:     notifier,
		log:          log,
	}
}

// Process sends one due-appointment reminder exactly once and records the
// fact on the appointment.
func (s *reminderService) Process(ctx context.Context, job ports.ReminderJob) error {
	sent, err := s.guard.AlreadySent(ctx, job.AppointmentID)
	if err != nil {
		s.log.Warn().Err(err).Str("appointment_id", job.AppointmentID).Msg("sent-guard check failed, processing anyway")
	} else if sent {
		s.log.Debug().Str("appointment_id", job.AppointmentID).Msg("duplicate reminder skipped")
		return nil
	}

	// Mark before sending so an overlapping worker cannot double-send; a
	// failed send after marking is preferable to two messages.
	if markErr := s.guard.Mark(ctx, job.AppointmentID); markErr != nil {
		s.log.Warn().Err(markErr).Str("appointment_id", job.AppointmentID).Msg("failed to set sent-guard key")
	}

	if err := s.notifier.SendReminder(ctx, job); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}

	if err := s.appointments.MarkReminderSent(ctx, job.AppointmentID); err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}

	s.log.Info().Str("appointment_id", job.AppointmentID).Msg("reminder sent")
	return nil
}
