// Package notify holds reminder delivery channels. The log notifier is the
// default until an SMS or WhatsApp provider is wired in.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lia-nails/salon-system/internal/core/ports"
)

// LogNotifier writes reminders to the application log instead of delivering
// them to the client. It keeps the pipeline exercisable end to end without
// a messaging provider account.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) SendReminder(ctx context.Context, job ports.ReminderJob) error {
	n.log.Info().
		Str("appointment_id", job.AppointmentID).
		Str("client_id", job.ClientID).
		Str("employee_id", job.EmployeeID).
		Msg("appointment reminder")
	return nil
}
