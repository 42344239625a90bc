package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lia-nails/salon-system/internal/core/domain"
	"github.com/lia-nails/salon-system/internal/core/ports"
)

type memorySentGuard struct {
	sent map[string]bool
}

func (g *memorySentGuard) AlreadySent(_ context.Context, id string) (bool, error) {
	return g.sent[id], nil
}

func (g *memorySentGuard) Mark(_ context.Context, id string) error {
	g.sent[id] = true
	return nil
}

type recordingNotifier struct {
	delivered []string
}

func (n *recordingNotifier) SendReminder(_ context.Context, job ports.ReminderJob) error {
	n.delivered = append(n.delivered, job.AppointmentID)
	return nil
}

func TestReminderService_Process_SendsOnce(t *testing.T) {
	repo := newStubAppointmentRepo()
	repo.appointments["appt_1"] = &domain.Appointment{
		ID:          "appt_1",
		Status:      domain.StatusConfirmed,
		ScheduledAt: time.Now().Add(2 * time.Hour),
	}

	guard := &memorySentGuard{sent: make(map[string]bool)}
	notifier := &recordingNotifier{}
	svc := NewReminderService(repo, guard, notifier, zerolog.Nop())

	job := ports.ReminderJob{AppointmentID: "appt_1", ClientID: "cli_1", EmployeeID: "emp_1"}
	if err := svc.Process(context.Background(), job); err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(notifier.delivered) != 1 {
		t.Fatalf("expected one delivery, got %d", len(notifier.delivered))
	}
	if !repo.appointments["appt_1"].ReminderSent {
		t.Fatalf("reminder flag not set")
	}

	// Replaying the same job is a no-op thanks to the sent-guard.
	if err := svc.Process(context.Background(), job); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(notifier.delivered) != 1 {
		t.Fatalf("duplicate reminder delivered")
	}
}
