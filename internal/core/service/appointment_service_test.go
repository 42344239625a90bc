package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lia-nails/salon-system/internal/core/domain"
	"github.com/lia-nails/salon-system/internal/core/ports"
)

type stubCatalogRepo struct {
	entries map[string]*domain.Service
}

func (r *stubCatalogRepo) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	r.entries[s.ID] = s
	return s, nil
}

func (r *stubCatalogRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	if s, ok := r.entries[id]; ok {
		return s, nil
	}
	return nil, domain.ErrServiceNotFound
}

func (r *stubCatalogRepo) List(_ context.Context, _ ports.ListServicesFilter) ([]*domain.Service, error) {
	return nil, nil
}

func (r *stubCatalogRepo) Update(_ context.Context, _ *domain.Service) error { return nil }

type stubAppointmentRepo struct {
	appointments map[string]*domain.Appointment
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{appointments: make(map[string]*domain.Appointment)}
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	clone := *a
	clone.ID = fmt.Sprintf("appt_%d", len(r.appointments)+1)
	r.appointments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, id string) (*domain.Appointment, error) {
	if a, ok := r.appointments[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, domain.ErrAppointmentNotFound
}

func (r *stubAppointmentRepo) List(_ context.Context, _ ports.ListAppointmentsFilter) ([]*domain.Appointment, int64, error) {
	return nil, 0, nil
}

func (r *stubAppointmentRepo) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus, totalPaid float64) error {
	a, ok := r.appointments[id]
	if !ok {
		return domain.ErrAppointmentNotFound
	}
	a.Status = status
	if totalPaid > 0 {
		a.TotalPaid = totalPaid
	}
	return nil
}

func (r *stubAppointmentRepo) FindDueForReminder(_ context.Context, _, _ time.Time) ([]*domain.Appointment, error) {
	return nil, nil
}

func (r *stubAppointmentRepo) MarkReminderSent(_ context.Context, id string) error {
	a, ok := r.appointments[id]
	if !ok {
		return domain.ErrAppointmentNotFound
	}
	a.ReminderSent = true
	return nil
}

func newTestAppointmentService(repo *stubAppointmentRepo) *AppointmentService {
	catalog := &stubCatalogRepo{entries: map[string]*domain.Service{
		"svc_gel": {ID: "svc_gel", Name: "Gel manicure", Category: domain.CategoryManicure, DurationMinutes: 60},
	}}
	return NewAppointmentService(repo, catalog, zerolog.Nop())
}

func TestAppointmentService_Create_DurationFromCatalog(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := newTestAppointmentService(repo)

	appt, err := svc.Create(context.Background(), ports.CreateAppointmentInput{
		ClientID:    "cli_1",
		EmployeeID:  "emp_1",
		ServiceID:   "svc_gel",
		ScheduledAt: time.Date(2026, 4, 10, 15, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if appt.Status != domain.StatusPending {
		t.Fatalf("expected pending, got %s", appt.Status)
	}
	if appt.DurationMinutes != 60 {
		t.Fatalf("expected catalog duration 60, got %d", appt.DurationMinutes)
	}
}

func TestAppointmentService_Create_UnknownService(t *testing.T) {
	svc := newTestAppointmentService(newStubAppointmentRepo())

	_, err := svc.Create(context.Background(), ports.CreateAppointmentInput{ServiceID: "svc_ghost"})
	if !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestAppointmentService_Transition_Valid(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := newTestAppointmentService(repo)

	appt, err := svc.Create(context.Background(), ports.CreateAppointmentInput{ServiceID: "svc_gel"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Transition(context.Background(), appt.ID, ports.TransitionInput{Status: "confirmed"}); err != nil {
		t.Fatalf("pending→confirmed: %v", err)
	}

	updated, err := svc.Transition(context.Background(), appt.ID, ports.TransitionInput{Status: "completed", TotalPaid: 5500})
	if err != nil {
		t.Fatalf("confirmed→completed: %v", err)
	}
	if updated.Status != domain.StatusCompleted || updated.TotalPaid != 5500 {
		t.Fatalf("unexpected result: %+v", updated)
	}
}

func TestAppointmentService_Transition_Invalid(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := newTestAppointmentService(repo)

	appt, err := svc.Create(context.Background(), ports.CreateAppointmentInput{ServiceID: "svc_gel"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// pending cannot complete without passing through confirmed.
	if _, err := svc.Transition(context.Background(), appt.ID, ports.TransitionInput{Status: "completed"}); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if repo.appointments[appt.ID].Status != domain.StatusPending {
		t.Fatalf("rejected transition mutated state")
	}
}
