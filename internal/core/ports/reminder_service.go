package ports

import "context"

// ReminderJob identifies one appointment whose reminder is due.
type ReminderJob struct {
	AppointmentID string
	ClientID      string
	EmployeeID    string
}

// ReminderService processes a single due-appointment reminder.
type ReminderService interface {
	Process(ctx context.Context, job ReminderJob) error
}
