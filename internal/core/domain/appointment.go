package domain

import (
	"errors"
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrAppointmentNotFound = errors.New("appointment not found")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment is a booked slot binding a client, an employee, and a catalog
// service. Monetary fields track the deposit taken at booking and the final
// settlement recorded on completion.
type Appointment struct {
	ID              string            `json:"id" bson:"_id,omitempty"`
	ClientID        string            `json:"client_id" bson:"client_id"`
	EmployeeID      string            `json:"employee_id" bson:"employee_id"`
	ServiceID       string            `json:"service_id" bson:"service_id"`
	ScheduledAt     time.Time         `json:"scheduled_at" bson:"scheduled_at"`
	DurationMinutes int               `json:"duration_minutes" bson:"duration_minutes"`
	Status          AppointmentStatus `json:"status" bson:"status"`
	DepositPaid     float64           `json:"deposit_paid" bson:"deposit_paid"`
	TotalPaid       float64           `json:"total_paid,omitempty" bson:"total_paid,omitempty"`
	DepositRequired bool              `json:"deposit_required" bson:"deposit_required"`
	ReminderSent    bool              `json:"reminder_sent" bson:"reminder_sent"`
	CreatedAt       time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" bson:"updated_at"`
}
