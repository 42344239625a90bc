package domain

import (
	"errors"
	"time"
)

// PaymentKind distinguishes the booking deposit from the final settlement.
type PaymentKind string

const (
	PaymentDeposit PaymentKind = "deposit"
	PaymentFinal   PaymentKind = "final"
)

var ErrPaymentNotFound = errors.New("payment not found")
var ErrInvalidPayment = errors.New("invalid payment")

// Payment records money received for an appointment.
type Payment struct {
	ID            string      `json:"id" bson:"_id,omitempty"`
	AppointmentID string      `json:"appointment_id" bson:"appointment_id"`
	Amount        float64     `json:"amount" bson:"amount"`
	Method        string      `json:"method" bson:"method"`
	Kind          PaymentKind `json:"kind" bson:"kind"`
	PaidAt        time.Time   `json:"paid_at" bson:"paid_at"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
}
