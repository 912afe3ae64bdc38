package models

import (
	"time"
)

// Status is the lifecycle tag of an appointment.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether the explicit confirm/complete/cancel
// actions allow moving an appointment between the two statuses.
// Completed and cancelled are terminal.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}

// PaymentMethod is how the client pays for an appointment.
type PaymentMethod string

const (
	PaymentCash            PaymentMethod = "cash"
	PaymentInstantTransfer PaymentMethod = "instant-transfer"
	PaymentDebitCard       PaymentMethod = "debit-card"
	PaymentCreditCard      PaymentMethod = "credit-card"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentInstantTransfer, PaymentDebitCard, PaymentCreditCard:
		return true
	}
	return false
}

// Appointment is a booked service slot for a client. ServiceName, Price
// and DurationMinutes are copied from the catalog entry at booking time;
// later catalog edits or deletions never touch existing appointments.
type Appointment struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"clientName"`
	ClientPhone string    `json:"clientPhone"`
	ServiceName string    `json:"serviceName"`
	Date        time.Time `json:"date"`
	// TimeSlot is the authoritative ordering key and must stay
	// zero-padded ("09:00"): day views sort it lexicographically.
	TimeSlot        string        `json:"timeSlot"`
	DurationMinutes int           `json:"durationMinutes"`
	Price           float64       `json:"price"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Status          Status        `json:"status"`
	Notes           string        `json:"notes,omitempty"`
}
