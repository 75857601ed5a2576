package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/datekey"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValid returns true for a known status
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment represents a booking of a customer for a service
type Appointment struct {
	ID         int64
	CustomerID int64
	Date       datekey.DateKey
	Time       types.TimeString // хранится с секундами, отображается HH:MM
	Service    string
	Duration   string // свободный текст, например "1시간"
	Memo       *string
	Status     AppointmentStatus

	// Заполняется запросами с JOIN customers
	CustomerName *string

	CreatedAt time.Time
}

// IsCancellableConflict reports whether a is an appointment that closing its date may cancel.
// Only confirmed appointments qualify; completed and cancelled are terminal.
func IsCancellableConflict(a *Appointment) bool {
	return a != nil && a.Status == StatusConfirmed
}

// ExtractCancellableIDs returns the IDs of cancellable appointments in input order.
func ExtractCancellableIDs(appointments []*Appointment) []int64 {
	ids := make([]int64, 0, len(appointments))
	for _, a := range appointments {
		if IsCancellableConflict(a) {
			ids = append(ids, a.ID)
		}
	}
	return ids
}
