package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCancellableIDs_PreservesOrder(t *testing.T) {
	appointments := []*Appointment{
		{ID: 1, Status: StatusConfirmed},
		{ID: 2, Status: StatusCompleted},
		{ID: 3, Status: StatusCancelled},
		{ID: 4, Status: StatusConfirmed},
	}

	assert.Equal(t, []int64{1, 4}, ExtractCancellableIDs(appointments))
}

func TestExtractCancellableIDs_Empty(t *testing.T) {
	assert.Empty(t, ExtractCancellableIDs(nil))
	assert.Empty(t, ExtractCancellableIDs([]*Appointment{nil, {ID: 9, Status: StatusCompleted}}))
}

func TestIsCancellableConflict(t *testing.T) {
	assert.True(t, IsCancellableConflict(&Appointment{Status: StatusConfirmed}))
	assert.False(t, IsCancellableConflict(&Appointment{Status: StatusCompleted}))
	assert.False(t, IsCancellableConflict(&Appointment{Status: StatusCancelled}))
	assert.False(t, IsCancellableConflict(nil))
}

func TestAppointmentStatus_IsValid(t *testing.T) {
	assert.True(t, StatusConfirmed.IsValid())
	assert.False(t, AppointmentStatus("no_show").IsValid())
}
