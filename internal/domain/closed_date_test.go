package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

func TestBuildClosedDateSet_DropsIncompleteRecords(t *testing.T) {
	set := BuildClosedDateSet([]*ClosedDateRecord{
		{ClosedDate: "2025-05-01"},
		nil,
		{},
		{ClosedDate: "05/01/2025"},
	})

	assert.Len(t, set, 1)
	assert.True(t, set.Contains("2025-05-01"))
}

func TestIsClosedDate(t *testing.T) {
	set := BuildClosedDateSet([]*ClosedDateRecord{{ClosedDate: "2025-05-01"}, {ClosedDate: "2025-05-05"}})

	assert.True(t, IsClosedDate("2025-05-05", set))
	assert.False(t, IsClosedDate("2025-05-02", set))
	assert.False(t, IsClosedDate("", set))
	assert.False(t, IsClosedDate("2025-05-01", nil))
}

func TestClosedDateSet_Sorted(t *testing.T) {
	set := BuildClosedDateSet([]*ClosedDateRecord{{ClosedDate: "2025-05-05"}, {ClosedDate: "2024-12-31"}})
	assert.Equal(t, []datekey.DateKey{"2024-12-31", "2025-05-05"}, set.Sorted())
}

func TestNextAvailableDate(t *testing.T) {
	set := BuildClosedDateSet([]*ClosedDateRecord{
		{ClosedDate: "2025-01-01"},
		{ClosedDate: "2025-01-02"},
	})

	next, err := NextAvailableDate("2025-01-01", set, 30)
	require.NoError(t, err)
	assert.Equal(t, datekey.DateKey("2025-01-03"), next)

	same, err := NextAvailableDate("2025-01-10", set, 30)
	require.NoError(t, err)
	assert.Equal(t, datekey.DateKey("2025-01-10"), same)
}

func TestNextAvailableDate_WindowExhausted(t *testing.T) {
	records := make([]*ClosedDateRecord, 0, 3)
	for _, d := range []datekey.DateKey{"2025-01-01", "2025-01-02", "2025-01-03"} {
		records = append(records, &ClosedDateRecord{ClosedDate: d})
	}

	_, err := NextAvailableDate("2025-01-01", BuildClosedDateSet(records), 3)
	assert.ErrorIs(t, err, ErrNoAvailableDate)

	next, err := NextAvailableDate("2025-01-01", BuildClosedDateSet(records), 4)
	require.NoError(t, err)
	assert.Equal(t, datekey.DateKey("2025-01-04"), next)
}

func TestNextAvailableDate_InvalidStart(t *testing.T) {
	_, err := NextAvailableDate("tomorrow", nil, 30)
	assert.ErrorIs(t, err, ErrValidation)
}
