package datekey

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2025-01-03")
	require.NoError(t, err)
	assert.Equal(t, DateKey("2025-01-03"), d)

	for _, bad := range []string{"", "2025-1-3", "2025/01/03", "2025-02-30", "20250103", "2025-01-03T00:00:00Z"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalid, "input %q", bad)
	}
}

func TestTodayAt_UsesFixedOffset(t *testing.T) {
	// 2025-01-01 15:30 UTC is already 2025-01-02 00:30 in KST
	instant := time.Date(2025, 1, 1, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, DateKey("2025-01-02"), TodayAt(instant))

	// the same instant expressed in another zone yields the same key
	ny, err := time.LoadLocation("America/New_York")
	if err == nil {
		assert.Equal(t, DateKey("2025-01-02"), TodayAt(instant.In(ny)))
	}

	// 14:59 UTC is still the previous day in KST
	assert.Equal(t, DateKey("2025-01-01"), TodayAt(time.Date(2025, 1, 1, 14, 59, 0, 0, time.UTC)))
}

func TestAddDays(t *testing.T) {
	d := MustParse("2024-02-28")

	assert.Equal(t, DateKey("2024-02-29"), d.AddDays(1))
	assert.Equal(t, DateKey("2024-03-01"), d.AddDays(2))
	assert.Equal(t, DateKey("2024-02-28"), d.AddDays(0))
	assert.Equal(t, DateKey("2023-12-31"), MustParse("2024-01-01").AddDays(-1))
	assert.Equal(t, DateKey(""), DateKey("bogus").AddDays(1))
}

func TestAddDays_RoundTripAndComposition(t *testing.T) {
	start := MustParse("2023-11-15")
	for n := -400; n <= 400; n += 37 {
		assert.Equal(t, start, start.AddDays(n).AddDays(-n), "n=%d", n)
		for _, m := range []int{-9, 0, 13} {
			assert.Equal(t, start.AddDays(n+m), start.AddDays(n).AddDays(m), "n=%d m=%d", n, m)
		}
	}
}

func TestWeekday(t *testing.T) {
	assert.Equal(t, time.Wednesday, MustParse("2025-01-01").Weekday())
	assert.Equal(t, time.Sunday, MustParse("2025-01-05").Weekday())
	assert.Equal(t, time.Saturday, MustParse("2024-02-24").Weekday())
	assert.Equal(t, time.Weekday(-1), DateKey("nope").Weekday())
}

func TestWeekday_IndependentOfLocalZone(t *testing.T) {
	original := time.Local
	t.Cleanup(func() { time.Local = original })

	zones := []*time.Location{time.UTC, time.FixedZone("west", -11*60*60), time.FixedZone("east", 14*60*60)}
	for _, loc := range zones {
		time.Local = loc
		assert.Equal(t, time.Wednesday, MustParse("2025-01-01").Weekday(), loc.String())
		assert.Equal(t, DateKey("2025-01-02"), MustParse("2025-01-01").AddDays(1), loc.String())
	}
}

func TestHuman(t *testing.T) {
	assert.Equal(t, "2025년 1월 3일", MustParse("2025-01-03").Human())
	assert.Equal(t, "", DateKey("").Human())
}

func TestEnumerateRange(t *testing.T) {
	seq, err := EnumerateRange("2025-01-01", "2025-01-03", DefaultMaxDays)
	require.NoError(t, err)
	assert.Equal(t, []DateKey{"2025-01-01", "2025-01-02", "2025-01-03"}, slices.Collect(seq))

	// restartable
	assert.Equal(t, []DateKey{"2025-01-01", "2025-01-02", "2025-01-03"}, slices.Collect(seq))

	single, err := EnumerateRange("2025-05-01", "2025-05-01", DefaultMaxDays)
	require.NoError(t, err)
	assert.Equal(t, []DateKey{"2025-05-01"}, slices.Collect(single))
}

func TestEnumerateRange_CrossesMonthAndYear(t *testing.T) {
	seq, err := EnumerateRange("2024-12-30", "2025-01-02", 0)
	require.NoError(t, err)
	assert.Equal(t, []DateKey{"2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02"}, slices.Collect(seq))
}

func TestEnumerateRange_EarlyStop(t *testing.T) {
	seq, err := EnumerateRange("2025-01-01", "2025-01-31", DefaultMaxDays)
	require.NoError(t, err)

	var got []DateKey
	for d := range seq {
		got = append(got, d)
		if len(got) == 2 {
			break
		}
	}
	assert.Len(t, got, 2)
}

func TestEnumerateRange_Errors(t *testing.T) {
	_, err := EnumerateRange("2025-01-03", "2025-01-01", DefaultMaxDays)
	assert.ErrorIs(t, err, ErrRangeOrder)

	_, err = EnumerateRange("2025-01-01", "not-a-date", DefaultMaxDays)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestEnumerateRange_Limit(t *testing.T) {
	// 2024 is a leap year: Jan 1 .. Dec 31 is exactly 366 dates
	seq, err := EnumerateRange("2024-01-01", "2024-12-31", DefaultMaxDays)
	require.NoError(t, err)
	assert.Len(t, slices.Collect(seq), 366)

	_, err = EnumerateRange("2024-01-01", "2025-01-01", DefaultMaxDays)
	assert.ErrorIs(t, err, ErrLimitExceeded)

	_, err = EnumerateRange("2025-01-01", "2025-01-10", 5)
	assert.ErrorIs(t, err, ErrLimitExceeded)
}

func TestValidateRange(t *testing.T) {
	count, err := ValidateRange("2025-03-01", "2025-03-31", 0)
	require.NoError(t, err)
	assert.Equal(t, 31, count)
}

func TestScan(t *testing.T) {
	var d DateKey

	require.NoError(t, d.Scan(time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, DateKey("2025-01-03"), d)

	require.NoError(t, d.Scan([]byte("2025-02-04")))
	assert.Equal(t, DateKey("2025-02-04"), d)

	require.NoError(t, d.Scan("2025-02-05T00:00:00Z"))
	assert.Equal(t, DateKey("2025-02-05"), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.ErrorIs(t, d.Scan(42), ErrInvalid)

	v, err := DateKey("2025-01-03").Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-01-03", v)
}

func TestMonthBounds(t *testing.T) {
	start, end, err := MonthBounds(2024, 2)
	require.NoError(t, err)
	assert.Equal(t, DateKey("2024-02-01"), start)
	assert.Equal(t, DateKey("2024-02-29"), end)

	start, end, err = MonthBounds(2025, 12)
	require.NoError(t, err)
	assert.Equal(t, DateKey("2025-12-01"), start)
	assert.Equal(t, DateKey("2025-12-31"), end)

	_, _, err = MonthBounds(2025, 13)
	assert.ErrorIs(t, err, ErrInvalid)
}
