package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

// ClosedDateRecord a single blocked calendar day; closed_date is unique
type ClosedDateRecord struct {
	ID         int64
	ClosedDate datekey.DateKey
	Note       *string
	CreatedAt  time.Time
}

// ClosedDateSet set of closed dates for membership checks
type ClosedDateSet map[datekey.DateKey]struct{}

// BuildClosedDateSet collects the dates of records. Nil records and records
// without a well-formed date are skipped.
func BuildClosedDateSet(records []*ClosedDateRecord) ClosedDateSet {
	set := make(ClosedDateSet, len(records))
	for _, r := range records {
		if r == nil || r.ClosedDate.IsZero() || !r.ClosedDate.Valid() {
			continue
		}
		set[r.ClosedDate] = struct{}{}
	}
	return set
}

// Contains reports whether d is in the set. A nil set contains nothing.
func (s ClosedDateSet) Contains(d datekey.DateKey) bool {
	if s == nil {
		return false
	}
	_, ok := s[d]
	return ok
}

// Sorted returns the dates in ascending order
func (s ClosedDateSet) Sorted() []datekey.DateKey {
	out := make([]datekey.DateKey, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// IsClosedDate reports whether d is closed. An empty date or a nil set yields false.
func IsClosedDate(d datekey.DateKey, set ClosedDateSet) bool {
	if d.IsZero() || set == nil {
		return false
	}
	return set.Contains(d)
}

// NextAvailableDate returns the first date in [from, from+window) that is not closed.
func NextAvailableDate(from datekey.DateKey, set ClosedDateSet, window int) (datekey.DateKey, error) {
	if _, err := datekey.Parse(from.String()); err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if window <= 0 {
		window = DefaultAvailabilityWindowDays
	}

	candidate := from
	for i := 0; i < window; i++ {
		if !IsClosedDate(candidate, set) {
			return candidate, nil
		}
		candidate = candidate.AddDays(1)
	}

	return "", fmt.Errorf("%w: %d days starting %s are closed", ErrNoAvailableDate, window, from)
}
