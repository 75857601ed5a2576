package domain

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

// ClosedDayMode how a closure request expands into dates
type ClosedDayMode string

const (
	ModeSingle ClosedDayMode = "single"
	ModeRange  ClosedDayMode = "range"
	ModeWeekly ClosedDayMode = "weekly"
)

// DateRange inclusive span of dates. For single mode only Start is used.
type DateRange struct {
	Start datekey.DateKey
	End   datekey.DateKey
}

// ResolveTargetDates expands a closure request into the ordered list of dates it affects.
//
//   - single: [rng.Start]
//   - range:  every date of [rng.Start, rng.End]
//   - weekly: dates of [rng.Start, rng.End] whose weekday (0 = Sunday) equals *weekday
//
// The result depends only on the arguments. An empty weekly result is not an error here;
// callers decide how to report it.
func ResolveTargetDates(mode ClosedDayMode, rng DateRange, weekday *int) ([]datekey.DateKey, error) {
	switch mode {
	case ModeSingle:
		if rng.Start.IsZero() {
			return nil, fmt.Errorf("%w: select a date", ErrValidation)
		}
		if _, err := datekey.Parse(rng.Start.String()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		return []datekey.DateKey{rng.Start}, nil

	case ModeRange:
		seq, err := enumerate(rng)
		if err != nil {
			return nil, err
		}
		dates := make([]datekey.DateKey, 0)
		for d := range seq {
			dates = append(dates, d)
		}
		return dates, nil

	case ModeWeekly:
		if weekday == nil || *weekday < 0 || *weekday > 6 {
			return nil, fmt.Errorf("%w: weekday must be an integer from 0 (Sunday) to 6 (Saturday)", ErrValidation)
		}
		seq, err := enumerate(rng)
		if err != nil {
			return nil, err
		}
		want := time.Weekday(*weekday)
		dates := make([]datekey.DateKey, 0)
		for d := range seq {
			if d.Weekday() == want {
				dates = append(dates, d)
			}
		}
		return dates, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}
}

// ValidateDateRange checks range bounds and returns the number of dates in it.
func ValidateDateRange(rng DateRange) (int, error) {
	if rng.Start.IsZero() || rng.End.IsZero() {
		return 0, fmt.Errorf("%w: select both start and end dates", ErrValidation)
	}
	count, err := datekey.ValidateRange(rng.Start, rng.End, MaxClosedDaySpanDays)
	if err != nil {
		return 0, classifyRangeError(err)
	}
	return count, nil
}

func enumerate(rng DateRange) (iter.Seq[datekey.DateKey], error) {
	if _, err := ValidateDateRange(rng); err != nil {
		return nil, err
	}
	seq, err := datekey.EnumerateRange(rng.Start, rng.End, MaxClosedDaySpanDays)
	if err != nil {
		return nil, classifyRangeError(err)
	}
	return seq, nil
}

func classifyRangeError(err error) error {
	if errors.Is(err, datekey.ErrLimitExceeded) {
		return fmt.Errorf("%w: %w", ErrLimitExceeded, err)
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
