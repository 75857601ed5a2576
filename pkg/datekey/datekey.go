// Package datekey implements civil calendar dates encoded as YYYY-MM-DD strings.
//
// All dates are interpreted in Korea Standard Time (UTC+9, no DST). The zone is a
// fixed offset, so "today" and weekday calculations never depend on the host TZ.
package datekey

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"iter"
	"time"
)

// Layout формат ключа даты
const Layout = "2006-01-02"

// DefaultMaxDays максимальная длина диапазона дат (включительно)
const DefaultMaxDays = 366

var (
	// ErrInvalid возвращается при некорректном формате даты
	ErrInvalid = errors.New("datekey: invalid date, expected YYYY-MM-DD")

	// ErrRangeOrder возвращается, когда конец диапазона раньше начала
	ErrRangeOrder = errors.New("datekey: end date is before start date")

	// ErrLimitExceeded возвращается, когда диапазон длиннее допустимого
	ErrLimitExceeded = errors.New("datekey: date range exceeds the maximum span")
)

var kst = time.FixedZone("KST", 9*60*60)

// Location returns the fixed civil timezone used for every date key.
func Location() *time.Location {
	return kst
}

// DateKey is a civil date such as "2025-01-03".
type DateKey string

// Parse validates s and returns it as a DateKey.
func Parse(s string) (DateKey, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	// time.Parse accepts some non-canonical forms, the key must be fixed-width
	if t.Format(Layout) != s {
		return "", fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return DateKey(s), nil
}

// MustParse is Parse for constants and tests.
func MustParse(s string) DateKey {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime renders the instant t as a date in the civil timezone.
func FromTime(t time.Time) DateKey {
	return DateKey(t.In(kst).Format(Layout))
}

// FromDate builds a key from calendar components. Out-of-range values are normalized
// the same way time.Date does.
func FromDate(year int, month time.Month, day int) DateKey {
	return DateKey(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(Layout))
}

// Today returns the current date in the civil timezone.
func Today() DateKey {
	return TodayAt(time.Now())
}

// TodayAt returns the civil date of the given instant.
func TodayAt(now time.Time) DateKey {
	return FromTime(now)
}

// String implements fmt.Stringer.
func (d DateKey) String() string {
	return string(d)
}

// IsZero reports whether the key is empty.
func (d DateKey) IsZero() bool {
	return d == ""
}

// Valid reports whether the key is a well-formed date.
func (d DateKey) Valid() bool {
	_, err := Parse(string(d))
	return err == nil
}

// UTCMidnight returns the date as a UTC midnight instant.
func (d DateKey) UTCMidnight() (time.Time, error) {
	t, err := time.ParseInLocation(Layout, string(d), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalid, string(d))
	}
	return t, nil
}

// AddDays returns the key n days after d. n may be negative. An invalid key yields "".
func (d DateKey) AddDays(n int) DateKey {
	t, err := d.UTCMidnight()
	if err != nil {
		return ""
	}
	// UTC midnight is 09:00 KST on the same calendar day, rendering keeps the date
	return FromTime(t.AddDate(0, 0, n))
}

// Weekday returns the day of week, Sunday = 0. An invalid key yields -1.
func (d DateKey) Weekday() time.Weekday {
	t, err := d.UTCMidnight()
	if err != nil {
		return -1
	}
	return t.Weekday()
}

// Before reports whether d is earlier than other. Fixed-width keys compare lexically.
func (d DateKey) Before(other DateKey) bool {
	return d < other
}

// After reports whether d is later than other.
func (d DateKey) After(other DateKey) bool {
	return d > other
}

// Human renders the key as a long-form Korean date, e.g. "2025년 1월 3일".
func (d DateKey) Human() string {
	t, err := d.UTCMidnight()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}

// DaysBetween returns the number of whole days from start to end.
func DaysBetween(start, end DateKey) (int, error) {
	s, err := start.UTCMidnight()
	if err != nil {
		return 0, err
	}
	e, err := end.UTCMidnight()
	if err != nil {
		return 0, err
	}
	return int(e.Sub(s).Hours() / 24), nil
}

// MonthBounds returns the first and last date of a calendar month.
func MonthBounds(year, month int) (DateKey, DateKey, error) {
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return "", "", fmt.Errorf("%w: month %d-%d", ErrInvalid, year, month)
	}
	return FromDate(year, time.Month(month), 1), FromDate(year, time.Month(month)+1, 0), nil
}

// ValidateRange checks that [start, end] is ordered and at most maxDays long and
// returns the number of dates in it. maxDays <= 0 means DefaultMaxDays.
func ValidateRange(start, end DateKey, maxDays int) (int, error) {
	if maxDays <= 0 {
		maxDays = DefaultMaxDays
	}
	if _, err := Parse(string(start)); err != nil {
		return 0, err
	}
	if _, err := Parse(string(end)); err != nil {
		return 0, err
	}
	if end.Before(start) {
		return 0, fmt.Errorf("%w: %s > %s", ErrRangeOrder, start, end)
	}

	days, err := DaysBetween(start, end)
	if err != nil {
		return 0, err
	}
	count := days + 1
	if count > maxDays {
		return 0, fmt.Errorf("%w: %d days requested, at most %d allowed", ErrLimitExceeded, count, maxDays)
	}

	return count, nil
}

// EnumerateRange returns every date from start to end inclusive. The range is
// validated up front; the returned sequence is lazy and can be iterated repeatedly.
func EnumerateRange(start, end DateKey, maxDays int) (iter.Seq[DateKey], error) {
	count, err := ValidateRange(start, end, maxDays)
	if err != nil {
		return nil, err
	}

	return func(yield func(DateKey) bool) {
		cur := start
		for i := 0; i < count; i++ {
			if !yield(cur) {
				return
			}
			cur = cur.AddDays(1)
		}
	}, nil
}

// Scan implements sql.Scanner. PostgreSQL DATE columns arrive as time.Time whose
// calendar fields already hold the stored date.
func (d *DateKey) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = FromDate(v.Year(), v.Month(), v.Day())
		return nil
	case []byte:
		return d.Scan(string(v))
	case string:
		if len(v) > len(Layout) {
			v = v[:len(Layout)]
		}
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalid, src)
	}
}

// Value implements driver.Valuer. An empty key is stored as NULL.
func (d DateKey) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}
