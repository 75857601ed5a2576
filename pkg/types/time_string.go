package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

const (
	displayLayout = "15:04"
	storageLayout = "15:04:05"
)

// TimeString время суток с точностью до секунды ("10:00:00").
// В API отображается с точностью до минут ("10:00").
type TimeString struct {
	seconds int
	valid   bool
}

// NewTimeString создает TimeString из времени суток t
func NewTimeString(t time.Time) TimeString {
	return TimeString{seconds: t.Hour()*3600 + t.Minute()*60 + t.Second(), valid: true}
}

// NewTimeStringFromString парсит "HH:MM" или "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)

	layout := displayLayout
	if strings.Count(s, ":") == 2 {
		layout = storageLayout
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return NewTimeString(t), nil
}

// IsZero возвращает true, если время не задано
func (ts TimeString) IsZero() bool {
	return !ts.valid
}

// Validate проверяет, что время задано и находится в пределах суток
func (ts TimeString) Validate() error {
	if !ts.valid || ts.seconds < 0 || ts.seconds >= 24*3600 {
		return ErrInvalidTimeString
	}
	return nil
}

// String возвращает время в формате "HH:MM" (секунды отбрасываются)
func (ts TimeString) String() string {
	if !ts.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", ts.seconds/3600, (ts.seconds%3600)/60)
}

// StorageString возвращает время в формате "HH:MM:SS"
func (ts TimeString) StorageString() string {
	if !ts.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d:%02d", ts.seconds/3600, (ts.seconds%3600)/60, ts.seconds%60)
}

// IsBefore возвращает true, если ts раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return ts.seconds < other.seconds
}

// IsAfter возвращает true, если ts позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return ts.seconds > other.seconds
}

// Scan реализует sql.Scanner (PostgreSQL TIME приходит строкой)
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = TimeString{}
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case []byte:
		return ts.Scan(string(v))
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
}

// Value реализует driver.Valuer
func (ts TimeString) Value() (driver.Value, error) {
	if !ts.valid {
		return nil, nil
	}
	return ts.StorageString(), nil
}

// MarshalJSON отдает время в формате "HH:MM"
func (ts TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON принимает "HH:MM" или "HH:MM:SS"
func (ts *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*ts = TimeString{}
		return nil
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
