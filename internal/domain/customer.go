package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Customer represents a salon client
type Customer struct {
	ID        int64
	Name      string
	Phone     string // "010-1234-5678" или пустая строка
	Memo      *string
	CreatedAt time.Time
}

var (
	nonDigits      = regexp.MustCompile(`\D`)
	mobilePrefix   = regexp.MustCompile(`^01[0-9]{2}`)
	regionalPrefix = regexp.MustCompile(`^0[3-6][0-9]`)
)

// NormalizePhone приводит корейский номер к виду с дефисами.
// Пустой ввод допустим и возвращает "". Поддерживаются мобильные (010, 011, ...),
// сеульские (02) и региональные (031 ... 064) номера.
func NormalizePhone(raw string) (string, error) {
	digits := nonDigits.ReplaceAllString(raw, "")
	if digits == "" {
		return "", nil
	}

	switch {
	case strings.HasPrefix(digits, "02"):
		switch len(digits) {
		case 9:
			return hyphenate(digits, 2, 5), nil
		case 10:
			return hyphenate(digits, 2, 6), nil
		}

	case mobilePrefix.MatchString(digits):
		switch len(digits) {
		case 10:
			return hyphenate(digits, 3, 6), nil
		case 11:
			return hyphenate(digits, 3, 7), nil
		}

	case regionalPrefix.MatchString(digits):
		switch len(digits) {
		case 9:
			return hyphenate(digits, 3, 5), nil
		case 10:
			return hyphenate(digits, 3, 6), nil
		case 11:
			return hyphenate(digits, 3, 7), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
}

func hyphenate(digits string, first, second int) string {
	return digits[:first] + "-" + digits[first:second] + "-" + digits[second:]
}
