package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"01012345678":   "010-1234-5678",
		"010-1234-5678": "010-1234-5678",
		"0111234567":    "011-123-4567",
		"021234567":     "02-123-4567",
		"02 1234 5678":  "02-1234-5678",
		"031123456":     "031-12-3456",
		"0311234567":    "031-123-4567",
		"03112345678":   "031-1234-5678",
		"":              "",
		"  ":            "",
	}

	for in, want := range cases {
		got, err := NormalizePhone(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestNormalizePhone_Invalid(t *testing.T) {
	for _, in := range []string{"12345", "010123", "0212", "07012345678", "abc1"} {
		_, err := NormalizePhone(in)
		assert.ErrorIs(t, err, ErrInvalidPhone, "input %q", in)
	}
}
