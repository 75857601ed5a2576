package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYearMonth(t *testing.T) {
	// 2025-01-31 16:00 UTC это уже 1 февраля по KST
	now := time.Date(2025, 1, 31, 16, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		target    string
		wantYear  int
		wantMonth int
		wantErr   bool
	}{
		{name: "defaults to KST month", target: "/stats", wantYear: 2025, wantMonth: 2},
		{name: "explicit", target: "/stats?year=2024&month=12", wantYear: 2024, wantMonth: 12},
		{name: "not a number", target: "/stats?year=abc&month=1", wantErr: true},
		{name: "month missing", target: "/stats?year=2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			year, month, err := ParseYearMonth(req, now)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidYearMonth)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-1", "abc"} {
		_, err := ParseID(raw)
		assert.ErrorIs(t, err, ErrInvalidID, raw)
	}
}
