package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	closedDays "github.com/m04kA/SMC-SalonService/internal/usecase/closed_days"
)

type mockLogger struct{}

func (mockLogger) Info(string, ...interface{})  {}
func (mockLogger) Warn(string, ...interface{})  {}
func (mockLogger) Error(string, ...interface{}) {}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "a", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(req, &v), ErrEmptyBody)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"other":1}`))
	assert.Error(t, DecodeJSON(req, &v))
}

func TestRespondClosedDayError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "validation message without prefix",
			err:      fmt.Errorf("%w: select a date", closedDays.ErrValidation),
			wantCode: http.StatusBadRequest,
			wantMsg:  "select a date",
		},
		{
			name:     "limit exceeded",
			err:      closedDays.ErrLimitExceeded,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "commit in progress",
			err:      closedDays.ErrCommitInProgress,
			wantCode: http.StatusConflict,
			wantMsg:  msgCommitInProgress,
		},
		{
			name:     "remote failure verbatim",
			err:      &closedDays.RemoteFailureError{Operation: closedDays.OperationSingle, Message: "이미 휴무일입니다", Err: errors.New("raise")},
			wantCode: http.StatusBadGateway,
			wantMsg:  "이미 휴무일입니다",
		},
		{
			name:     "unsupported mode",
			err:      closedDays.ErrUnsupportedMode,
			wantCode: http.StatusInternalServerError,
			wantMsg:  msgInternalError,
		},
		{
			name:     "unknown",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  msgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondClosedDayError(rec, mockLogger{}, "TEST", tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantMsg != "" {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantMsg, resp.Error)
			}
		})
	}
}

func TestRespondClosedDayError_NotConfirmed(t *testing.T) {
	prompt := closedDays.Prompt{Kind: closedDays.PromptRemoveRange, RemovalCount: 3, Message: "삭제합니다"}

	rec := httptest.NewRecorder()
	RespondClosedDayError(rec, mockLogger{}, "TEST", &closedDays.NotConfirmedError{Prompt: prompt})

	require.Equal(t, http.StatusConflict, rec.Code)
	var resp ConfirmationRequiredResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "remove_range", resp.Prompt.Kind)
	assert.Equal(t, 3, resp.Prompt.RemovalCount)
	assert.Equal(t, "삭제합니다", resp.Prompt.Message)
}
