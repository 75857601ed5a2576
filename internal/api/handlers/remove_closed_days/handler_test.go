package remove_closed_days

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	closedDays "github.com/m04kA/SMC-SalonService/internal/usecase/closed_days"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

type mockLogger struct{}

func (mockLogger) Info(string, ...interface{})  {}
func (mockLogger) Warn(string, ...interface{})  {}
func (mockLogger) Error(string, ...interface{}) {}

type mockUseCase struct {
	gotReq       *closedDays.RemoveRangeRequest
	gotConfirmed bool
	err          error
}

func (m *mockUseCase) RemoveRange(ctx context.Context, req *closedDays.RemoveRangeRequest, confirmer closedDays.Confirmer) (*closedDays.Result, error) {
	m.gotReq = req
	if m.err != nil {
		return nil, m.err
	}
	prompt := closedDays.Prompt{Kind: closedDays.PromptRemoveRange, RemovalCount: 2}
	ok, err := confirmer.Confirm(ctx, prompt)
	if err != nil {
		return nil, err
	}
	m.gotConfirmed = ok
	if !ok {
		return nil, &closedDays.NotConfirmedError{Prompt: prompt}
	}
	return &closedDays.Result{Operation: closedDays.OperationRemove, RemovedDays: 2}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		wantCode      int
		wantConfirmed bool
	}{
		{name: "confirmed", target: "/api/v1/closed-days?start=2025-03-01&end=2025-03-31&confirmed=true", wantCode: http.StatusOK, wantConfirmed: true},
		{name: "not confirmed", target: "/api/v1/closed-days?start=2025-03-01&end=2025-03-31", wantCode: http.StatusConflict},
		{name: "bad flag", target: "/api/v1/closed-days?start=2025-03-01&end=2025-03-31&confirmed=maybe", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			h := NewHandler(uc, mockLogger{})

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			req.Header.Set("Idempotency-Key", "remove-march")
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusBadRequest {
				assert.Nil(t, uc.gotReq)
				return
			}
			require.NotNil(t, uc.gotReq)
			assert.Equal(t, datekey.DateKey("2025-03-01"), uc.gotReq.Start)
			assert.Equal(t, datekey.DateKey("2025-03-31"), uc.gotReq.End)
			assert.Equal(t, "remove-march", uc.gotReq.RequestKey)
			assert.Equal(t, tt.wantConfirmed, uc.gotConfirmed)
		})
	}
}

func TestHandle_CountFailureShownVerbatim(t *testing.T) {
	storeErr := errors.New("permission denied for table salon_closed_dates")
	uc := &mockUseCase{err: &closedDays.RemoteFailureError{
		Operation: closedDays.OperationRemove,
		Message:   storeErr.Error(),
		Err:       storeErr,
	}}
	h := NewHandler(uc, mockLogger{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/closed-days?start=2025-03-01&end=2025-03-31&confirmed=true", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "permission denied for table salon_closed_dates", resp.Error)
}
