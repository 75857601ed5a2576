package create_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
)

type mockLogger struct{}

func (mockLogger) Info(string, ...interface{})  {}
func (mockLogger) Warn(string, ...interface{})  {}
func (mockLogger) Error(string, ...interface{}) {}

type mockUseCase struct {
	err    error
	gotReq *createAppointment.Request
}

func (m *mockUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	m.gotReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &createAppointment.Response{
		ID:           10,
		CustomerID:   req.CustomerID,
		CustomerName: "김민지",
		Date:         req.Date,
		Time:         req.Time,
		Service:      req.Service,
		Duration:     "1시간",
		Status:       domain.StatusConfirmed,
		CreatedAt:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}, nil
}

func serve(uc *mockUseCase, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(uc, mockLogger{}).Handle(rec, req)
	return rec
}

const validBody = `{"customerId":7,"date":"2025-03-10","time":"14:30","service":"커트"}`

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	rec := serve(uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "2025-03-10", uc.gotReq.Date.String())
	assert.Equal(t, "14:30", uc.gotReq.Time.String())

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "김민지", resp.CustomerName)
	assert.Equal(t, "14:30", resp.Time)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "missing customer", body: `{"date":"2025-03-10","time":"14:30","service":"커트"}`, wantCode: http.StatusBadRequest},
		{name: "bad time", body: `{"customerId":7,"date":"2025-03-10","time":"25:99","service":"커트"}`, wantCode: http.StatusBadRequest, wantMsg: msgInvalidDateTime},
		{name: "cancelled status rejected", body: `{"customerId":7,"date":"2025-03-10","time":"14:30","service":"커트","status":"cancelled"}`, wantCode: http.StatusBadRequest},
		{name: "customer not found", body: validBody, err: createAppointment.ErrCustomerNotFound, wantCode: http.StatusNotFound, wantMsg: msgCustomerNotFound},
		{
			name:     "closed date",
			body:     validBody,
			err:      fmt.Errorf("%w: 2025년 3월 10일", createAppointment.ErrDateClosed),
			wantCode: http.StatusConflict,
			wantMsg:  "2025년 3월 10일은(는) 휴무일입니다",
		},
		{name: "internal", body: validBody, err: createAppointment.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&mockUseCase{err: tt.err}, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantMsg != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantMsg, resp.Error)
			}
		})
	}
}
