package get_closed_day_conflicts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	closedDays "github.com/m04kA/SMC-SalonService/internal/usecase/closed_days"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type mockLogger struct{}

func (mockLogger) Info(string, ...interface{})  {}
func (mockLogger) Warn(string, ...interface{})  {}
func (mockLogger) Error(string, ...interface{}) {}

type mockUseCase struct {
	review *closedDays.ConflictReview
	err    error
	got    datekey.DateKey
}

func (m *mockUseCase) ReviewConflicts(_ context.Context, date datekey.DateKey) (*closedDays.ConflictReview, error) {
	m.got = date
	return m.review, m.err
}

func newRouter(uc ConflictsUseCase) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/closed-days/{date}/conflicts", NewHandler(uc, mockLogger{}).Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_ReturnsAppointmentsAndPreselection(t *testing.T) {
	at := func(s string) types.TimeString {
		ts, err := types.NewTimeStringFromString(s)
		require.NoError(t, err)
		return ts
	}
	date := datekey.MustParse("2025-03-10")
	name := "김민지"
	uc := &mockUseCase{review: &closedDays.ConflictReview{
		Date: date,
		Appointments: []*domain.Appointment{
			{ID: 1, CustomerID: 7, CustomerName: &name, Date: date, Time: at("10:00"), Service: "커트", Status: domain.StatusConfirmed},
			{ID: 2, CustomerID: 8, Date: date, Time: at("11:00"), Service: "펌", Status: domain.StatusCompleted},
		},
		CancellableIDs: []int64{1},
		States:         []closedDays.State{closedDays.StateIdle, closedDays.StateConflictsReviewed},
	}}

	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/closed-days/2025-03-10/conflicts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, date, uc.got)

	var resp ConflictsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Len(t, resp.Appointments, 2)
	assert.Equal(t, []int64{1}, resp.CancellableIDs)
	assert.Equal(t, "10:00", resp.Appointments[0].Time)
}

func TestHandle_InvalidDate(t *testing.T) {
	uc := &mockUseCase{err: closedDays.ErrValidation}

	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/closed-days/2025-13-40/conflicts", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
