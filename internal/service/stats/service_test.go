package stats

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	start, end   datekey.DateKey
	err          error
}

func (m *mockAppointmentRepo) ListInRange(_ context.Context, start, end datekey.DateKey) ([]*domain.Appointment, error) {
	m.start, m.end = start, end
	return m.appointments, m.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type mockLogger struct{}

func (mockLogger) Info(string, ...interface{})  {}
func (mockLogger) Error(string, ...interface{}) {}

func newService(appts []*domain.Appointment) (*Service, *mockAppointmentRepo) {
	repo := &mockAppointmentRepo{appointments: appts}
	svc := NewService(repo, mockLogger{})
	// 2025-03-09 16:00 UTC = 2025-03-10 01:00 KST
	svc.timeProvider = fixedTime{now: time.Date(2025, 3, 9, 16, 0, 0, 0, time.UTC)}
	return svc, repo
}

func sample() []*domain.Appointment {
	return []*domain.Appointment{
		{ID: 1, CustomerID: 1, CustomerName: ptr.Ptr("김민지"), Date: "2025-03-10", Service: "커트", Duration: "1시간", Status: domain.StatusConfirmed},
		{ID: 2, CustomerID: 2, CustomerName: ptr.Ptr("이서준"), Date: "2025-03-05", Service: "펌", Duration: "2시간", Status: domain.StatusCompleted},
		{ID: 3, CustomerID: 1, CustomerName: ptr.Ptr("김민지"), Date: "2025-03-02", Service: "", Duration: "1시간", Status: domain.StatusCancelled, Memo: ptr.Ptr("노쇼")},
	}
}

func TestMonthly(t *testing.T) {
	svc, repo := newService(sample())

	res, err := svc.Monthly(context.Background(), 2025, 3)

	require.NoError(t, err)
	assert.Equal(t, datekey.DateKey("2025-03-01"), repo.start)
	assert.Equal(t, datekey.DateKey("2025-03-31"), repo.end)
	assert.Equal(t, 1, res.TodayCount)
	assert.Equal(t, 2, res.MonthlyCustomers)
	assert.Equal(t, 3, res.TotalAppointments)
	assert.Equal(t, 33, res.CompletionRate)
	assert.Equal(t, 33, res.CancellationRate)
	require.Len(t, res.RecentVisits, 1)
	assert.Equal(t, "이서준", res.RecentVisits[0].CustomerName)
	assert.Len(t, res.ServiceRanking, 3)
}

func TestMonthly_Errors(t *testing.T) {
	svc, repo := newService(nil)

	_, err := svc.Monthly(context.Background(), 2025, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.err = errors.New("down")
	_, err = svc.Monthly(context.Background(), 2025, 3)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExportMonthly(t *testing.T) {
	svc, _ := newService(sample())

	var buf bytes.Buffer
	require.NoError(t, svc.ExportMonthly(context.Background(), 2025, 3, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetServices, SheetAppointments}, f.GetSheetList())

	total, err := f.GetCellValue(SheetSummary, "B5")
	require.NoError(t, err)
	assert.Equal(t, "3", total)

	rows, err := f.GetRows(SheetAppointments)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "날짜", rows[0][0])
	assert.Equal(t, "2025-03-10", rows[1][0])
	assert.Equal(t, "취소", rows[3][5])
	assert.Equal(t, "노쇼", rows[3][6])

	services, err := f.GetRows(SheetServices)
	require.NoError(t, err)
	assert.Len(t, services, 4)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "salon-stats-2025-03.xlsx", FileName(2025, 3))
}
