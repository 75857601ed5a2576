package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type mockAppointments struct {
	created []*domain.Appointment
	err     error
}

func (m *mockAppointments) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	appt.ID = int64(len(m.created) + 1)
	appt.CreatedAt = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	m.created = append(m.created, appt)
	return appt, nil
}

type mockCustomers struct {
	customers map[int64]*domain.Customer
}

func (m *mockCustomers) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return c, nil
}

type mockClosedDates struct {
	closed  map[datekey.DateKey]bool
	err     error
	checked int
}

func (m *mockClosedDates) IsClosed(_ context.Context, date datekey.DateKey) (bool, error) {
	m.checked++
	return m.closed[date], m.err
}

type mockTx struct {
	calls int
}

func (m *mockTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockLogger struct{}

func (mockLogger) Info(string, ...interface{})  {}
func (mockLogger) Warn(string, ...interface{})  {}
func (mockLogger) Error(string, ...interface{}) {}

type fixture struct {
	appointments *mockAppointments
	closedDates  *mockClosedDates
	tx           *mockTx
	uc           *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		appointments: &mockAppointments{},
		closedDates:  &mockClosedDates{closed: map[datekey.DateKey]bool{}},
		tx:           &mockTx{},
	}
	customers := &mockCustomers{customers: map[int64]*domain.Customer{
		7: {ID: 7, Name: "김민지", Phone: "010-1234-5678"},
	}}
	f.uc = NewUseCase(f.appointments, customers, f.closedDates, f.tx, mockLogger{})
	return f
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestExecute_Defaults(t *testing.T) {
	f := newFixture()

	res, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 7,
		Date:       datekey.MustParse("2025-03-10"),
		Time:       mustTime(t, "14:30"),
		Service:    "  커트 ",
		Memo:       ptr.Ptr("   "),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, "김민지", res.CustomerName)
	assert.Equal(t, domain.StatusConfirmed, res.Status)
	assert.Equal(t, domain.DefaultDuration, res.Duration)
	assert.Equal(t, "커트", res.Service)
	assert.Nil(t, res.Memo)
	assert.Equal(t, "14:30", res.Time.String())
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, 1, f.closedDates.checked)
}

func TestExecute_ClosedDateRejected(t *testing.T) {
	f := newFixture()
	date := datekey.MustParse("2025-03-10")
	f.closedDates.closed[date] = true

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 7,
		Date:       date,
		Time:       mustTime(t, "10:00"),
	})

	require.ErrorIs(t, err, ErrDateClosed)
	assert.Contains(t, err.Error(), "2025년 3월 10일")
	assert.Empty(t, f.appointments.created)
}

func TestExecute_HistoryEntrySkipsClosedCheck(t *testing.T) {
	f := newFixture()
	date := datekey.MustParse("2025-01-05")
	f.closedDates.closed[date] = true

	res, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 7,
		Date:       date,
		Time:       mustTime(t, "10:00:00"),
		Status:     domain.StatusCompleted,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, res.Status)
	assert.Zero(t, f.closedDates.checked)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture()
	valid := func() *Request {
		return &Request{CustomerID: 7, Date: datekey.MustParse("2025-03-10"), Time: mustTime(t, "10:00")}
	}

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "no customer", mutate: func(r *Request) { r.CustomerID = 0 }},
		{name: "no date", mutate: func(r *Request) { r.Date = "" }},
		{name: "bad date", mutate: func(r *Request) { r.Date = "2025-02-30" }},
		{name: "no time", mutate: func(r *Request) { r.Time = types.TimeString{} }},
		{name: "cancelled status", mutate: func(r *Request) { r.Status = domain.StatusCancelled }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Zero(t, f.tx.calls)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 99,
		Date:       datekey.MustParse("2025-03-10"),
		Time:       mustTime(t, "10:00"),
	})

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_StorageError(t *testing.T) {
	f := newFixture()
	f.closedDates.err = errors.New("deadlock detected")

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: 7,
		Date:       datekey.MustParse("2025-03-10"),
		Time:       mustTime(t, "10:00"),
	})

	assert.ErrorIs(t, err, ErrInternal)
}
