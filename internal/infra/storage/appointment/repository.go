package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

var selectColumns = []string{
	"a.id",
	"a.customer_id",
	"a.date",
	"a.time",
	"a.service",
	"a.duration",
	"a.memo",
	"a.status",
	"a.created_at",
	"c.name",
}

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns("customer_id", "date", "time", "service", "duration", "memo", "status").
		Values(appt.CustomerID, appt.Date, appt.Time, appt.Service, appt.Duration, appt.Memo, appt.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// ListByDate возвращает все записи на дату (любой статус) с именем клиента, по времени
func (r *Repository) ListByDate(ctx context.Context, date datekey.DateKey) ([]*domain.Appointment, error) {
	builder := r.selectBuilder().
		Where(squirrel.Eq{"a.date": date}).
		OrderBy("a.time ASC", "a.id ASC")

	return r.list(ctx, "ListByDate", builder)
}

// ListByCustomer возвращает историю клиента, новые сверху
func (r *Repository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Appointment, error) {
	builder := r.selectBuilder().
		Where(squirrel.Eq{"a.customer_id": customerID}).
		OrderBy("a.date DESC", "a.time DESC")

	return r.list(ctx, "ListByCustomer", builder)
}

// ListInRange возвращает записи в диапазоне дат [start, end], новые сверху
func (r *Repository) ListInRange(ctx context.Context, start, end datekey.DateKey) ([]*domain.Appointment, error) {
	builder := r.selectBuilder().
		Where(squirrel.GtOrEq{"a.date": start}).
		Where(squirrel.LtOrEq{"a.date": end}).
		OrderBy("a.date DESC", "a.time DESC")

	return r.list(ctx, "ListInRange", builder)
}

// ListDatesInRange возвращает даты, на которые есть записи, по возрастанию (метки календаря)
func (r *Repository) ListDatesInRange(ctx context.Context, start, end datekey.DateKey) ([]datekey.DateKey, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT date").
		From("appointments").
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDatesInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDatesInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]datekey.DateKey, 0)
	for rows.Next() {
		var d datekey.DateKey
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%w: ListDatesInRange - scan row: %v", ErrScanRow, err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDatesInRange - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// CountConfirmedInDates считает подтвержденные записи на любую из дат одним запросом
func (r *Repository) CountConfirmedInDates(ctx context.Context, dates []datekey.DateKey) (int, error) {
	if len(dates) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.Eq{"date": dates}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountConfirmedInDates - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountConfirmedInDates - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) selectBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(selectColumns...).
		From("appointments a").
		LeftJoin("customers c ON c.id = a.customer_id")
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var (
			appt      domain.Appointment
			createdAt sql.NullTime
		)

		err := rows.Scan(
			&appt.ID,
			&appt.CustomerID,
			&appt.Date,
			&appt.Time,
			&appt.Service,
			&appt.Duration,
			&appt.Memo,
			&appt.Status,
			&createdAt,
			&appt.CustomerName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
