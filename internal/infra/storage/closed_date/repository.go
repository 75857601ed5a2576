package closed_date

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

const table = "salon_closed_dates"

// Repository репозиторий выходных дней салона (только чтение; изменения идут через процедуры)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория выходных дней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все выходные дни, новые сверху
func (r *Repository) List(ctx context.Context) ([]*domain.ClosedDateRecord, error) {
	query, args, err := psqlbuilder.Select("id", "closed_date", "note", "created_at").
		From(table).
		OrderBy("closed_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "List", query, args)
}

// ListInRange возвращает выходные дни в диапазоне [start, end] по возрастанию даты
func (r *Repository) ListInRange(ctx context.Context, start, end datekey.DateKey) ([]*domain.ClosedDateRecord, error) {
	query, args, err := psqlbuilder.Select("id", "closed_date", "note", "created_at").
		From(table).
		Where(squirrel.GtOrEq{"closed_date": start}).
		Where(squirrel.LtOrEq{"closed_date": end}).
		OrderBy("closed_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "ListInRange", query, args)
}

// CountInRange считает выходные дни в диапазоне [start, end]
func (r *Repository) CountInRange(ctx context.Context, start, end datekey.DateKey) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.GtOrEq{"closed_date": start}).
		Where(squirrel.LtOrEq{"closed_date": end}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountInRange - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountInRange - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// IsClosed проверяет, закрыт ли день.
// Внутри транзакции блокирует найденную строку (FOR SHARE), чтобы день не сняли до конца транзакции.
func (r *Repository) IsClosed(ctx context.Context, date datekey.DateKey) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id").
		From(table).
		Where(squirrel.Eq{"closed_date": date})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR SHARE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsClosed - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsClosed - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]*domain.ClosedDateRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	records := make([]*domain.ClosedDateRecord, 0)
	for rows.Next() {
		var (
			rec       domain.ClosedDateRecord
			createdAt sql.NullTime
		)
		if err := rows.Scan(&rec.ID, &rec.ClosedDate, &rec.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		rec.CreatedAt = createdAt.Time
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return records, nil
}
