package closedday

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/pkg/datekey"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Имена серверных процедур
const (
	ProcApplySingle = "apply_closed_day_with_cancellations"
	ProcApplyBatch  = "apply_closed_days_batch_with_cancellations"
	ProcRemoveRange = "remove_closed_day_range"
)

// Result ответ процедуры. Поля nil, если сервер их не вернул.
type Result struct {
	AppliedDays    *int `json:"applied_days"`
	CancelledCount *int `json:"cancelled_count"`
	RemovedDays    *int `json:"removed_days"`
}

// BatchParams параметры пакетного закрытия дней
type BatchParams struct {
	Mode      string
	StartDate datekey.DateKey
	EndDate   datekey.DateKey
	Weekday   *int
	Note      *string
}

// Procedures вызывает атомарные процедуры закрытия и удаления выходных дней
type Procedures struct {
	db DBExecutor
}

// NewProcedures создает клиент процедур
func NewProcedures(db DBExecutor) *Procedures {
	return &Procedures{db: db}
}

// ApplySingle закрывает один день и отменяет выбранные подтвержденные записи.
// Если хотя бы одну запись отменить нельзя, процедура не меняет ничего.
func (p *Procedures) ApplySingle(ctx context.Context, date datekey.DateKey, cancelIDs []int64, note *string) (*Result, error) {
	if cancelIDs == nil {
		cancelIDs = []int64{}
	}
	return p.call(ctx, ProcApplySingle, squirrel.Expr(
		ProcApplySingle+"(p_closed_date => ?::date, p_cancel_ids => ?::bigint[], p_note => ?::text)",
		date, pq.Array(cancelIDs), note,
	))
}

// ApplyBatch закрывает все дни режима range/weekly и отменяет все подтвержденные записи в них
func (p *Procedures) ApplyBatch(ctx context.Context, params BatchParams) (*Result, error) {
	var end interface{}
	if !params.EndDate.IsZero() {
		end = params.EndDate
	}
	return p.call(ctx, ProcApplyBatch, squirrel.Expr(
		ProcApplyBatch+"(p_mode => ?::text, p_start_date => ?::date, p_end_date => ?::date, p_weekday => ?::int, p_note => ?::text)",
		params.Mode, params.StartDate, end, params.Weekday, params.Note,
	))
}

// RemoveRange удаляет выходные дни в диапазоне. Отмененные записи не восстанавливаются.
func (p *Procedures) RemoveRange(ctx context.Context, start, end datekey.DateKey) (*Result, error) {
	return p.call(ctx, ProcRemoveRange, squirrel.Expr(
		ProcRemoveRange+"(p_start_date => ?::date, p_end_date => ?::date)",
		start, end,
	))
}

func (p *Procedures) call(ctx context.Context, procedure string, expr squirrel.Sqlizer) (*Result, error) {
	executor := dbmetrics.GetExecutor(ctx, p.db)

	query, args, err := psqlbuilder.Select().Column(expr).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBuildQuery, procedure, err)
	}

	var raw []byte
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		return nil, newProcedureError(procedure, err)
	}

	return decodeResult(procedure, raw)
}

func decodeResult(procedure string, raw []byte) (*Result, error) {
	res := &Result{}
	if len(raw) == 0 {
		return res, nil
	}
	if err := json.Unmarshal(raw, res); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeResult, procedure, err)
	}
	return res, nil
}
