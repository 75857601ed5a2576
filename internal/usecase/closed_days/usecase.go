package closed_days

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/inflight"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/closedday"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
)

// UseCase оркестратор закрытия и удаления выходных дней
type UseCase struct {
	appointmentRepo AppointmentRepository
	closedDateRepo  ClosedDateRepository
	procedures      Procedures
	guard           InflightGuard
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	closedDateRepo ClosedDateRepository,
	procedures Procedures,
	guard InflightGuard,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		closedDateRepo:  closedDateRepo,
		procedures:      procedures,
		guard:           guard,
		metrics:         metrics,
		logger:          logger,
	}
}

// run журнал шагов одного запуска
type run struct {
	operation string
	states    []State
}

func newRun(operation string) *run {
	return &run{operation: operation, states: []State{StateIdle}}
}

func (r *run) to(s State) {
	r.states = append(r.states, s)
}

func (r *run) snapshot() []State {
	out := make([]State, len(r.states))
	copy(out, r.states)
	return out
}

// Preview вычисляет целевые даты и число подтвержденных записей в них. Ничего не меняет.
func (uc *UseCase) Preview(ctx context.Context, req *PreviewRequest) (*PreviewResponse, error) {
	r := newRun("preview")

	dates, err := domain.ResolveTargetDates(req.Mode, domain.DateRange{Start: req.Start, End: req.End}, req.Weekday)
	if err != nil {
		uc.logger.Warn("ClosedDays.Preview: resolve targets failed: %v", err)
		return nil, err
	}
	r.to(StateTargetsComputed)

	impact, err := uc.impact(ctx, r.operation, dates)
	if err != nil {
		uc.logger.Error("ClosedDays.Preview: impact failed: %v", err)
		return nil, err
	}
	r.to(StateImpactKnown)

	return &PreviewResponse{
		Mode:        req.Mode,
		TargetDates: dates,
		ImpactCount: impact,
		States:      r.snapshot(),
	}, nil
}

// ReviewConflicts возвращает все записи на дату и предварительно выбранные для отмены
func (uc *UseCase) ReviewConflicts(ctx context.Context, date datekey.DateKey) (*ConflictReview, error) {
	r := newRun("review")

	if err := validateDate(date); err != nil {
		return nil, err
	}
	r.to(StateTargetsComputed)

	appointments, err := uc.appointmentRepo.ListByDate(ctx, date)
	if err != nil {
		uc.logger.Error("ClosedDays.ReviewConflicts: failed to list appointments on %s: %v", date, err)
		return nil, readFailure(r.operation, err)
	}
	r.to(StateImpactKnown)

	return &ConflictReview{
		Date:           date,
		Appointments:   appointments,
		CancellableIDs: domain.ExtractCancellableIDs(appointments),
		States:         r.snapshot(),
	}, nil
}

// ApplySingle закрывает один день и отменяет выбранные оператором подтвержденные записи.
// Если на дату есть подтвержденные записи, выбор не может быть пустым.
func (uc *UseCase) ApplySingle(ctx context.Context, req *ApplySingleRequest) (*Result, error) {
	r := newRun(OperationSingle)
	uc.logger.Info("ClosedDays.ApplySingle: date=%s, cancel=%v", req.Date, req.CancelIDs)

	if err := validateDate(req.Date); err != nil {
		return nil, uc.reject(r, err)
	}
	note, err := normalizeNote(req.Note)
	if err != nil {
		return nil, uc.reject(r, err)
	}
	cancelIDs, err := normalizeCancelIDs(req.CancelIDs)
	if err != nil {
		return nil, uc.reject(r, err)
	}
	targets := []datekey.DateKey{req.Date}
	r.to(StateTargetsComputed)

	conflicts, err := uc.appointmentRepo.ListByDate(ctx, req.Date)
	if err != nil {
		return nil, uc.fail(r, readFailure(r.operation, err))
	}
	confirmed := domain.ExtractCancellableIDs(conflicts)
	r.to(StateImpactKnown)

	if len(confirmed) > 0 && len(cancelIDs) == 0 {
		return nil, uc.reject(r, fmt.Errorf("%w: select at least one confirmed appointment to cancel", ErrValidation))
	}
	r.to(StateConflictsReviewed)

	key := commitKey(req.RequestKey, OperationSingle, req.Date.String())
	res, err := uc.commit(ctx, r, key, func(ctx context.Context) (*closedday.Result, error) {
		return uc.procedures.ApplySingle(ctx, req.Date, cancelIDs, note)
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		Operation:      OperationSingle,
		TargetDates:    targets,
		AppliedDays:    countOr(res.AppliedDays, 1),
		CancelledCount: countOr(res.CancelledCount, len(cancelIDs)),
		ServerReported: res.AppliedDays != nil && res.CancelledCount != nil,
	}
	return uc.finish(ctx, r, result, targets), nil
}

// ApplyBatch закрывает все дни режима range или weekly. Все подтвержденные записи
// в этих днях отменяются, поэтому перед фиксацией нужно явное подтверждение.
func (uc *UseCase) ApplyBatch(ctx context.Context, req *ApplyBatchRequest, confirmer Confirmer) (*Result, error) {
	r := newRun(OperationBatch)
	uc.logger.Info("ClosedDays.ApplyBatch: mode=%s, start=%s, end=%s, weekday=%s",
		req.Mode, req.Start, req.End, weekdayPart(req.Weekday))

	if req.Mode == domain.ModeSingle {
		return nil, uc.reject(r, fmt.Errorf("%w: batch closure needs range or weekly mode", ErrValidation))
	}

	targets, err := domain.ResolveTargetDates(req.Mode, domain.DateRange{Start: req.Start, End: req.End}, req.Weekday)
	if err != nil {
		if errors.Is(err, ErrUnsupportedMode) {
			return nil, uc.fail(r, err)
		}
		return nil, uc.reject(r, err)
	}
	if len(targets) == 0 {
		return nil, uc.reject(r, fmt.Errorf("%w: no dates match the given criteria", ErrValidation))
	}
	note, err := normalizeNote(req.Note)
	if err != nil {
		return nil, uc.reject(r, err)
	}
	r.to(StateTargetsComputed)

	impact, err := uc.impact(ctx, r.operation, targets)
	if err != nil {
		return nil, uc.fail(r, err)
	}
	r.to(StateImpactKnown)

	prompt := batchPrompt(len(targets), impact)
	if err := uc.confirm(ctx, r, confirmer, prompt); err != nil {
		return nil, err
	}
	r.to(StateConflictsReviewed)

	params := closedday.BatchParams{
		Mode:      string(req.Mode),
		StartDate: req.Start,
		EndDate:   req.End,
		Note:      note,
	}
	if req.Mode == domain.ModeWeekly {
		params.Weekday = req.Weekday
	}

	key := commitKey(req.RequestKey, OperationBatch, string(req.Mode), req.Start.String(), req.End.String(), weekdayPart(req.Weekday))
	res, err := uc.commit(ctx, r, key, func(ctx context.Context) (*closedday.Result, error) {
		return uc.procedures.ApplyBatch(ctx, params)
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		Operation:      OperationBatch,
		TargetDates:    targets,
		AppliedDays:    countOr(res.AppliedDays, len(targets)),
		CancelledCount: countOr(res.CancelledCount, impact),
		ServerReported: res.AppliedDays != nil && res.CancelledCount != nil,
	}
	return uc.finish(ctx, r, result, targets), nil
}

// RemoveRange удаляет выходные дни в диапазоне после подтверждения.
// Отмененные ранее записи не восстанавливаются.
func (uc *UseCase) RemoveRange(ctx context.Context, req *RemoveRangeRequest, confirmer Confirmer) (*Result, error) {
	r := newRun(OperationRemove)
	uc.logger.Info("ClosedDays.RemoveRange: start=%s, end=%s", req.Start, req.End)

	rng := domain.DateRange{Start: req.Start, End: req.End}
	if _, err := domain.ValidateDateRange(rng); err != nil {
		return nil, uc.reject(r, err)
	}
	r.to(StateTargetsComputed)

	count, err := uc.closedDateRepo.CountInRange(ctx, req.Start, req.End)
	if err != nil {
		return nil, uc.fail(r, readFailure(r.operation, err))
	}
	r.to(StateImpactKnown)

	if err := uc.confirm(ctx, r, confirmer, removePrompt(req.Start, req.End, count)); err != nil {
		return nil, err
	}
	r.to(StateConflictsReviewed)

	key := commitKey(req.RequestKey, OperationRemove, req.Start.String(), req.End.String())
	res, err := uc.commit(ctx, r, key, func(ctx context.Context) (*closedday.Result, error) {
		return uc.procedures.RemoveRange(ctx, req.Start, req.End)
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		Operation:      OperationRemove,
		RemovedDays:    countOr(res.RemovedDays, count),
		ServerReported: res.RemovedDays != nil,
	}
	return uc.finish(ctx, r, result, nil), nil
}

// impact число подтвержденных записей в датах, одним запросом
func (uc *UseCase) impact(ctx context.Context, operation string, dates []datekey.DateKey) (int, error) {
	if len(dates) == 0 {
		return 0, nil
	}
	count, err := uc.appointmentRepo.CountConfirmedInDates(ctx, dates)
	if err != nil {
		return 0, readFailure(operation, err)
	}
	return count, nil
}

// readFailure ошибка чтения из хранилища; оператору показывается сообщение сервера
func readFailure(operation string, err error) error {
	return &RemoteFailureError{
		Operation: operation,
		Message:   closedday.DriverMessage(err),
		Err:       err,
	}
}

func (uc *UseCase) confirm(ctx context.Context, r *run, confirmer Confirmer, prompt Prompt) error {
	if confirmer == nil {
		return uc.fail(r, fmt.Errorf("%w: no confirmer for %s", ErrInternal, r.operation))
	}
	ok, err := confirmer.Confirm(ctx, prompt)
	if err != nil {
		return uc.fail(r, fmt.Errorf("%w: confirmation: %v", ErrInternal, err))
	}
	if !ok {
		uc.logger.Info("ClosedDays.%s: declined by operator", r.operation)
		uc.record(r.operation, metrics.OutcomeDeclined)
		return &NotConfirmedError{Prompt: prompt}
	}
	return nil
}

// commit выполняет мутирующий вызов под in-flight флагом. Флаг снимается на любом пути.
func (uc *UseCase) commit(
	ctx context.Context,
	r *run,
	key string,
	call func(ctx context.Context) (*closedday.Result, error),
) (*closedday.Result, error) {
	release, err := uc.guard.Acquire(ctx, key)
	if err != nil {
		if errors.Is(err, inflight.ErrCommitInProgress) {
			uc.logger.Warn("ClosedDays.%s: commit %s already in progress", r.operation, key)
			uc.record(r.operation, metrics.OutcomeRejected)
			return nil, ErrCommitInProgress
		}
		return nil, uc.fail(r, fmt.Errorf("%w: acquire in-flight flag: %v", ErrInternal, err))
	}
	defer release()

	r.to(StateCommitting)

	res, err := call(ctx)
	if err != nil {
		return nil, uc.fail(r, &RemoteFailureError{
			Operation: r.operation,
			Message:   err.Error(),
			Err:       err,
		})
	}
	if res == nil {
		res = &closedday.Result{}
	}

	r.to(StateCommitted)
	return res, nil
}

// finish обновляет список выходных и влияние, записывает метрики
func (uc *UseCase) finish(ctx context.Context, r *run, result *Result, dates []datekey.DateKey) *Result {
	closedDates, impact, err := uc.refresh(ctx, dates)
	if err != nil {
		// Фиксация уже прошла, ошибку обновления только логируем
		uc.logger.Warn("ClosedDays.%s: refresh after commit failed: %v", r.operation, err)
	} else {
		result.ClosedDates = closedDates
		result.ImpactCount = impact
		result.Refreshed = true
	}
	result.States = r.snapshot()

	uc.record(r.operation, metrics.OutcomeApplied)
	if uc.metrics != nil {
		uc.metrics.AddCancelledAppointments(result.CancelledCount)
	}

	uc.logger.Info("ClosedDays.%s: committed applied=%d cancelled=%d removed=%d",
		r.operation, result.AppliedDays, result.CancelledCount, result.RemovedDays)
	return result
}

// refresh читает список выходных и влияние параллельно
func (uc *UseCase) refresh(ctx context.Context, dates []datekey.DateKey) ([]*domain.ClosedDateRecord, int, error) {
	var (
		closedDates []*domain.ClosedDateRecord
		impact      int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := uc.closedDateRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("list closed dates: %w", err)
		}
		closedDates = list
		return nil
	})
	g.Go(func() error {
		count, err := uc.impact(gctx, "refresh", dates)
		if err != nil {
			return err
		}
		impact = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return closedDates, impact, nil
}

func (uc *UseCase) reject(r *run, err error) error {
	uc.logger.Warn("ClosedDays.%s: rejected after %v: %v", r.operation, r.states, err)
	uc.record(r.operation, metrics.OutcomeRejected)
	return err
}

func (uc *UseCase) fail(r *run, err error) error {
	r.to(StateFailed)
	uc.logger.Error("ClosedDays.%s: failed after %v: %v", r.operation, r.states, err)
	uc.record(r.operation, metrics.OutcomeFailed)
	return err
}

func (uc *UseCase) record(operation, outcome string) {
	if uc.metrics != nil {
		uc.metrics.RecordClosedDayOperation(operation, outcome)
	}
}
