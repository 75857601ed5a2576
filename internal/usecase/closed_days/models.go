package closed_days

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

// State шаг процесса закрытия дней
type State string

const (
	StateIdle              State = "idle"
	StateTargetsComputed   State = "targets_computed"
	StateImpactKnown       State = "impact_known"
	StateConflictsReviewed State = "conflicts_reviewed"
	StateCommitting        State = "committing"
	StateCommitted         State = "committed"
	StateFailed            State = "failed"
)

// Названия операций для метрик и логов
const (
	OperationSingle = "single"
	OperationBatch  = "batch"
	OperationRemove = "remove"
)

// PromptKind вид вопроса оператору
type PromptKind string

const (
	PromptBatchApply  PromptKind = "batch_apply"
	PromptRemoveRange PromptKind = "remove_range"
)

// Prompt вопрос, который оператор должен явно подтвердить
type Prompt struct {
	Kind           PromptKind
	TargetDays     int // число дней, которые будут закрыты
	ConfirmedCount int // подтвержденные записи, которые будут отменены
	RemovalCount   int // выходные дни, которые будут удалены
	Message        string
}

// PreviewRequest запрос на расчет целевых дат и влияния
type PreviewRequest struct {
	Mode    domain.ClosedDayMode
	Start   datekey.DateKey
	End     datekey.DateKey
	Weekday *int
}

// PreviewResponse целевые даты и число подтвержденных записей в них
type PreviewResponse struct {
	Mode        domain.ClosedDayMode
	TargetDates []datekey.DateKey
	ImpactCount int
	States      []State
}

// ConflictReview записи на дату и предварительный выбор для отмены
type ConflictReview struct {
	Date           datekey.DateKey
	Appointments   []*domain.Appointment
	CancellableIDs []int64
	States         []State
}

// ApplySingleRequest закрытие одного дня
type ApplySingleRequest struct {
	Date       datekey.DateKey
	CancelIDs  []int64
	Note       *string
	RequestKey string // пусто: ключ строится из параметров запроса
}

// ApplyBatchRequest закрытие диапазона или дня недели в диапазоне
type ApplyBatchRequest struct {
	Mode       domain.ClosedDayMode
	Start      datekey.DateKey
	End        datekey.DateKey
	Weekday    *int
	Note       *string
	RequestKey string
}

// RemoveRangeRequest удаление выходных дней в диапазоне
type RemoveRangeRequest struct {
	Start      datekey.DateKey
	End        datekey.DateKey
	RequestKey string
}

// Result итог фиксации
type Result struct {
	Operation      string
	TargetDates    []datekey.DateKey
	AppliedDays    int
	CancelledCount int
	RemovedDays    int
	// ServerReported false, если сервер не вернул счетчики и показаны оценки
	ServerReported bool

	// Обновленное состояние после фиксации
	ClosedDates []*domain.ClosedDateRecord
	ImpactCount int
	Refreshed   bool

	States []State
}
