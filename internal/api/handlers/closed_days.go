package handlers

import (
	"errors"
	"net/http"
	"strings"

	apptModels "github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
	closedDays "github.com/m04kA/SMC-SalonService/internal/usecase/closed_days"
)

const (
	msgCommitInProgress = "이미 처리 중인 요청입니다. 잠시 후 다시 시도해 주세요"
	msgNotConfirmed     = "확인이 필요합니다"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// PromptResponse вопрос, который оператор должен подтвердить
type PromptResponse struct {
	Kind           string `json:"kind"`
	TargetDays     int    `json:"targetDays,omitempty"`
	ConfirmedCount int    `json:"confirmedCount"`
	RemovalCount   int    `json:"removalCount,omitempty"`
	Message        string `json:"message"`
}

// ConfirmationRequiredResponse ответ 409, если операция не подтверждена
type ConfirmationRequiredResponse struct {
	Error  string         `json:"error"`
	Prompt PromptResponse `json:"prompt"`
}

// FromPrompt конвертирует вопрос оркестратора
func FromPrompt(p closedDays.Prompt) PromptResponse {
	return PromptResponse{
		Kind:           string(p.Kind),
		TargetDays:     p.TargetDays,
		ConfirmedCount: p.ConfirmedCount,
		RemovalCount:   p.RemovalCount,
		Message:        p.Message,
	}
}

// ClosedDayResultResponse итог фиксации выходных дней
type ClosedDayResultResponse struct {
	Operation      string                          `json:"operation"`
	TargetDates    []string                        `json:"targetDates"`
	AppliedDays    int                             `json:"appliedDays"`
	CancelledCount int                             `json:"cancelledCount"`
	RemovedDays    int                             `json:"removedDays"`
	ServerReported bool                            `json:"serverReported"`
	ClosedDates    []apptModels.ClosedDateResponse `json:"closedDates"`
	ImpactCount    int                             `json:"impactCount"`
	Refreshed      bool                            `json:"refreshed"`
	States         []string                        `json:"states"`
}

// FromResult конвертирует итог оркестратора
func FromResult(r *closedDays.Result) *ClosedDayResultResponse {
	if r == nil {
		return nil
	}
	return &ClosedDayResultResponse{
		Operation:      r.Operation,
		TargetDates:    apptModels.DateStrings(r.TargetDates),
		AppliedDays:    r.AppliedDays,
		CancelledCount: r.CancelledCount,
		RemovedDays:    r.RemovedDays,
		ServerReported: r.ServerReported,
		ClosedDates:    apptModels.FromDomainClosedDates(r.ClosedDates).ClosedDates,
		ImpactCount:    r.ImpactCount,
		Refreshed:      r.Refreshed,
		States:         StateStrings(r.States),
	}
}

// StateStrings конвертирует пройденные состояния
func StateStrings(states []closedDays.State) []string {
	out := make([]string, 0, len(states))
	for _, s := range states {
		out = append(out, string(s))
	}
	return out
}

// RespondClosedDayError переводит ошибки оркестратора выходных дней в HTTP ответ.
// Сообщения проверки и серверных процедур передаются без изменений.
func RespondClosedDayError(w http.ResponseWriter, logger Logger, route string, err error) {
	var (
		notConfirmed *closedDays.NotConfirmedError
		remote       *closedDays.RemoteFailureError
	)

	switch {
	case errors.As(err, &notConfirmed):
		logger.Info("%s - Confirmation required: %s", route, notConfirmed.Prompt.Message)
		RespondJSON(w, http.StatusConflict, ConfirmationRequiredResponse{
			Error:  msgNotConfirmed,
			Prompt: FromPrompt(notConfirmed.Prompt),
		})

	case errors.Is(err, closedDays.ErrCommitInProgress):
		logger.Warn("%s - Commit in progress", route)
		RespondConflict(w, msgCommitInProgress)

	case errors.As(err, &remote):
		logger.Error("%s - Remote procedure failed: %v", route, err)
		RespondError(w, http.StatusBadGateway, remote.Message)

	case errors.Is(err, closedDays.ErrUnsupportedMode):
		logger.Error("%s - Unsupported mode: %v", route, err)
		RespondInternalError(w)

	case errors.Is(err, closedDays.ErrValidation), errors.Is(err, closedDays.ErrLimitExceeded):
		logger.Warn("%s - Rejected: %v", route, err)
		RespondBadRequest(w, strings.TrimPrefix(err.Error(), closedDays.ErrValidation.Error()+": "))

	default:
		logger.Error("%s - Failed: %v", route, err)
		RespondInternalError(w)
	}
}
