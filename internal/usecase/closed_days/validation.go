package closed_days

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

// validateDate проверяет, что дата выбрана и корректна
func validateDate(d datekey.DateKey) error {
	if d.IsZero() {
		return fmt.Errorf("%w: select a date", ErrValidation)
	}
	if _, err := datekey.Parse(d.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// normalizeNote обрезает пробелы; пустая заметка становится nil
func normalizeNote(note *string) (*string, error) {
	if note == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxNoteLength {
		return nil, fmt.Errorf("%w: note must be at most %d characters", ErrValidation, domain.MaxNoteLength)
	}
	return &trimmed, nil
}

// normalizeCancelIDs убирает повторы, сохраняя порядок выбора
func normalizeCancelIDs(ids []int64) ([]int64, error) {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("%w: appointment id must be positive, got %d", ErrValidation, id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

// commitKey ключ in-flight флага: явный ключ запроса или параметры операции
func commitKey(explicit, operation string, parts ...string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return "closed_days:" + explicit
	}
	return "closed_days:" + operation + ":" + strings.Join(parts, ":")
}

func weekdayPart(weekday *int) string {
	if weekday == nil {
		return "-"
	}
	return strconv.Itoa(*weekday)
}

func batchPrompt(targetDays, confirmed int) Prompt {
	return Prompt{
		Kind:           PromptBatchApply,
		TargetDays:     targetDays,
		ConfirmedCount: confirmed,
		Message: fmt.Sprintf(
			"%d일을 휴무일로 지정합니다. 확정된 예약 %d건이 모두 취소됩니다. 계속하시겠습니까?",
			targetDays, confirmed,
		),
	}
}

func removePrompt(start, end datekey.DateKey, count int) Prompt {
	return Prompt{
		Kind:         PromptRemoveRange,
		RemovalCount: count,
		Message: fmt.Sprintf(
			"%s ~ %s 기간의 휴무일 %d개를 삭제합니다. 이미 취소된 예약은 복구되지 않습니다. 계속하시겠습니까?",
			start.Human(), end.Human(), count,
		),
	}
}

// countOr возвращает значение сервера, а если его нет, оценку
func countOr(server *int, estimate int) int {
	if server == nil {
		return estimate
	}
	return *server
}
