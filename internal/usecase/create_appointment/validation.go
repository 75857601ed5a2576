package create_appointment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

// normalizeRequest валидирует запрос и подставляет значения по умолчанию
func normalizeRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := datekey.Parse(req.Date.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	req.Service = strings.TrimSpace(req.Service)
	if utf8.RuneCountInString(req.Service) > domain.MaxServiceLength {
		return fmt.Errorf("%w: service must be at most %d characters", ErrInvalidInput, domain.MaxServiceLength)
	}

	req.Duration = strings.TrimSpace(req.Duration)
	if req.Duration == "" {
		req.Duration = domain.DefaultDuration
	}

	if req.Memo != nil {
		memo := strings.TrimSpace(*req.Memo)
		if memo == "" {
			req.Memo = nil
		} else if utf8.RuneCountInString(memo) > domain.MaxMemoLength {
			return fmt.Errorf("%w: memo must be at most %d characters", ErrInvalidInput, domain.MaxMemoLength)
		} else {
			req.Memo = &memo
		}
	}

	if req.Status == "" {
		req.Status = domain.StatusConfirmed
	}
	// Новая запись либо подтверждена, либо вносится в историю как выполненная
	if req.Status != domain.StatusConfirmed && req.Status != domain.StatusCompleted {
		return fmt.Errorf("%w: status must be confirmed or completed", ErrInvalidInput)
	}

	return nil
}
