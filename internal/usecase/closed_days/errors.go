package closed_days

import (
	"errors"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrValidation входные данные не прошли проверку
	ErrValidation = domain.ErrValidation

	// ErrLimitExceeded диапазон длиннее допустимого
	ErrLimitExceeded = domain.ErrLimitExceeded

	// ErrUnsupportedMode неизвестный режим (ошибка программы, а не ввода)
	ErrUnsupportedMode = domain.ErrUnsupportedMode

	// ErrNotConfirmed оператор не подтвердил операцию
	ErrNotConfirmed = errors.New("closed_days: operation not confirmed")

	// ErrCommitInProgress фиксация по этому запросу уже выполняется
	ErrCommitInProgress = errors.New("closed_days: commit already in progress")

	// ErrRemoteFailure серверная процедура вернула ошибку
	ErrRemoteFailure = errors.New("closed_days: remote procedure failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("closed_days: internal error")
)

// NotConfirmedError отказ оператора вместе с показанным ему вопросом
type NotConfirmedError struct {
	Prompt Prompt
}

func (e *NotConfirmedError) Error() string {
	return ErrNotConfirmed.Error()
}

func (e *NotConfirmedError) Unwrap() error {
	return ErrNotConfirmed
}

// RemoteFailureError ошибка хранилища при чтении или фиксации. Error() возвращает сообщение сервера без изменений.
type RemoteFailureError struct {
	Operation string
	Message   string
	Err       error
}

func (e *RemoteFailureError) Error() string {
	return e.Message
}

func (e *RemoteFailureError) Unwrap() []error {
	return []error{ErrRemoteFailure, e.Err}
}
