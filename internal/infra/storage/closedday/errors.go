package closedday

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("closedday.procedures: failed to build query")

	// ErrDecodeResult возвращается, если результат процедуры не удалось разобрать
	ErrDecodeResult = errors.New("closedday.procedures: failed to decode result")
)

// ProcedureError ошибка, которую вернула серверная процедура (или транспорт до неё).
// Error() возвращает исходное сообщение без изменений: оно показывается оператору как есть.
type ProcedureError struct {
	Procedure string
	Code      string // SQLSTATE, пусто для транспортных ошибок
	Message   string
	Detail    string
	Err       error
}

func (e *ProcedureError) Error() string {
	return e.Message
}

func (e *ProcedureError) Unwrap() error {
	return e.Err
}

// DriverMessage возвращает сообщение сервера из ошибки драйвера.
// Если в цепочке нет *pq.Error, возвращается текст ошибки целиком.
func DriverMessage(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Message
	}
	return err.Error()
}

// newProcedureError строит ProcedureError из ошибки драйвера
func newProcedureError(procedure string, err error) *ProcedureError {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &ProcedureError{
			Procedure: procedure,
			Code:      string(pqErr.Code),
			Message:   pqErr.Message,
			Detail:    pqErr.Detail,
			Err:       err,
		}
	}
	return &ProcedureError{
		Procedure: procedure,
		Message:   err.Error(),
		Err:       err,
	}
}
