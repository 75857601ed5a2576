package stats

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном месяце
	ErrInvalidInput = errors.New("invalid input data")

	// ErrExport возвращается при ошибке формирования xlsx
	ErrExport = errors.New("stats: export failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
