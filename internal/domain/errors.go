package domain

import "errors"

var (
	// ErrValidation входные данные не прошли проверку (не выбрана дата, пустой набор дат и т.п.)
	ErrValidation = errors.New("validation error")

	// ErrLimitExceeded диапазон дат длиннее допустимого
	ErrLimitExceeded = errors.New("date range limit exceeded")

	// ErrUnsupportedMode неизвестный режим закрытия дней
	ErrUnsupportedMode = errors.New("unsupported closed day mode")

	// ErrNoAvailableDate в окне поиска нет ни одного открытого дня
	ErrNoAvailableDate = errors.New("no available date in search window")

	// ErrInvalidPhone номер телефона не соответствует корейскому формату
	ErrInvalidPhone = errors.New("invalid phone number")
)
