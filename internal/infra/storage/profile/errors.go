package profile

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль сотрудника не найден
	ErrProfileNotFound = errors.New("profile.repository: profile not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("profile.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("profile.repository: failed to scan row")
)
