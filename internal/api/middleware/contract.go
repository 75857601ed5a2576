package middleware

import "context"

// ProfileRepository чтение роли сотрудника
type ProfileRepository interface {
	GetRole(ctx context.Context, userID string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
