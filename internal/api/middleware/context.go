package middleware

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type contextKey string

const (
	sessionKey   contextKey = "session"
	requestIDKey contextKey = "request_id"
)

// WithSession кладет сессию в контекст
func WithSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// GetSession возвращает сессию, выставленную Auth
func GetSession(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(sessionKey).(domain.Session)
	return s, ok
}

// GetUserID возвращает ID пользователя из сессии
func GetUserID(ctx context.Context) (string, bool) {
	s, ok := GetSession(ctx)
	if !ok || s.UserID == "" {
		return "", false
	}
	return s.UserID, true
}

// GetRequestID возвращает ID запроса, выставленный RequestID
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
