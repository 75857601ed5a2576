package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	profileRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/profile"
)

// DefaultUserHeader заголовок, в котором шлюз передает ID пользователя
const DefaultUserHeader = "X-User-ID"

const (
	msgMissingUserID = "로그인이 필요합니다"
	msgForbidden     = "권한이 없습니다"
)

// Auth достает ID пользователя из заголовка и роль из profiles.
// Нет профиля или ошибка чтения: роль staff.
func Auth(profiles ProfileRepository, header string, logger Logger) mux.MiddlewareFunc {
	if header == "" {
		header = DefaultUserHeader
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(header))
			if userID == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, header)
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			role := domain.RoleStaff
			stored, err := profiles.GetRole(r.Context(), userID)
			switch {
			case err == nil:
				role = domain.ParseRole(stored)
			case errors.Is(err, profileRepo.ErrProfileNotFound):
				logger.Info("Auth: no profile for user=%s, using role %s", userID, role)
			default:
				logger.Warn("Auth: failed to load role for user=%s, using role %s: %v", userID, role, err)
			}

			ctx := WithSession(r.Context(), domain.Session{UserID: userID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает только сессии с одной из ролей
func RequireRole(roles ...domain.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := GetSession(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}
			if !session.Can(roles...) {
				handlers.RespondForbidden(w, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
