package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	profileRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/profile"
)

type mockProfiles struct {
	roles map[string]string
	err   error
}

func (m *mockProfiles) GetRole(_ context.Context, userID string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	role, ok := m.roles[userID]
	if !ok {
		return "", profileRepo.ErrProfileNotFound
	}
	return role, nil
}

type mockLogger struct{}

func (mockLogger) Info(string, ...interface{})  {}
func (mockLogger) Warn(string, ...interface{})  {}
func (mockLogger) Error(string, ...interface{}) {}

func sessionEcho(t *testing.T, got *domain.Session) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := GetSession(r.Context())
		require.True(t, ok)
		*got = s
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuth(t *testing.T) {
	profiles := &mockProfiles{roles: map[string]string{"owner-1": "owner", "odd": "admin"}}

	tests := []struct {
		name     string
		userID   string
		profiles *mockProfiles
		wantCode int
		wantRole domain.Role
	}{
		{name: "owner", userID: "owner-1", profiles: profiles, wantCode: http.StatusNoContent, wantRole: domain.RoleOwner},
		{name: "unknown stored role", userID: "odd", profiles: profiles, wantCode: http.StatusNoContent, wantRole: domain.RoleStaff},
		{name: "no profile", userID: "new", profiles: profiles, wantCode: http.StatusNoContent, wantRole: domain.RoleStaff},
		{name: "lookup failure", userID: "owner-1", profiles: &mockProfiles{err: errors.New("db down")}, wantCode: http.StatusNoContent, wantRole: domain.RoleStaff},
		{name: "missing header", userID: "", profiles: profiles, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.Session
			h := Auth(tt.profiles, "", mockLogger{})(sessionEcho(t, &got))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.userID != "" {
				req.Header.Set(DefaultUserHeader, tt.userID)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusNoContent {
				assert.Equal(t, tt.userID, got.UserID)
				assert.Equal(t, tt.wantRole, got.Role)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := RequireRole(domain.RoleOwner)(ok)

	serve := func(ctx context.Context) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, serve(context.Background()))
	assert.Equal(t, http.StatusForbidden, serve(WithSession(context.Background(), domain.Session{UserID: "u", Role: domain.RoleStaff})))
	assert.Equal(t, http.StatusOK, serve(WithSession(context.Background(), domain.Session{UserID: "u", Role: domain.RoleOwner})))
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", seen)
}

type recordedRequest struct {
	method, path string
	status       int
}

type mockHTTPMetrics struct {
	got []recordedRequest
}

func (m *mockHTTPMetrics) RecordHTTPRequest(method, path string, status int, _ time.Duration) {
	m.got = append(m.got, recordedRequest{method, path, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &mockHTTPMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/customers/{customerId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/customers/42", nil))

	require.Len(t, m.got, 1)
	assert.Equal(t, recordedRequest{http.MethodGet, "/customers/{customerId}", http.StatusNotFound}, m.got[0])
}
