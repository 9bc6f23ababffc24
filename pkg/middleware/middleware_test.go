package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/authenticating"
)

type fakeAuthenticator struct {
	claims *domain.Claims
	err    error
}

func (f fakeAuthenticator) Login(string, string) (string, error) {
	return "", nil
}

func (f fakeAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func editorChain(auth authenticating.Authenticator) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return AuthMiddleware(auth)(EditorOnly()(ok))
}

func TestEditorOnly(t *testing.T) {
	valid := fakeAuthenticator{claims: &domain.Claims{EditorEmail: "ceo@example.com"}}

	tests := []struct {
		name   string
		auth   authenticating.Authenticator
		header string
		status int
	}{
		{name: "token válido", auth: valid, header: "Bearer abc", status: http.StatusNoContent},
		{name: "sem token", auth: valid, header: "", status: http.StatusUnauthorized},
		{name: "sem prefixo Bearer", auth: valid, header: "abc", status: http.StatusUnauthorized},
		{name: "token inválido", auth: fakeAuthenticator{err: authenticating.ErrInvalidToken}, header: "Bearer abc", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/v1/annotations/report-date", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			editorChain(tt.auth).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestAuthMiddleware_AnonymousRead(t *testing.T) {
	called := false
	h := AuthMiddleware(fakeAuthenticator{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := EditorFromContext(r)
		assert.False(t, ok)
		called = true
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/dashboard/2511", nil))
	assert.True(t, called)
}

func TestCors(t *testing.T) {
	h := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "/v1/dashboard/2511", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/dashboard/2511", nil)
	req.Header.Set("Origin", "https://outro.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogPanicMiddleware(t *testing.T) {
	boom := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("estouro")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(boom).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/2511", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestLoggingMiddleware_RecordsStatusAndSize(t *testing.T) {
	var seen *statusRecorder
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = w.(*statusRecorder)
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("chá"))
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusTeapot, seen.status)
	assert.Equal(t, len("chá"), seen.written)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500 µs", formatDuration(500*time.Microsecond))
	assert.Equal(t, "12 ms", formatDuration(12*time.Millisecond))
	assert.Equal(t, "1.50 s", formatDuration(1500*time.Millisecond))
}
