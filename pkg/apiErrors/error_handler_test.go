package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{code: ErrDataUnavailable, status: http.StatusServiceUnavailable},
		{code: ErrSuperseded, status: http.StatusConflict},
		{code: ErrInvalidPeriod, status: http.StatusBadRequest},
		{code: ErrInvalidToken, status: http.StatusUnauthorized},
		{code: ErrMethodNotAllowed, status: http.StatusMethodNotAllowed},
		{code: "DESCONHECIDO", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"period": "2511"})

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}
