package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/vfg2006/hk-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/hk-dashboard-api/pkg/log"
)

// slowRequest é o limite a partir do qual a requisição é marcada como lenta
const slowRequest = 2 * time.Second

// LoggingMiddleware registra início e fim de cada requisição com o ID de correlação
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			fields := log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
			}
			if r.URL.RawQuery != "" {
				fields["query"] = r.URL.RawQuery
			}

			log.L.WithFields(fields).Debug("→ Requisição recebida")

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			logger := log.L.WithFields(fields).WithFields(log.Fields{
				"status_code": rec.status,
				"bytes":       rec.written,
				"duration_ms": elapsed.Milliseconds(),
			})

			msg := fmt.Sprintf("%d em %s", rec.status, formatDuration(elapsed))
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("✗ " + msg)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("✗ " + msg)
			case elapsed > slowRequest:
				logger.Warn("⚠ Requisição lenta: " + msg)
			default:
				logger.Info("✓ " + msg)
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// statusRecorder guarda o status e o tamanho da resposta para o log
type statusRecorder struct {
	http.ResponseWriter
	status      int
	written     int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.wroteHeader = true
	n, err := s.ResponseWriter.Write(b)
	s.written += n
	return n, err
}

// LogPanicMiddleware transforma um panic em 500 com o envelope padrão de erro
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				log.ForContext(r.Context()).WithFields(log.Fields{
					"panic_error": rvr,
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": string(stack),
				}).Error("❌ PANIC na aplicação")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
