package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
	"github.com/vfg2006/hk-dashboard-api/pkg/apiErrors"
)

// EditorOnly restringe a rota ao editor autenticado pelo AuthMiddleware
func EditorOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := EditorFromContext(r)
			if !ok {
				logrus.Warning("Tentativa de edição sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			logrus.WithField("editor", claims.EditorEmail).Debug("middleware: edição autorizada")
			next.ServeHTTP(w, r)
		})
	}
}

func EditorFromContext(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}
