package handler

import (
	"net/http"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/hk-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/hk-dashboard-api/pkg/log"
)

type SelectPeriodRequest struct {
	Period string `json:"period"`
}

// GetActivePeriod devolve o período selecionado e a última visão carregada dele
func GetActivePeriod(session dashboard.Selector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := session.State()
		if state.Period.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrNoActivePeriod, "Nenhum período selecionado", nil)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

// SelectActivePeriod troca o período ativo. Uma seleção posterior faz esta responder 409.
func SelectActivePeriod(session dashboard.Selector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectPeriodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		period, err := domain.ParsePeriod(req.Period)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		log.ForContext(r.Context()).WithField("period", period.String()).Info("handler: seleção de período")

		view, err := session.Select(r.Context(), period)
		if err != nil {
			writeLoadError(w, r, err)
			return
		}

		writeView(w, view, view)
	}
}
