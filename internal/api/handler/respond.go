package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/hk-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/hk-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON codifica antes de escrever o status, para que uma falha de
// codificação vire 500 em vez de um 200 com corpo incompleto
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func periodParam(r *http.Request) (domain.PeriodKey, error) {
	return domain.ParsePeriod(httprouter.ParamsFromContext(r.Context()).ByName("period"))
}

// writePeriodError responde a um período mal formado
func writePeriodError(w http.ResponseWriter, err error) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
}

// writeView responde 503 quando nem o painel acumulado nem o fallback carregaram
func writeView(w http.ResponseWriter, view *dashboard.View, body any) {
	if !view.Available() {
		apiErrors.WriteError(w, apiErrors.ErrDataUnavailable, "Dados indisponíveis para o período "+view.Period.String(), map[string]any{
			"period": view.Period,
			"alerts": view.Alerts,
		})
		return
	}
	writeJSON(w, http.StatusOK, body)
}

// writeLoadError traduz os erros da carga de um período
func writeLoadError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, dashboard.ErrSuperseded):
		apiErrors.WriteError(w, apiErrors.ErrSuperseded, "Carga substituída por outra seleção de período", nil)
	case errors.Is(err, dashboard.ErrNoActivePeriod):
		apiErrors.WriteError(w, apiErrors.ErrNoActivePeriod, "Nenhum período selecionado", nil)
	case errors.Is(err, domain.ErrInvalidPeriod):
		writePeriodError(w, err)
	default:
		log.ForContext(r.Context()).WithError(errors.Wrap(err, "handler: carga do dashboard")).Error("Erro ao carregar dashboard")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao carregar dados do dashboard", nil)
	}
}
