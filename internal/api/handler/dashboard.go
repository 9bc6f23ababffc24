package handler

import (
	"net/http"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
	"github.com/vfg2006/hk-dashboard-api/internal/export"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/classifying"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/hk-dashboard-api/internal/viewstate"
	"github.com/vfg2006/hk-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/hk-dashboard-api/pkg/log"
)

type StoresResponse struct {
	State      viewstate.State               `json:"state"`
	Stores     []classifying.StoreRow        `json:"stores"`
	Categories []classifying.CategorySummary `json:"categories"`
	Excluded   []domain.ExcludedStore        `json:"excluded_stores"`
	Summary    classifying.StatusTotals      `json:"summary"`
	MCSummary  classifying.StatusTotals      `json:"mc_summary"`
}

// loadView resolve o período da rota, o estado de tela da query e a visão memorizada
func loadView(w http.ResponseWriter, r *http.Request, service dashboard.Dashboarder) (*dashboard.View, viewstate.State, bool) {
	period, err := periodParam(r)
	if err != nil {
		writePeriodError(w, err)
		return nil, viewstate.State{}, false
	}

	state, err := viewstate.FromQuery(r.URL.Query())
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return nil, viewstate.State{}, false
	}

	view, err := service.Get(r.Context(), period)
	if err != nil {
		writeLoadError(w, r, err)
		return nil, viewstate.State{}, false
	}

	return view, state, true
}

// GetDashboard devolve a visão completa. Séries selecionadas filtram os gráficos mensais.
func GetDashboard(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, state, ok := loadView(w, r, service)
		if !ok {
			return
		}

		writeView(w, view, withSeries(view, state))
	}
}

// withSeries copia a visão memorizada antes de filtrar, ela é compartilhada entre requisições
func withSeries(view *dashboard.View, state viewstate.State) *dashboard.View {
	if len(state.Series) == 0 || view.Derived == nil {
		return view
	}

	derived := *view.Derived
	derived.Monthly.Channels = state.FilterSeries(derived.Monthly.Channels)
	derived.Monthly.Items = state.FilterSeries(derived.Monthly.Items)
	derived.Monthly.Inventory = state.FilterSeries(derived.Monthly.Inventory)

	filtered := *view
	filtered.Derived = &derived
	return &filtered
}

func GetStores(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, state, ok := loadView(w, r, service)
		if !ok {
			return
		}

		if !view.Available() {
			writeView(w, view, nil)
			return
		}

		writeJSON(w, http.StatusOK, StoresResponse{
			State:      state,
			Stores:     state.FilterStores(view.Classified.Stores),
			Categories: view.Classified.Categories,
			Excluded:   view.Classified.Excluded,
			Summary:    view.Classified.Summary,
			MCSummary:  view.Classified.MCSummary,
		})
	}
}

func GetInventory(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, _, ok := loadView(w, r, service)
		if !ok {
			return
		}

		if !view.Available() {
			writeView(w, view, nil)
			return
		}

		writeJSON(w, http.StatusOK, view.Classified.Inventory)
	}
}

func ExportDashboard(service dashboard.Dashboarder, exporter *export.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, state, ok := loadView(w, r, service)
		if !ok {
			return
		}

		if !view.Available() {
			writeView(w, view, nil)
			return
		}

		f, err := exporter.Export(view, state)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar planilha")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			return
		}
		defer f.Close()

		w.Header().Set("Content-Type", export.ContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(view)+`"`)
		w.WriteHeader(http.StatusOK)
		if err := f.Write(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar planilha")
		}
	}
}
