package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/vfg2006/hk-dashboard-api/internal/usecases/annotating"
	"github.com/vfg2006/hk-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/hk-dashboard-api/pkg/log"
)

type AnnotationRequest struct {
	Text *string `json:"text"`
}

type ReportDateRequest struct {
	Date *string `json:"date"`
}

func GetAnnotations(service annotating.Annotator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodParam(r)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		annotations, err := service.Get(r.Context(), period)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar anotações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar anotações", nil)
			return
		}

		writeJSON(w, http.StatusOK, annotations)
	}
}

// decodeText exige o campo text, mas aceita texto vazio
func decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req AnnotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return "", false
	}
	if req.Text == nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo text é obrigatório", nil)
		return "", false
	}
	return *req.Text, true
}

func writeAnnotationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, annotating.ErrMissingItemID), errors.Is(err, annotating.ErrUnknownKind):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(errors.Wrap(err, "handler: gravação de anotação")).Error("Erro ao gravar anotação")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar anotação", nil)
	}
}

func SetInsight(service annotating.Annotator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodParam(r)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		text, ok := decodeText(w, r)
		if !ok {
			return
		}

		item := httprouter.ParamsFromContext(r.Context()).ByName("item")
		if err := service.SetInsight(r.Context(), period, item, text); err != nil {
			writeAnnotationError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func SetAnnotationText(service annotating.Annotator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodParam(r)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		kind, err := annotating.ParseKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))
		if err != nil {
			writeAnnotationError(w, r, err)
			return
		}

		text, ok := decodeText(w, r)
		if !ok {
			return
		}

		if err := service.SetText(r.Context(), period, kind, text); err != nil {
			writeAnnotationError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func SetReportDate(service annotating.Annotator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReportDateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if req.Date == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo date é obrigatório", nil)
			return
		}

		if err := service.SetReportDate(r.Context(), *req.Date); err != nil {
			writeAnnotationError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
