package handler

import (
	"net/http"

	"github.com/vfg2006/hk-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/hk-dashboard-api/internal/export"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/annotating"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/hk-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Periods(session dashboard.Selector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/periods/active",
			Method:  http.MethodGet,
			Handler: GetActivePeriod(session),
		},
		{
			Path:    "/v1/periods/active",
			Method:  http.MethodPut,
			Handler: SelectActivePeriod(session),
		},
	}
}

func Dashboard(service dashboard.Dashboarder, exporter *export.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/:period",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/:period/stores",
			Method:  http.MethodGet,
			Handler: GetStores(service),
		},
		{
			Path:    "/v1/dashboard/:period/inventory",
			Method:  http.MethodGet,
			Handler: GetInventory(service),
		},
		{
			Path:    "/v1/dashboard/:period/export",
			Method:  http.MethodGet,
			Handler: ExportDashboard(service, exporter),
		},
	}
}

func Annotations(service annotating.Annotator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/annotations/:period",
			Method:  http.MethodGet,
			Handler: GetAnnotations(service),
		},
		{
			Path:        "/v1/annotations/:period/insights/:item",
			Method:      http.MethodPut,
			Handler:     SetInsight(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOnly()},
		},
		{
			Path:        "/v1/annotations/:period/texts/:kind",
			Method:      http.MethodPut,
			Handler:     SetAnnotationText(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOnly()},
		},
		{
			Path:        "/v1/report-date",
			Method:      http.MethodPut,
			Handler:     SetReportDate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOnly()},
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
