package acquiring

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/hk-dashboard-api/infrastructure/integrator/reports"
	"github.com/vfg2006/hk-dashboard-api/internal/domain"
	"github.com/vfg2006/hk-dashboard-api/pkg/log"
)

// Loader carrega os seis recursos de um período e monta um Bundle novo
type Loader interface {
	Load(ctx context.Context, period domain.PeriodKey) (*domain.Bundle, error)
}

type Service struct {
	reports reports.ReportsIntegrator
	now     func() time.Time
}

func NewService(reportsService reports.ReportsIntegrator) *Service {
	return &Service{
		reports: reportsService,
		now:     time.Now,
	}
}

// resourceResult guarda o retorno de cada busca até todas terminarem
type resourceResult struct {
	source string
	err    error
}

// Load busca todos os recursos em paralelo e só monta o Bundle depois que todos terminam.
// Um recurso que falha fica nil; apenas o cancelamento do contexto devolve erro.
func (s *Service) Load(ctx context.Context, period domain.PeriodKey) (*domain.Bundle, error) {
	logger := log.ForContext(ctx).WithField("period", period.String())

	var (
		cumulative  *domain.CumulativeDashboard
		monthly     *domain.MonthlyDashboard
		pl          *domain.PLData
		storePL     map[string]domain.StorePLEntry
		storeStatus *domain.StoreStatusReport
		insights    domain.CEOInsights

		results = map[domain.Resource]*resourceResult{}
	)

	for _, r := range domain.Resources {
		results[r] = &resourceResult{}
	}

	// Usar WaitGroup para esperar as goroutines terminarem
	wg := sync.WaitGroup{}
	wg.Add(len(domain.Resources))

	go func() {
		defer wg.Done()
		res := results[domain.ResourceCumulative]
		cumulative, res.source, res.err = s.reports.GetCumulativeDashboard(ctx, period)
	}()

	go func() {
		defer wg.Done()
		res := results[domain.ResourceMonthly]
		monthly, res.source, res.err = s.reports.GetMonthlyDashboard(ctx, period)
	}()

	go func() {
		defer wg.Done()
		res := results[domain.ResourcePL]
		pl, res.source, res.err = s.reports.GetPL(ctx, period)
	}()

	go func() {
		defer wg.Done()
		res := results[domain.ResourceStorePL]
		storePL, res.source, res.err = s.reports.GetStorePL(ctx, period)
	}()

	go func() {
		defer wg.Done()
		res := results[domain.ResourceStoreStatus]
		storeStatus, res.source, res.err = s.reports.GetStoreStatus(ctx, period)
	}()

	go func() {
		defer wg.Done()
		res := results[domain.ResourceCEOInsights]
		insights, res.source, res.err = s.reports.GetCEOInsights(ctx, period)
	}()

	wg.Wait()

	// Um período abandonado não gera Bundle
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bundle := &domain.Bundle{
		Period:      period,
		LoadedAt:    s.now(),
		Cumulative:  cumulative,
		Monthly:     monthly,
		PL:          pl,
		StorePL:     storePL,
		StoreStatus: storeStatus,
		CEOInsights: insights,
		Sources:     map[domain.Resource]string{},
		Alerts:      []domain.Alert{},
	}

	for resource, res := range results {
		if res.err != nil {
			if resource != domain.ResourceCumulative {
				logger.WithError(res.err).Warnf("acquiring: recurso %s indisponível, seção desativada", resource)
			}
			continue
		}
		bundle.Sources[resource] = res.source
	}

	if cumulativeErr := results[domain.ResourceCumulative].err; cumulativeErr != nil {
		logger.WithError(cumulativeErr).Error("acquiring: falha ao carregar o painel acumulado")

		bundle.Alerts = append(bundle.Alerts, domain.Alert{
			Resource: domain.ResourceCumulative,
			Message:  fmt.Sprintf("Não foi possível carregar o painel acumulado de %s. Tentando os arquivos padrão.", period),
			Detail:   cumulativeErr.Error(),
		})

		s.loadLastResort(ctx, bundle)

		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	logger.WithField("status", bundle.Status()).Infof("acquiring: período carregado (%d de %d recursos)", len(bundle.Sources), len(domain.Resources))

	return bundle, nil
}

// loadLastResort tenta os arquivos mais antigos, sem período, do painel e do P&L
func (s *Service) loadLastResort(ctx context.Context, bundle *domain.Bundle) {
	logger := log.ForContext(ctx).WithField("period", bundle.Period.String())

	dashboard, source, err := s.reports.GetLastResortDashboard(ctx)
	if err != nil {
		logger.WithError(err).Error("acquiring: arquivo padrão do painel também indisponível")
		bundle.Alerts = append(bundle.Alerts, domain.Alert{
			Resource: domain.ResourceCumulative,
			Message:  "Dados indisponíveis. Recarregue a página mais tarde.",
			Detail:   err.Error(),
		})
	} else {
		bundle.Cumulative = dashboard
		bundle.Sources[domain.ResourceCumulative] = source
	}

	if bundle.PL != nil {
		return
	}

	pl, source, err := s.reports.GetLastResortPL(ctx)
	if err != nil {
		logger.WithError(err).Warn("acquiring: arquivo padrão do P&L também indisponível")
		return
	}

	bundle.PL = pl
	bundle.Sources[domain.ResourcePL] = source
}
