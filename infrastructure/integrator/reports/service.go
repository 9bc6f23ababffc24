package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	reportsdomain "github.com/vfg2006/hk-dashboard-api/infrastructure/integrator/reports/domain"
	"github.com/vfg2006/hk-dashboard-api/infrastructure/integrator/reports/reportsclient"
	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

// ReportsIntegrator aplica a política de fallback de cada recurso.
// Todos os métodos devolvem também o nome do arquivo efetivamente usado.
type ReportsIntegrator interface {
	GetCumulativeDashboard(ctx context.Context, period domain.PeriodKey) (*domain.CumulativeDashboard, string, error)
	GetLastResortDashboard(ctx context.Context) (*domain.CumulativeDashboard, string, error)
	GetMonthlyDashboard(ctx context.Context, period domain.PeriodKey) (*domain.MonthlyDashboard, string, error)
	GetPL(ctx context.Context, period domain.PeriodKey) (*domain.PLData, string, error)
	GetLastResortPL(ctx context.Context) (*domain.PLData, string, error)
	GetStorePL(ctx context.Context, period domain.PeriodKey) (map[string]domain.StorePLEntry, string, error)
	GetStoreStatus(ctx context.Context, period domain.PeriodKey) (*domain.StoreStatusReport, string, error)
	GetCEOInsights(ctx context.Context, period domain.PeriodKey) (domain.CEOInsights, string, error)
}

type ReportsService struct {
	Client reportsclient.Client
}

func New(client reportsclient.Client) ReportsIntegrator {
	return &ReportsService{
		Client: client,
	}
}

// GetCumulativeDashboard não tem fallback: a falha vira alerta na etapa de carga
func (s *ReportsService) GetCumulativeDashboard(ctx context.Context, period domain.PeriodKey) (*domain.CumulativeDashboard, string, error) {
	file := reportsdomain.CumulativeDashboardFile(period)
	resp, err := s.Client.GetCumulativeDashboard(ctx, file)
	if err != nil {
		return nil, file, err
	}
	return resp, file, nil
}

func (s *ReportsService) GetLastResortDashboard(ctx context.Context) (*domain.CumulativeDashboard, string, error) {
	file := reportsdomain.LastResortDashboardFile
	resp, err := s.Client.GetCumulativeDashboard(ctx, file)
	if err != nil {
		return nil, file, err
	}
	return resp, file, nil
}

func (s *ReportsService) GetMonthlyDashboard(ctx context.Context, period domain.PeriodKey) (*domain.MonthlyDashboard, string, error) {
	file := reportsdomain.MonthlyDashboardFile(period)
	resp, err := s.Client.GetMonthlyDashboard(ctx, file)
	if err != nil {
		return nil, file, err
	}
	return resp, file, nil
}

// GetPL tenta o arquivo do período e depois o arquivo genérico, uma única vez
func (s *ReportsService) GetPL(ctx context.Context, period domain.PeriodKey) (*domain.PLData, string, error) {
	return withFallback(ctx, []string{reportsdomain.PLFile(period), reportsdomain.GenericPLFile}, s.Client.GetPL)
}

func (s *ReportsService) GetLastResortPL(ctx context.Context) (*domain.PLData, string, error) {
	file := reportsdomain.LastResortPLFile
	resp, err := s.Client.GetPL(ctx, file)
	if err != nil {
		return nil, file, err
	}
	return resp, file, nil
}

func (s *ReportsService) GetStoreStatus(ctx context.Context, period domain.PeriodKey) (*domain.StoreStatusReport, string, error) {
	return withFallback(ctx, []string{reportsdomain.StoreStatusFile(period), reportsdomain.GenericStoreStatusFile}, s.Client.GetStoreStatus)
}

func (s *ReportsService) GetCEOInsights(ctx context.Context, period domain.PeriodKey) (domain.CEOInsights, string, error) {
	file := reportsdomain.CEOInsightsFile(period)
	resp, err := s.Client.GetCEOInsights(ctx, file)
	if err != nil {
		return nil, file, err
	}
	return resp, file, nil
}

// GetStorePL junta o resultado mensal e o acumulado por código de loja.
// Basta um dos dois arquivos existir; a falha de ambos devolve o primeiro erro.
func (s *ReportsService) GetStorePL(ctx context.Context, period domain.PeriodKey) (map[string]domain.StorePLEntry, string, error) {
	monthlyFile := reportsdomain.StorePLFile(period)
	cumulativeFile := reportsdomain.StorePLCumulativeFile(period)
	source := monthlyFile + "+" + cumulativeFile

	monthly, monthlyErr := s.Client.GetStorePL(ctx, monthlyFile)
	if monthlyErr != nil {
		logrus.WithError(monthlyErr).Warn("reports: resultado mensal por loja indisponível")
	}

	cumulative, cumulativeErr := s.Client.GetStorePL(ctx, cumulativeFile)
	if cumulativeErr != nil {
		logrus.WithError(cumulativeErr).Warn("reports: resultado acumulado por loja indisponível")
	}

	if monthlyErr != nil && cumulativeErr != nil {
		return nil, source, monthlyErr
	}

	return MergeStorePL(monthly, cumulative), source, nil
}

// MergeStorePL cria uma entrada por código presente em qualquer um dos relatórios
func MergeStorePL(monthly, cumulative *domain.StorePLReport) map[string]domain.StorePLEntry {
	merged := map[string]domain.StorePLEntry{}

	if monthly != nil {
		for code, store := range monthly.Stores {
			entry := merged[code]
			entry.Monthly = &store
			merged[code] = entry
		}
	}

	if cumulative != nil {
		for code, store := range cumulative.Stores {
			entry := merged[code]
			entry.Cumulative = &store
			merged[code] = entry
		}
	}

	return merged
}

// withFallback tenta cada arquivo em ordem. Falha de rede é tratada como arquivo ausente.
func withFallback[T any](ctx context.Context, files []string, get func(context.Context, string) (T, error)) (T, string, error) {
	var zero T
	var errs []error

	for _, file := range files {
		resp, err := get(ctx, file)
		if err == nil {
			return resp, file, nil
		}

		if errors.Is(err, context.Canceled) {
			return zero, file, err
		}

		logrus.WithError(err).WithField("file", file).Warn("reports: arquivo indisponível, tentando o próximo")
		errs = append(errs, err)
	}

	return zero, "", fmt.Errorf("nenhum arquivo disponível: %w", errors.Join(errs...))
}
