package annotating

import (
	"fmt"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

// Kind identifica os textos livres guardados por período
type Kind string

const (
	KindStoreAnalysis Kind = "store-analysis"
	KindYOYSummary    Kind = "yoy-summary"
)

// ReportDateKey não depende do período: a data do relatório é única
const ReportDateKey = "reportDate"

func InsightsKey(period domain.PeriodKey) string {
	return "ceo-insights-" + period.String()
}

func StoreAnalysisKey(period domain.PeriodKey) string {
	return "hk_store_ai_analysis_" + period.String()
}

func YOYSummaryKey(period domain.PeriodKey) string {
	return "hk_yoy_trend_summary_" + period.String()
}

// ParseKind aceita o nome da rota
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindStoreAnalysis, KindYOYSummary:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) key(period domain.PeriodKey) string {
	if k == KindYOYSummary {
		return YOYSummaryKey(period)
	}
	return StoreAnalysisKey(period)
}
