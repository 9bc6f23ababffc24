package reportsdomain

import (
	"fmt"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

// Arquivos sem período, usados como fallback
const (
	LastResortDashboardFile = "hk-dashboard-data.json"
	GenericPLFile           = "hk-pl.json"
	LastResortPLFile        = "hk-pl-data.json"
	GenericStoreStatusFile  = "hk-store-status.json"
)

func CumulativeDashboardFile(p domain.PeriodKey) string {
	return fmt.Sprintf("hk-dashboard-cumulative-%s.json", p)
}

func MonthlyDashboardFile(p domain.PeriodKey) string {
	return fmt.Sprintf("hk-dashboard-monthly-%s.json", p)
}

func PLFile(p domain.PeriodKey) string {
	return fmt.Sprintf("hk-pl-%s.json", p)
}

func StorePLFile(p domain.PeriodKey) string {
	return fmt.Sprintf("hk-store-pl-%s.json", p)
}

func StorePLCumulativeFile(p domain.PeriodKey) string {
	return fmt.Sprintf("hk-store-pl-cumulative-%s.json", p)
}

func StoreStatusFile(p domain.PeriodKey) string {
	return fmt.Sprintf("hk-store-status-%s.json", p)
}

func CEOInsightsFile(p domain.PeriodKey) string {
	return fmt.Sprintf("hk-ceo-insights-%s.json", p)
}
