package domain

import "time"

// Resource identifica cada um dos arquivos lógicos de um período
type Resource string

const (
	ResourceCumulative  Resource = "cumulative_dashboard"
	ResourceMonthly     Resource = "monthly_dashboard"
	ResourcePL          Resource = "pl"
	ResourceStorePL     Resource = "store_pl"
	ResourceStoreStatus Resource = "store_status"
	ResourceCEOInsights Resource = "ceo_insights"
)

// Resources na ordem em que são listados no diagnóstico
var Resources = []Resource{
	ResourceCumulative,
	ResourceMonthly,
	ResourcePL,
	ResourceStorePL,
	ResourceStoreStatus,
	ResourceCEOInsights,
}

// BundleStatus resume o que a tela pode exibir
type BundleStatus string

const (
	// BundleReady: todos os recursos carregados
	BundleReady BundleStatus = "ready"
	// BundleDegraded: o painel principal existe, mas alguma seção ficou indisponível
	BundleDegraded BundleStatus = "degraded"
	// BundleUnavailable: nem o painel acumulado nem o último recurso de fallback carregaram
	BundleUnavailable BundleStatus = "unavailable"
)

// Alert é a mensagem bloqueante mostrada ao usuário quando o recurso principal falha
type Alert struct {
	Resource Resource `json:"resource"`
	Message  string   `json:"message"`
	Detail   string   `json:"detail,omitempty"`
}

// Bundle é o resultado imutável de uma carga completa de um período
type Bundle struct {
	Period      PeriodKey
	LoadedAt    time.Time
	Cumulative  *CumulativeDashboard
	Monthly     *MonthlyDashboard
	PL          *PLData
	StorePL     map[string]StorePLEntry
	StoreStatus *StoreStatusReport
	CEOInsights CEOInsights
	// Sources guarda o arquivo efetivamente usado para cada recurso
	Sources map[Resource]string
	Alerts  []Alert
}

// Status é calculado a partir dos recursos presentes
func (b *Bundle) Status() BundleStatus {
	if b == nil || b.Cumulative == nil {
		return BundleUnavailable
	}

	if b.Monthly == nil || b.PL == nil || b.StorePL == nil || b.StoreStatus == nil || b.CEOInsights == nil {
		return BundleDegraded
	}

	return BundleReady
}

// Missing lista os recursos que ficaram indefinidos
func (b *Bundle) Missing() []Resource {
	if b == nil {
		return Resources
	}

	missing := make([]Resource, 0)
	for _, r := range Resources {
		if _, ok := b.Sources[r]; !ok {
			missing = append(missing, r)
		}
	}
	return missing
}
