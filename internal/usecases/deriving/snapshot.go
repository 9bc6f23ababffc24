package deriving

import "github.com/vfg2006/hk-dashboard-api/internal/domain"

// Snapshot é o FinancialSnapshot já resolvido: ausência virou zero e as taxas estão preenchidas
type Snapshot struct {
	TagSales            float64 `json:"tag_sales"`
	NetSales            float64 `json:"net_sales"`
	DiscountRate        float64 `json:"discount_rate"`
	Cogs                float64 `json:"cogs"`
	CogsRate            float64 `json:"cogs_rate"`
	GrossProfit         float64 `json:"gross_profit"`
	GrossProfitRate     float64 `json:"gross_profit_rate"`
	DirectCost          float64 `json:"direct_cost"`
	DirectProfit        float64 `json:"direct_profit"`
	DirectProfitRate    float64 `json:"direct_profit_rate"`
	SgA                 float64 `json:"sg_a"`
	OperatingProfit     float64 `json:"operating_profit"`
	OperatingProfitRate float64 `json:"operating_profit_rate"`
}

// ResolveSnapshot aplica as regras de derivação sobre os números brutos do P&L.
// Taxas do arquivo são usadas quando presentes; caso contrário são recalculadas.
// Custo, lucro bruto, direto e operacional são derivados quando o arquivo não os traz.
func ResolveSnapshot(f domain.PLFigures) Snapshot {
	s := Snapshot{
		TagSales:   f.TagSales.OrZero(),
		NetSales:   f.NetSales.OrZero(),
		Cogs:       f.Cogs.OrZero(),
		DirectCost: f.DirectCost.OrZero(),
		SgA:        f.SgA.OrZero(),
	}

	// Custo e lucro bruto se completam: o ausente sai do outro
	if f.GrossProfit.Valid {
		s.GrossProfit = f.GrossProfit.Value
		if !f.Cogs.Valid {
			s.Cogs = s.NetSales - s.GrossProfit
		}
	} else if f.Cogs.Valid {
		s.GrossProfit = s.NetSales - s.Cogs
	}

	s.DirectProfit = f.DirectProfit.Or(s.GrossProfit - s.DirectCost)
	s.OperatingProfit = f.OperatingProfit.Or(s.DirectProfit - s.SgA)

	s.DiscountRate = f.DiscountRate.Or(domain.DiscountRate(s.TagSales, s.NetSales))
	s.CogsRate = f.CogsRate.Or(domain.ProfitRate(s.Cogs, s.NetSales))
	s.GrossProfitRate = f.GrossProfitRate.Or(domain.ProfitRate(s.GrossProfit, s.NetSales))
	s.DirectProfitRate = f.DirectProfitRate.Or(domain.ProfitRate(s.DirectProfit, s.NetSales))
	s.OperatingProfitRate = f.OperatingProfitRate.Or(domain.ProfitRate(s.OperatingProfit, s.NetSales))

	return s
}

// Métricas que recebem comparação anual nos cards do P&L
const (
	MetricTagSales        = "tag_sales"
	MetricNetSales        = "net_sales"
	MetricGrossProfit     = "gross_profit"
	MetricDirectProfit    = "direct_profit"
	MetricSgA             = "sg_a"
	MetricOperatingProfit = "operating_profit"
)

var snapshotMetrics = []string{
	MetricTagSales,
	MetricNetSales,
	MetricGrossProfit,
	MetricDirectProfit,
	MetricSgA,
	MetricOperatingProfit,
}

func (s Snapshot) metric(name string) float64 {
	switch name {
	case MetricTagSales:
		return s.TagSales
	case MetricNetSales:
		return s.NetSales
	case MetricGrossProfit:
		return s.GrossProfit
	case MetricDirectProfit:
		return s.DirectProfit
	case MetricSgA:
		return s.SgA
	case MetricOperatingProfit:
		return s.OperatingProfit
	}
	return 0
}

// compareSnapshots calcula o YOY de cada métrica. O percentual do arquivo só é
// aproveitado para a entidade total, que é onde o pipeline o publica.
func compareSnapshots(current, previous Snapshot, hasPrevious bool, sourceYoy map[string]domain.Amount) map[string]domain.YOY {
	yoy := make(map[string]domain.YOY, len(snapshotMetrics))
	for _, m := range snapshotMetrics {
		prev := domain.None
		if hasPrevious {
			prev = domain.Some(previous.metric(m))
		}
		yoy[m] = domain.YOYFromSource(sourceYoy[m], domain.Some(current.metric(m)), prev)
	}
	return yoy
}
