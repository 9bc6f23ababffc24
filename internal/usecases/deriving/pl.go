package deriving

import (
	"sort"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

// summarizePL compara o mês atual com o mesmo mês do ano anterior (prev_month)
// e o acumulado com o acumulado anterior (prev_cumulative)
func summarizePL(pl domain.PLData) PLSummary {
	return PLSummary{
		CurrentMonth: summarizeHorizon(pl.CurrentMonth, pl.PrevMonth, pl.CurrentMonth.Yoy),
		Cumulative:   summarizeHorizon(pl.Cumulative.Horizon(), pl.Cumulative.PrevCumulative, pl.Cumulative.Yoy),
	}
}

func summarizeHorizon(current, previous domain.PLHorizon, sourceYoy map[string]domain.Amount) HorizonSummary {
	return HorizonSummary{
		HK:    summarizeEntity(EntityHK, current.HK, previous.HK, nil),
		MC:    summarizeEntity(EntityMC, current.MC, previous.MC, nil),
		Total: summarizeEntity(EntityTotal, current.Total, previous.Total, sourceYoy),
	}
}

func summarizeEntity(entity string, current, previous domain.PLFigures, sourceYoy map[string]domain.Amount) EntitySummary {
	cur := ResolveSnapshot(current)
	prev := ResolveSnapshot(previous)

	return EntitySummary{
		Entity:      entity,
		Current:     cur,
		Previous:    prev,
		Yoy:         compareSnapshots(cur, prev, hasFigures(previous), sourceYoy),
		Expenses:    expenseLines(current.ExpenseDetail.Buckets(), previous.ExpenseDetail.Buckets(), cur.NetSales),
		OtherDetail: otherDetailLines(current.ExpenseDetail.OtherDetail, previous.ExpenseDetail.OtherDetail, cur.NetSales),
	}
}

// hasFigures indica se o horizonte anterior foi publicado
func hasFigures(f domain.PLFigures) bool {
	return f.NetSales.Valid || f.TagSales.Valid || f.GrossProfit.Valid || f.OperatingProfit.Valid
}

func expenseLines(current, previous []domain.NamedAmount, netSales float64) []ExpenseLine {
	lines := make([]ExpenseLine, 0, len(current))
	for i, bucket := range current {
		prev := domain.None
		if i < len(previous) {
			prev = previous[i].Amount
		}
		lines = append(lines, expenseLine(bucket.Name, bucket.Amount, prev, netSales))
	}
	return lines
}

func otherDetailLines(current, previous map[string]domain.Amount, netSales float64) []ExpenseLine {
	names := make([]string, 0, len(current))
	for name := range current {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]ExpenseLine, 0, len(names))
	for _, name := range names {
		lines = append(lines, expenseLine(name, current[name], previous[name], netSales))
	}
	return lines
}

func expenseLine(name string, current, previous domain.Amount, netSales float64) ExpenseLine {
	return ExpenseLine{
		Name:     name,
		Current:  current.OrZero(),
		Previous: previous.OrZero(),
		Ratio:    domain.ProfitRate(current.OrZero(), netSales),
		Yoy:      domain.ComputeAmountYOY(current, previous),
	}
}
