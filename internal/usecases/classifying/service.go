package classifying

import (
	"sort"
	"strconv"

	"github.com/vfg2006/hk-dashboard-api/internal/config"
	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

type Service struct {
	stagnantThreshold float64
}

func NewService(cfg *config.Config) *Service {
	threshold := cfg.Thresholds.Stagnant
	if threshold <= 0 {
		threshold = domain.DefaultStagnantThreshold
	}

	return &Service{
		stagnantThreshold: threshold,
	}
}

// Classify é total: qualquer Bundle, inclusive vazio, gera um resultado válido
func (s *Service) Classify(bundle *domain.Bundle) *Classified {
	classified := &Classified{
		Stores:    []StoreRow{},
		Excluded:  []domain.ExcludedStore{},
		Inventory: InventoryReport{Threshold: s.stagnantThreshold, Lines: []InventoryRow{}, Stagnant: []InventoryRow{}},
	}

	areas := map[string]domain.StoreArea{}
	if bundle.Cumulative != nil {
		for _, a := range bundle.Cumulative.OfflineStoreEfficiency.Stores {
			areas[a.StoreCode] = a
		}
		classified.Inventory = s.classifyInventory(bundle.Cumulative)
	}

	if bundle.StoreStatus != nil {
		classified.Stores = storeRows(bundle.StoreStatus, areas, bundle.StorePL)
		if bundle.StoreStatus.ExcludedStores != nil {
			classified.Excluded = bundle.StoreStatus.ExcludedStores
		}
		classified.Summary = statusTotals(bundle.StoreStatus.Summary, classified.Stores, "")
		classified.MCSummary = statusTotals(bundle.StoreStatus.MCSummary, classified.Stores, countryMC)
	}

	classified.Categories = Summarize(classified.Stores)

	return classified
}

// NewStoreRecord converte a linha do arquivo de status. A categoria é sempre
// recalculada a partir do lucro direto e do YOY; a anterior vem do arquivo.
// Aluguel e pessoal ausentes no status saem do resultado da loja, quando houver.
func NewStoreRecord(status domain.StoreStatus, area domain.StoreArea, pl *domain.StorePL) domain.StoreRecord {
	yoy := domain.YOYFromSource(status.Yoy, status.NetSales, status.NetSalesPrev)

	rent, labor := status.Rent, status.LaborCost
	if pl != nil {
		if !rent.Valid {
			rent = pl.Rent
		}
		if !labor.Valid {
			labor = pl.Salary
		}
	}

	return domain.StoreRecord{
		Code:             status.StoreCode,
		Name:             status.StoreName,
		Country:          status.Country,
		Channel:          status.Channel,
		NetSales:         status.NetSales.OrZero(),
		NetSalesPrev:     status.NetSalesPrev.OrZero(),
		Rent:             rent.OrZero(),
		LaborCost:        labor.OrZero(),
		DirectProfit:     status.DirectProfit.OrZero(),
		DirectProfitPrev: status.DirectProfitPrev.OrZero(),
		Yoy:              yoy,
		Area:             area.Area.OrZero(),
		Closed:           area.Closed,
		Category:         domain.ClassifyStoreYOY(status.DirectProfit.OrZero(), yoy),
		PrevCategory:     domain.ParseStoreCategory(status.PrevCategory),
	}
}

// storeExpenses compara cada grupo de custo da loja com o ano anterior.
// O peso usa a venda do próprio resultado e cai para a do status.
func storeExpenses(pl *domain.StorePL, netSales float64) []StoreExpense {
	if pl == nil {
		return []StoreExpense{}
	}

	base := pl.NetSales.Or(netSales)
	pairs := pl.Expenses()
	expenses := make([]StoreExpense, 0, len(pairs))
	for _, p := range pairs {
		expenses = append(expenses, StoreExpense{
			Name:     p.Name,
			Current:  p.Current.OrZero(),
			Previous: p.Previous.OrZero(),
			Ratio:    domain.ProfitRate(p.Current.OrZero(), base),
			Yoy:      domain.ComputeAmountYOY(p.Current, p.Previous),
		})
	}
	return expenses
}

const countryMC = "MC"

// statusTotals usa o resumo publicado; sem ele, soma as lojas do país (todas quando vazio)
func statusTotals(summary domain.StatusSummary, rows []StoreRow, country string) StatusTotals {
	var computed StatusTotals
	for _, row := range rows {
		if country != "" && row.Country != country {
			continue
		}
		computed.Stores++
		computed.NetSales += row.NetSales
		computed.DirectProfit += row.DirectProfit
	}

	return StatusTotals{
		Stores:       int(summary.TotalStores.Or(float64(computed.Stores))),
		NetSales:     summary.TotalSales.Or(computed.NetSales),
		DirectProfit: summary.TotalDirectProfit.Or(computed.DirectProfit),
	}
}

func storeRows(report *domain.StoreStatusReport, areas map[string]domain.StoreArea, storePL map[string]domain.StorePLEntry) []StoreRow {
	seen := map[string]bool{}
	rows := []StoreRow{}

	for _, category := range report.Categories.All() {
		for _, status := range category.Stores {
			if status.StoreCode == "" || seen[status.StoreCode] {
				continue
			}
			seen[status.StoreCode] = true

			pl, source := storePL[status.StoreCode].Preferred()
			record := NewStoreRecord(status, areas[status.StoreCode], pl)
			row := StoreRow{
				StoreRecord: record,
				RentRatio:   record.RentRatio(),
				LaborRatio:  record.LaborRatio(),
				YoyLabel:    record.Yoy.Label(),
				Transition:  domain.NewCategoryTransition(record.PrevCategory, record.Category),
				PLSource:    source,
				Expenses:    storeExpenses(pl, record.NetSales),
			}

			salesPerArea, ok := domain.AreaSales{Code: record.Code, NetSales: record.NetSales, Area: record.Area}.SalesPerArea()
			if ok {
				row.SalesPerArea = &salesPerArea
			}

			rows = append(rows, row)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		ci, cj := categoryRank(rows[i].Category), categoryRank(rows[j].Category)
		if ci != cj {
			return ci < cj
		}
		if rows[i].NetSales != rows[j].NetSales {
			return rows[i].NetSales > rows[j].NetSales
		}
		return rows[i].Code < rows[j].Code
	})

	return rows
}

func categoryRank(c domain.StoreCategory) int {
	for i, category := range domain.StoreCategories {
		if c == category {
			return i
		}
	}
	return len(domain.StoreCategories)
}

// Summarize agrega as lojas nas quatro categorias, sempre na ordem de exibição
func Summarize(rows []StoreRow) []CategorySummary {
	summaries := make([]CategorySummary, 0, len(domain.StoreCategories))

	for _, category := range domain.StoreCategories {
		summary := CategorySummary{Category: category, StoreCodes: []string{}}

		var rent, labor, weights []float64
		for _, row := range rows {
			if row.Category != category {
				continue
			}
			summary.Count++
			summary.NetSales += row.NetSales
			summary.DirectProfit += row.DirectProfit
			summary.StoreCodes = append(summary.StoreCodes, row.Code)

			rent = append(rent, row.RentRatio)
			labor = append(labor, row.LaborRatio)
			weights = append(weights, row.NetSales)
		}

		summary.RentRatio = domain.WeightedAverage(rent, weights)
		summary.LaborRatio = domain.WeightedAverage(labor, weights)

		summaries = append(summaries, summary)
	}

	return summaries
}

// classifyInventory avalia cada linha isoladamente. A lista de temporadas passadas
// é a base; linhas só presentes na lista de estoque parado são acrescentadas.
func (s *Service) classifyInventory(cumulative *domain.CumulativeDashboard) InventoryReport {
	report := InventoryReport{
		Threshold: s.stagnantThreshold,
		Lines:     []InventoryRow{},
		Stagnant:  []InventoryRow{},
	}

	seen := map[string]bool{}
	items := append([]domain.InventoryItem{}, cumulative.AllPastSeasonInventory.Items...)
	items = append(items, cumulative.StagnantInventory.Items...)

	for _, item := range items {
		key := item.Subcategory + "|" + item.Season
		if seen[key] {
			continue
		}
		seen[key] = true

		row := s.inventoryRow(domain.NewInventoryLine(item))
		report.Lines = append(report.Lines, row)

		if row.Stagnant {
			report.Stagnant = append(report.Stagnant, row)
			report.StagnantStock += row.StockPrice
		}
	}

	// Maior valor de estoque parado primeiro
	sort.SliceStable(report.Stagnant, func(i, j int) bool {
		return report.Stagnant[i].StockPrice > report.Stagnant[j].StockPrice
	})

	return report
}

func (s *Service) inventoryRow(line domain.InventoryLine) InventoryRow {
	row := InventoryRow{
		InventoryLine:  line,
		DiscountRate:   line.DiscountRate(),
		StockDaysLabel: domain.Placeholder,
		Stagnant:       line.IsStagnant(s.stagnantThreshold),
	}

	if days, ok := line.StockDays(); ok {
		row.StockDays = &days
		row.StockDaysLabel = strconv.FormatFloat(days, 'f', 0, 64)
	}

	return row
}
