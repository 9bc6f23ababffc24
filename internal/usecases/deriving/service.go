package deriving

import (
	"sort"

	"github.com/vfg2006/hk-dashboard-api/internal/config"
	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

// Canais na ordem em que aparecem na tabela; os demais vêm depois em ordem alfabética
var channelOrder = []string{"HK-Retail", "HK-Outlet", "HK-Online", "MC-Retail", "MC-Outlet"}

type Service struct {
	closedStoreThreshold float64
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		closedStoreThreshold: cfg.Thresholds.ClosedStoreSalesPerArea,
	}
}

// Derive é puro: o mesmo Bundle sempre produz o mesmo resultado.
// Recursos ausentes resultam em números zerados e coleções vazias.
func (s *Service) Derive(bundle *domain.Bundle) *Derived {
	derived := &Derived{
		Period:      bundle.Period,
		ElapsedDays: bundle.Period.ElapsedDays(),
		Channels:    []ChannelLine{},
		StoreSales:  []StoreSalesLine{},
		AccSales:    []SalesLine{},
		Seasons:     []SeasonLine{},
		Inventory:   InventorySummary{BySeason: []InventoryStock{}, PastSeasonYears: []InventoryStock{}, AccByCategory: []InventoryStock{}},
		Efficiency:  Efficiency{ElapsedDays: bundle.Period.ElapsedDays(), Excluded: []string{}},
		Monthly:     MonthlyTrends{Channels: []domain.MonthlySeries{}, Items: []domain.MonthlySeries{}, Inventory: []domain.MonthlySeries{}},
	}

	var pl domain.PLData
	if bundle.PL != nil {
		pl = *bundle.PL
	}
	derived.PL = summarizePL(pl)

	if bundle.Cumulative != nil {
		cumulative := bundle.Cumulative
		derived.Sales = SalesSummary{
			HK:    salesLine(EntityHK, cumulative.SalesSummary.HK),
			MC:    salesLine(EntityMC, cumulative.SalesSummary.MC),
			Total: salesLine(EntityTotal, cumulative.SalesSummary.Total),
		}
		derived.Channels = channelLines(cumulative.CountryChannelSummary)
		derived.StoreSales = storeSalesLines(cumulative.StoreSummary)
		derived.AccSales = accSalesLines(cumulative.AccSalesData)
		derived.Seasons = seasonLines(cumulative.SeasonSales, cumulative.SeasonSummary)
		derived.Inventory = inventorySummary(cumulative.EndingInventory)
		derived.Efficiency = s.efficiency(cumulative.OfflineStoreEfficiency.Stores, derived.ElapsedDays)
	} else {
		derived.Sales = SalesSummary{HK: SalesLine{Key: EntityHK}, MC: SalesLine{Key: EntityMC}, Total: SalesLine{Key: EntityTotal}}
	}

	if bundle.Monthly != nil {
		derived.Monthly = MonthlyTrends{
			Channels:  domain.BuildMonthlySeries(bundle.Monthly.MonthlyChannelData, bundle.Monthly.MonthlyChannelYoy),
			Items:     domain.BuildMonthlySeries(bundle.Monthly.MonthlyItemData, bundle.Monthly.MonthlyItemYoy),
			Inventory: domain.BuildMonthlySeries(bundle.Monthly.MonthlyInventoryData, bundle.Monthly.MonthlyInventoryYoy),
		}
	}

	return derived
}

func salesLine(key string, f domain.SalesFigures) SalesLine {
	line := SalesLine{
		Key:          key,
		TagSales:     f.TagSales.OrZero(),
		NetSales:     f.NetSales.OrZero(),
		TagSalesPrev: f.TagSalesPrev.OrZero(),
		NetSalesPrev: f.NetSalesPrev.OrZero(),
		Yoy:          domain.ComputeAmountYOY(f.NetSales, f.NetSalesPrev),
	}
	line.DiscountRate = f.DiscountRate.Or(domain.DiscountRate(line.TagSales, line.NetSales))
	line.DiscountRatePrev = f.DiscountRatePrev.Or(domain.DiscountRate(line.TagSalesPrev, line.NetSalesPrev))
	return line
}

func channelLines(records map[string]domain.ChannelRecord) []ChannelLine {
	lines := make([]ChannelLine, 0, len(records))

	var total float64
	for key, r := range records {
		line := ChannelLine{
			Key:          key,
			Country:      r.Country,
			Channel:      r.Channel,
			NetSales:     r.Current.NetSales.OrZero(),
			NetSalesPrev: r.Previous.NetSales.OrZero(),
			Yoy:          domain.ComputeAmountYOY(r.Current.NetSales, r.Previous.NetSales),
		}
		line.DiscountRate = r.Current.DiscountRate.Or(domain.DiscountRate(r.Current.TagSales.OrZero(), line.NetSales))
		line.DiscountRatePrev = r.Previous.DiscountRate.Or(domain.DiscountRate(r.Previous.TagSales.OrZero(), line.NetSalesPrev))

		total += line.NetSales
		lines = append(lines, line)
	}

	for i := range lines {
		lines[i].Share = domain.ProfitRate(lines[i].NetSales, total)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		ri, rj := channelRank(lines[i].Key), channelRank(lines[j].Key)
		if ri != rj {
			return ri < rj
		}
		return lines[i].Key < lines[j].Key
	})

	return lines
}

// storeSalesLines ordena por venda líquida decrescente e depois pelo código
func storeSalesLines(stores map[string]domain.StoreSummary) []StoreSalesLine {
	lines := make([]StoreSalesLine, 0, len(stores))

	var total float64
	for key, st := range stores {
		code := st.StoreCode
		if code == "" {
			code = key
		}

		line := StoreSalesLine{
			Code:         code,
			Name:         st.StoreName,
			Country:      st.Country,
			Channel:      st.Channel,
			TagSales:     st.TagSales.OrZero(),
			NetSales:     st.NetSales.OrZero(),
			NetSalesPrev: st.NetSalesPrev.OrZero(),
			Yoy:          domain.YOYFromSource(st.Yoy, st.NetSales, st.NetSalesPrev),
		}
		line.DiscountRate = domain.DiscountRate(line.TagSales, line.NetSales)

		total += line.NetSales
		lines = append(lines, line)
	}

	for i := range lines {
		lines[i].Share = domain.ProfitRate(lines[i].NetSales, total)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].NetSales != lines[j].NetSales {
			return lines[i].NetSales > lines[j].NetSales
		}
		return lines[i].Code < lines[j].Code
	})

	return lines
}

func accSalesLines(figures map[string]domain.SalesFigures) []SalesLine {
	keys := make([]string, 0, len(figures))
	for k := range figures {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]SalesLine, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, salesLine(k, figures[k]))
	}
	return lines
}

func channelRank(key string) int {
	for i, k := range channelOrder {
		if k == key {
			return i
		}
	}
	return len(channelOrder)
}

func seasonLines(sales map[string]domain.SalesFigures, summary map[string]domain.SeasonFigures) []SeasonLine {
	seasons := map[string]struct{}{}
	for k := range sales {
		seasons[k] = struct{}{}
	}
	for k := range summary {
		seasons[k] = struct{}{}
	}

	lines := make([]SeasonLine, 0, len(seasons))
	for season := range seasons {
		f := sales[season]
		sf := summary[season]

		line := SeasonLine{
			Season:       season,
			TagSales:     f.TagSales.OrZero(),
			NetSales:     f.NetSales.Or(sf.NetSales.OrZero()),
			NetSalesPrev: f.NetSalesPrev.OrZero(),
			InboundTag:   sf.InboundTag.OrZero(),
			SalesTag:     sf.SalesTag.OrZero(),
			Yoy:          domain.ComputeAmountYOY(f.NetSales, f.NetSalesPrev),
		}
		line.DiscountRate = f.DiscountRate.Or(domain.DiscountRate(line.TagSales, line.NetSales))
		line.SellThrough = sf.SellThrough.Or(domain.ProfitRate(line.SalesTag, line.InboundTag))

		lines = append(lines, line)
	}

	// Temporadas mais recentes primeiro (25F antes de 25S antes de 24F)
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Season > lines[j].Season
	})

	return lines
}

func inventoryStock(key string, f domain.InventoryFigures) InventoryStock {
	return InventoryStock{
		Key:            key,
		StockPrice:     f.StockPrice.OrZero(),
		StockCost:      f.StockCost.OrZero(),
		StockPricePrev: f.StockPricePrev.OrZero(),
		Yoy:            domain.ComputeAmountYOY(f.StockPrice, f.StockPricePrev),
	}
}

func inventoryStocks(figures map[string]domain.InventoryFigures, descending bool) []InventoryStock {
	keys := make([]string, 0, len(figures))
	for k := range figures {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if descending {
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	}

	stocks := make([]InventoryStock, 0, len(keys))
	for _, k := range keys {
		stocks = append(stocks, inventoryStock(k, figures[k]))
	}
	return stocks
}

func inventorySummary(inv domain.EndingInventory) InventorySummary {
	return InventorySummary{
		Total:           inventoryStock(EntityTotal, inv.Total),
		BySeason:        inventoryStocks(inv.BySeason, true),
		PastSeasonTotal: inventoryStock(EntityTotal, inv.PastSeasonFW.Total),
		PastSeasonYears: inventoryStocks(inv.PastSeasonFW.ByYear, true),
		AccByCategory:   inventoryStocks(inv.AccByCategory, false),
	}
}
