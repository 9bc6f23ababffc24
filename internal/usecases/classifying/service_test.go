package classifying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/hk-dashboard-api/internal/config"
	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

func newTestService() *Service {
	return NewService(&config.Config{Thresholds: config.Thresholds{Stagnant: 0.05, ClosedStoreSalesPerArea: 1}})
}

func statusBundle() *domain.Bundle {
	return &domain.Bundle{
		Period: domain.MustParsePeriod("2511"),
		Cumulative: &domain.CumulativeDashboard{
			OfflineStoreEfficiency: domain.OfflineStoreEfficiency{
				Stores: []domain.StoreArea{
					{StoreCode: "HK01", Area: domain.Some(100)},
					{StoreCode: "HK03", Area: domain.Some(0), Closed: true},
				},
			},
		},
		StoreStatus: &domain.StoreStatusReport{
			Categories: domain.StatusCategories{
				ProfitImproving: domain.StatusCategory{
					Stores: []domain.StoreStatus{
						{StoreCode: "HK01", NetSales: domain.Some(1000), NetSalesPrev: domain.Some(800),
							Rent: domain.Some(100), LaborCost: domain.Some(200), DirectProfit: domain.Some(50),
							PrevCategory: "loss_improving"},
						// Rótulo do arquivo é recalculado: lucro zero e YOY exatamente 100
						{StoreCode: "HK02", NetSales: domain.Some(500), NetSalesPrev: domain.Some(500),
							Rent: domain.Some(100), DirectProfit: domain.Some(0),
							PrevCategory: "profit_improving"},
					},
				},
				LossDeteriorating: domain.StatusCategory{
					Stores: []domain.StoreStatus{
						{StoreCode: "HK03", NetSales: domain.Some(100), NetSalesPrev: domain.Some(400),
							Rent: domain.Some(50), DirectProfit: domain.Some(-30)},
						{StoreCode: "HK01", NetSales: domain.Some(1)},
					},
				},
				LossImproving: domain.StatusCategory{
					Stores: []domain.StoreStatus{
						{StoreCode: "MC01", Country: "MC", NetSales: domain.Some(300), NetSalesPrev: domain.Some(-20),
							DirectProfit: domain.Some(-5), Yoy: domain.Some(-1500)},
					},
				},
			},
		},
	}
}

func TestService_Classify_Stores(t *testing.T) {
	classified := newTestService().Classify(statusBundle())

	require.Len(t, classified.Stores, 4)

	byCode := map[string]StoreRow{}
	for _, row := range classified.Stores {
		byCode[row.Code] = row
	}

	hk01 := byCode["HK01"]
	assert.Equal(t, domain.CategoryProfitGrowing, hk01.Category)
	assert.True(t, hk01.Transition.Changed)
	assert.Equal(t, domain.CategoryLossGrowing, hk01.Transition.From)
	assert.InDelta(t, 10.0, hk01.RentRatio, 1e-9)
	assert.InDelta(t, 20.0, hk01.LaborRatio, 1e-9)
	require.NotNil(t, hk01.SalesPerArea)
	assert.InDelta(t, 10.0, *hk01.SalesPerArea, 1e-9)
	assert.Equal(t, "125.0%", hk01.YoyLabel)

	hk02 := byCode["HK02"]
	assert.Equal(t, domain.CategoryProfitGrowing, hk02.Category)
	assert.False(t, hk02.Transition.Changed)

	hk03 := byCode["HK03"]
	assert.Equal(t, domain.CategoryLossDeclining, hk03.Category)
	assert.True(t, hk03.Closed)
	assert.Nil(t, hk03.SalesPerArea)
	assert.False(t, hk03.Transition.Changed)

	mc01 := byCode["MC01"]
	assert.Equal(t, domain.YOYTurnedPositive, mc01.Yoy.State)
	assert.Equal(t, domain.CategoryLossGrowing, mc01.Category)

	// Ordem: categoria e depois venda decrescente
	codes := []string{}
	for _, row := range classified.Stores {
		codes = append(codes, row.Code)
	}
	assert.Equal(t, []string{"HK01", "HK02", "MC01", "HK03"}, codes)
}

func TestSummarize_WeightsBySales(t *testing.T) {
	classified := newTestService().Classify(statusBundle())

	require.Len(t, classified.Categories, 4)
	profitGrowing := classified.Categories[0]

	assert.Equal(t, domain.CategoryProfitGrowing, profitGrowing.Category)
	assert.Equal(t, 2, profitGrowing.Count)
	assert.Equal(t, 1500.0, profitGrowing.NetSales)
	assert.Equal(t, []string{"HK01", "HK02"}, profitGrowing.StoreCodes)
	// (10% * 1000 + 20% * 500) / 1500
	assert.InDelta(t, 200.0/15.0, profitGrowing.RentRatio, 1e-9)

	empty := classified.Categories[1]
	assert.Equal(t, domain.CategoryProfitDeclining, empty.Category)
	assert.Equal(t, 0, empty.Count)
	assert.Equal(t, 0.0, empty.RentRatio)
	assert.NotNil(t, empty.StoreCodes)
}

func TestService_Classify_Inventory(t *testing.T) {
	bundle := &domain.Bundle{
		Period: domain.MustParsePeriod("2511"),
		Cumulative: &domain.CumulativeDashboard{
			AllPastSeasonInventory: domain.InventoryItems{Items: []domain.InventoryItem{
				{Subcategory: "TS", Season: "24F", StockPrice: domain.Some(1000), GrossSales: domain.Some(49), NetSales: domain.Some(40)},
				{Subcategory: "PT", Season: "24F", StockPrice: domain.Some(1000), GrossSales: domain.Some(50), NetSales: domain.Some(45)},
				{Subcategory: "JK", Season: "23F", StockPrice: domain.Some(2000), GrossSales: domain.Some(0)},
				{Subcategory: "CP", Season: "23F", StockPrice: domain.None, GrossSales: domain.Some(0)},
			}},
			StagnantInventory: domain.InventoryItems{Items: []domain.InventoryItem{
				{Subcategory: "TS", Season: "24F", StockPrice: domain.Some(1000), GrossSales: domain.Some(49)},
				{Subcategory: "SK", Season: "22F", StockPrice: domain.Some(500), GrossSales: domain.Some(10)},
			}},
		},
	}

	report := newTestService().Classify(bundle).Inventory

	require.Len(t, report.Lines, 5)
	assert.Equal(t, 0.05, report.Threshold)

	stagnant := map[string]bool{}
	for _, row := range report.Stagnant {
		stagnant[row.Subcategory] = true
	}
	assert.Equal(t, map[string]bool{"TS": true, "JK": true, "SK": true}, stagnant)
	assert.Equal(t, 3500.0, report.StagnantStock)
	assert.Equal(t, "JK", report.Stagnant[0].Subcategory)

	for _, row := range report.Lines {
		switch row.Subcategory {
		case "TS":
			require.NotNil(t, row.StockDays)
			assert.InDelta(t, 1000.0/49.0*30, *row.StockDays, 1e-9)
			assert.InDelta(t, (49.0-40.0)/49.0*100, row.DiscountRate, 1e-9)
		case "JK", "CP":
			assert.Nil(t, row.StockDays)
			assert.Equal(t, domain.Placeholder, row.StockDaysLabel)
		case "PT":
			assert.False(t, row.Stagnant)
			assert.Equal(t, "600", row.StockDaysLabel)
		}
	}
}

func TestService_Classify_EmptyBundle(t *testing.T) {
	classified := newTestService().Classify(&domain.Bundle{})

	assert.NotNil(t, classified.Stores)
	assert.Empty(t, classified.Stores)
	assert.Len(t, classified.Categories, 4)
	assert.NotNil(t, classified.Inventory.Lines)
	assert.NotNil(t, classified.Excluded)
}

func TestService_Classify_StorePLFillsMissingCosts(t *testing.T) {
	bundle := statusBundle()
	bundle.StorePL = map[string]domain.StorePLEntry{
		// HK01 já traz aluguel e pessoal no status: o resultado não sobrescreve
		"HK01": {Cumulative: &domain.StorePL{Rent: domain.Some(999), Salary: domain.Some(999)}},
		"HK02": {
			Monthly: &domain.StorePL{Salary: domain.Some(1)},
			Cumulative: &domain.StorePL{
				NetSales: domain.Some(500), Salary: domain.Some(75), SalaryPrev: domain.Some(60),
				Rent: domain.Some(80), RentPrev: domain.Some(0),
			},
		},
		"MC01": {Monthly: &domain.StorePL{Rent: domain.Some(30), Salary: domain.Some(60)}},
	}

	classified := newTestService().Classify(bundle)

	byCode := map[string]StoreRow{}
	for _, row := range classified.Stores {
		byCode[row.Code] = row
	}

	hk01 := byCode["HK01"]
	assert.Equal(t, 100.0, hk01.Rent)
	assert.Equal(t, 200.0, hk01.LaborCost)
	assert.Equal(t, domain.StorePLCumulative, hk01.PLSource)

	hk02 := byCode["HK02"]
	assert.Equal(t, 100.0, hk02.Rent)
	assert.Equal(t, 75.0, hk02.LaborCost)
	assert.InDelta(t, 15.0, hk02.LaborRatio, 1e-9)
	require.Len(t, hk02.Expenses, 7)
	assert.Equal(t, "salary", hk02.Expenses[0].Name)
	assert.InDelta(t, 15.0, hk02.Expenses[0].Ratio, 1e-9)
	v, ok := hk02.Expenses[0].Yoy.Percent()
	require.True(t, ok)
	assert.InDelta(t, 125.0, v, 1e-9)
	assert.Equal(t, "rent", hk02.Expenses[3].Name)
	assert.Equal(t, domain.YOYTurnedPositive, hk02.Expenses[3].Yoy.State)
	assert.Equal(t, domain.YOYNotApplicable, hk02.Expenses[1].Yoy.State)

	mc01 := byCode["MC01"]
	assert.Equal(t, domain.StorePLMonthly, mc01.PLSource)
	assert.Equal(t, 30.0, mc01.Rent)
	assert.InDelta(t, 20.0, mc01.LaborRatio, 1e-9)

	hk03 := byCode["HK03"]
	assert.Equal(t, "", hk03.PLSource)
	assert.NotNil(t, hk03.Expenses)
	assert.Empty(t, hk03.Expenses)
}

func TestService_Classify_StatusSummaries(t *testing.T) {
	t.Run("Resumo publicado prevalece", func(t *testing.T) {
		bundle := statusBundle()
		bundle.StoreStatus.Summary = domain.StatusSummary{
			TotalStores: domain.Some(10), TotalSales: domain.Some(9000), TotalDirectProfit: domain.Some(700),
		}
		bundle.StoreStatus.MCSummary = domain.StatusSummary{
			TotalStores: domain.Some(2), TotalSales: domain.Some(800), TotalDirectProfit: domain.Some(-40),
		}

		classified := newTestService().Classify(bundle)

		assert.Equal(t, StatusTotals{Stores: 10, NetSales: 9000, DirectProfit: 700}, classified.Summary)
		assert.Equal(t, StatusTotals{Stores: 2, NetSales: 800, DirectProfit: -40}, classified.MCSummary)
	})

	t.Run("Sem resumo soma as lojas", func(t *testing.T) {
		classified := newTestService().Classify(statusBundle())

		assert.Equal(t, StatusTotals{Stores: 4, NetSales: 1900, DirectProfit: 15}, classified.Summary)
		assert.Equal(t, StatusTotals{Stores: 1, NetSales: 300, DirectProfit: -5}, classified.MCSummary)
	})

	t.Run("Sem arquivo de status o resumo é zero", func(t *testing.T) {
		classified := newTestService().Classify(&domain.Bundle{})

		assert.Equal(t, StatusTotals{}, classified.Summary)
		assert.Equal(t, StatusTotals{}, classified.MCSummary)
	})
}
