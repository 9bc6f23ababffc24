package deriving

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/hk-dashboard-api/internal/config"
	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

func newTestService() *Service {
	return NewService(&config.Config{Thresholds: config.Thresholds{Stagnant: 0.05, ClosedStoreSalesPerArea: 1}})
}

func TestResolveSnapshot_EndToEnd2511(t *testing.T) {
	snapshot := ResolveSnapshot(domain.PLFigures{
		TagSales:    domain.Some(1000),
		NetSales:    domain.Some(800),
		GrossProfit: domain.Some(300),
		DirectCost:  domain.Some(100),
		SgA:         domain.Some(50),
	})

	assert.InDelta(t, 20.0, snapshot.DiscountRate, 1e-9)
	assert.InDelta(t, 37.5, snapshot.GrossProfitRate, 1e-9)
	assert.InDelta(t, 200.0, snapshot.DirectProfit, 1e-9)
	assert.InDelta(t, 25.0, snapshot.DirectProfitRate, 1e-9)
	assert.InDelta(t, 150.0, snapshot.OperatingProfit, 1e-9)
	assert.InDelta(t, 18.75, snapshot.OperatingProfitRate, 1e-9)
}

func TestResolveSnapshot_SourceRatesWin(t *testing.T) {
	snapshot := ResolveSnapshot(domain.PLFigures{
		TagSales:        domain.Some(1000),
		NetSales:        domain.Some(800),
		DiscountRate:    domain.Some(19.8),
		GrossProfit:     domain.Some(300),
		GrossProfitRate: domain.Some(37.4),
		DirectProfit:    domain.Some(210),
	})

	assert.Equal(t, 19.8, snapshot.DiscountRate)
	assert.Equal(t, 37.4, snapshot.GrossProfitRate)
	assert.Equal(t, 210.0, snapshot.DirectProfit)
	assert.InDelta(t, 26.25, snapshot.DirectProfitRate, 1e-9)
}

func TestResolveSnapshot_Empty(t *testing.T) {
	snapshot := ResolveSnapshot(domain.PLFigures{})
	assert.Equal(t, Snapshot{}, snapshot)
}

func TestService_Derive_OperatingProfitTurnedPositive(t *testing.T) {
	bundle := &domain.Bundle{
		Period: domain.MustParsePeriod("2511"),
		PL: &domain.PLData{
			Cumulative: domain.PLCumulative{
				Total: domain.PLFigures{
					NetSales:        domain.Some(800),
					OperatingProfit: domain.Some(50),
				},
				Yoy: map[string]domain.Amount{"operating_profit": domain.Some(-50)},
				PrevCumulative: domain.PLHorizon{
					Total: domain.PLFigures{
						NetSales:        domain.Some(700),
						OperatingProfit: domain.Some(-100),
					},
				},
			},
		},
	}

	derived := newTestService().Derive(bundle)

	yoy := derived.PL.Cumulative.Total.Yoy[MetricOperatingProfit]
	assert.Equal(t, domain.YOYTurnedPositive, yoy.State)
	assert.Equal(t, "turned positive", yoy.Label())

	sales := derived.PL.Cumulative.Total.Yoy[MetricNetSales]
	v, ok := sales.Percent()
	require.True(t, ok)
	assert.InDelta(t, 800.0/700.0*100, v, 1e-9)
}

func TestService_Derive_AreaEfficiency(t *testing.T) {
	bundle := &domain.Bundle{
		Period: domain.MustParsePeriod("2511"),
		Cumulative: &domain.CumulativeDashboard{
			OfflineStoreEfficiency: domain.OfflineStoreEfficiency{
				Stores: []domain.StoreArea{
					{StoreCode: "A", Country: "HK", NetSales: domain.Some(100), Area: domain.Some(10)},
					{StoreCode: "B", Country: "HK", NetSales: domain.Some(200), Area: domain.Some(0), Closed: true},
				},
			},
		},
	}

	derived := newTestService().Derive(bundle)

	// 2025 não é bissexto: 31+28+31+30+31+30+31+31+30+31+30 = 334
	require.Equal(t, 334, derived.ElapsedDays)
	assert.InDelta(t, 300.0/10.0/334.0, derived.Efficiency.HK, 1e-12)
	assert.Equal(t, derived.Efficiency.HK, derived.Efficiency.Total)
	assert.Equal(t, 0.0, derived.Efficiency.MC)
	assert.Equal(t, []string{"B"}, derived.Efficiency.Excluded)
}

func TestService_Derive_Channels(t *testing.T) {
	bundle := &domain.Bundle{
		Period: domain.MustParsePeriod("2511"),
		Cumulative: &domain.CumulativeDashboard{
			CountryChannelSummary: map[string]domain.ChannelRecord{
				"MC-Retail": {Country: "MC", Channel: "Retail",
					Current:  domain.ChannelFigures{TagSales: domain.Some(500), NetSales: domain.Some(250)},
					Previous: domain.ChannelFigures{NetSales: domain.Some(200)}},
				"HK-Online": {Country: "HK", Channel: "Online",
					Current: domain.ChannelFigures{NetSales: domain.Some(250), DiscountRate: domain.Some(12)}},
				"HK-Retail": {Country: "HK", Channel: "Retail",
					Current:  domain.ChannelFigures{TagSales: domain.Some(1000), NetSales: domain.Some(500)},
					Previous: domain.ChannelFigures{NetSales: domain.Some(400)}},
			},
		},
	}

	channels := newTestService().Derive(bundle).Channels
	require.Len(t, channels, 3)

	assert.Equal(t, "HK-Retail", channels[0].Key)
	assert.Equal(t, "HK-Online", channels[1].Key)
	assert.Equal(t, "MC-Retail", channels[2].Key)

	assert.InDelta(t, 50.0, channels[0].DiscountRate, 1e-9)
	assert.InDelta(t, 50.0, channels[0].Share, 1e-9)
	assert.Equal(t, 12.0, channels[1].DiscountRate)
	assert.Equal(t, domain.YOYNotApplicable, channels[1].Yoy.State)

	v, ok := channels[2].Yoy.Percent()
	require.True(t, ok)
	assert.InDelta(t, 125.0, v, 1e-9)
}

func TestService_Derive_MissingResourcesAreEmpty(t *testing.T) {
	derived := newTestService().Derive(&domain.Bundle{Period: domain.MustParsePeriod("2502")})

	assert.Equal(t, 59, derived.ElapsedDays)
	assert.NotNil(t, derived.Channels)
	assert.Empty(t, derived.Channels)
	assert.NotNil(t, derived.Seasons)
	assert.NotNil(t, derived.Monthly.Channels)
	assert.NotNil(t, derived.Efficiency.Excluded)
	assert.Equal(t, 0.0, derived.PL.Cumulative.Total.Current.OperatingProfitRate)
	assert.Equal(t, domain.YOYNotApplicable, derived.PL.Cumulative.Total.Yoy[MetricNetSales].State)
	assert.Len(t, derived.PL.Cumulative.Total.Expenses, 7)
}

func TestService_Derive_Expenses(t *testing.T) {
	bundle := &domain.Bundle{
		Period: domain.MustParsePeriod("2511"),
		PL: &domain.PLData{
			CurrentMonth: domain.PLHorizon{
				Total: domain.PLFigures{
					NetSales: domain.Some(1000),
					ExpenseDetail: domain.ExpenseDetail{
						Rent:        domain.Some(150),
						OtherDetail: map[string]domain.Amount{"utilities": domain.Some(20), "cleaning": domain.Some(5)},
					},
				},
			},
			PrevMonth: domain.PLHorizon{
				Total: domain.PLFigures{
					NetSales:      domain.Some(900),
					ExpenseDetail: domain.ExpenseDetail{Rent: domain.Some(120)},
				},
			},
		},
	}

	total := newTestService().Derive(bundle).PL.CurrentMonth.Total

	var rent ExpenseLine
	for _, e := range total.Expenses {
		if e.Name == "rent" {
			rent = e
		}
	}
	assert.Equal(t, 150.0, rent.Current)
	assert.InDelta(t, 15.0, rent.Ratio, 1e-9)
	v, ok := rent.Yoy.Percent()
	require.True(t, ok)
	assert.InDelta(t, 125.0, v, 1e-9)

	require.Len(t, total.OtherDetail, 2)
	assert.Equal(t, "cleaning", total.OtherDetail[0].Name)
	assert.Equal(t, domain.YOYNotApplicable, total.OtherDetail[0].Yoy.State)
}

func TestResolveSnapshot_CogsFromGrossProfit(t *testing.T) {
	snapshot := ResolveSnapshot(domain.PLFigures{
		NetSales:    domain.Some(800),
		GrossProfit: domain.Some(300),
	})

	assert.InDelta(t, 500.0, snapshot.Cogs, 1e-9)
	assert.InDelta(t, 62.5, snapshot.CogsRate, 1e-9)
}

func TestResolveSnapshot_SourceCogsWins(t *testing.T) {
	snapshot := ResolveSnapshot(domain.PLFigures{
		NetSales:    domain.Some(800),
		Cogs:        domain.Some(480),
		GrossProfit: domain.Some(300),
	})

	assert.Equal(t, 480.0, snapshot.Cogs)
	assert.Equal(t, 300.0, snapshot.GrossProfit)
}

func TestService_Derive_NonFiniteSourceValuesStayEncodable(t *testing.T) {
	json := jsoniter.ConfigCompatibleWithStandardLibrary

	var cumulative domain.CumulativeDashboard
	require.NoError(t, json.Unmarshal([]byte(`{"sales_summary":{"total":{"tag_sales":"NaN","net_sales":800,"net_sales_prev":"Inf"}}}`), &cumulative))

	derived := newTestService().Derive(&domain.Bundle{
		Period:     domain.MustParsePeriod("2511"),
		Cumulative: &cumulative,
	})

	assert.Equal(t, 0.0, derived.Sales.Total.DiscountRate)

	_, err := json.Marshal(derived)
	assert.NoError(t, err)
}

func TestService_Derive_StoreSalesAndAccSales(t *testing.T) {
	bundle := &domain.Bundle{
		Period: domain.MustParsePeriod("2511"),
		Cumulative: &domain.CumulativeDashboard{
			StoreSummary: map[string]domain.StoreSummary{
				"HK01": {StoreCode: "HK01", Country: "HK", TagSales: domain.Some(1000), NetSales: domain.Some(800), NetSalesPrev: domain.Some(640)},
				"MC01": {Country: "MC", NetSales: domain.Some(200), NetSalesPrev: domain.Some(-10), Yoy: domain.Some(-2000)},
				"HK02": {StoreCode: "HK02", NetSales: domain.Some(200), Yoy: domain.Some(90)},
			},
			AccSalesData: map[string]domain.SalesFigures{
				"2511": {TagSales: domain.Some(500), NetSales: domain.Some(400), NetSalesPrev: domain.Some(320)},
				"2510": {NetSales: domain.Some(300)},
			},
		},
	}

	derived := newTestService().Derive(bundle)

	require.Len(t, derived.StoreSales, 3)
	assert.Equal(t, "HK01", derived.StoreSales[0].Code)
	assert.InDelta(t, 20.0, derived.StoreSales[0].DiscountRate, 1e-9)
	assert.InDelta(t, 800.0/1200.0*100, derived.StoreSales[0].Share, 1e-9)
	v, ok := derived.StoreSales[0].Yoy.Percent()
	require.True(t, ok)
	assert.InDelta(t, 125.0, v, 1e-9)

	// Empate de venda desempata pelo código; o código ausente vem da chave
	assert.Equal(t, "HK02", derived.StoreSales[1].Code)
	assert.Equal(t, "MC01", derived.StoreSales[2].Code)
	assert.Equal(t, domain.YOYTurnedPositive, derived.StoreSales[2].Yoy.State)

	require.Len(t, derived.AccSales, 2)
	assert.Equal(t, "2510", derived.AccSales[0].Key)
	assert.Equal(t, "2511", derived.AccSales[1].Key)
	assert.InDelta(t, 20.0, derived.AccSales[1].DiscountRate, 1e-9)
	assert.Equal(t, domain.YOYNotApplicable, derived.AccSales[0].Yoy.State)
}
