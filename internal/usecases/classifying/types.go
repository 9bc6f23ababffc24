package classifying

import "github.com/vfg2006/hk-dashboard-api/internal/domain"

// Classified é o resultado da etapa de classificação de um Bundle
type Classified struct {
	Stores     []StoreRow             `json:"stores"`
	Categories []CategorySummary      `json:"categories"`
	Excluded   []domain.ExcludedStore `json:"excluded_stores"`
	Summary    StatusTotals           `json:"summary"`
	MCSummary  StatusTotals           `json:"mc_summary"`
	Inventory  InventoryReport        `json:"inventory"`
}

// StatusTotals é o resumo do arquivo de status, recalculado das lojas quando ausente
type StatusTotals struct {
	Stores       int     `json:"stores"`
	NetSales     float64 `json:"net_sales"`
	DirectProfit float64 `json:"direct_profit"`
}

// StoreRow é o StoreRecord com os indicadores exibidos na tabela de lojas
type StoreRow struct {
	domain.StoreRecord
	RentRatio    float64                   `json:"rent_ratio"`
	LaborRatio   float64                   `json:"labor_ratio"`
	SalesPerArea *float64                  `json:"sales_per_area"`
	YoyLabel     string                    `json:"yoy_label"`
	Transition   domain.CategoryTransition `json:"transition"`
	PLSource     string                    `json:"pl_source"`
	Expenses     []StoreExpense            `json:"expenses"`
}

// StoreExpense é um grupo de custo do resultado da loja, com peso sobre a venda líquida
type StoreExpense struct {
	Name     string     `json:"name"`
	Current  float64    `json:"current"`
	Previous float64    `json:"previous"`
	Ratio    float64    `json:"ratio"`
	Yoy      domain.YOY `json:"yoy"`
}

// CategorySummary usa médias ponderadas pela venda absoluta de cada loja
type CategorySummary struct {
	Category     domain.StoreCategory `json:"category"`
	Count        int                  `json:"count"`
	NetSales     float64              `json:"net_sales"`
	DirectProfit float64              `json:"direct_profit"`
	RentRatio    float64              `json:"rent_ratio"`
	LaborRatio   float64              `json:"labor_ratio"`
	StoreCodes   []string             `json:"store_codes"`
}

// InventoryRow traz os indicadores derivados de uma linha de estoque.
// StockDays é nil quando não se aplica e StockDaysLabel mostra o marcador.
type InventoryRow struct {
	domain.InventoryLine
	DiscountRate   float64  `json:"discount_rate"`
	StockDays      *float64 `json:"stock_days"`
	StockDaysLabel string   `json:"stock_days_label"`
	Stagnant       bool     `json:"stagnant"`
}

type InventoryReport struct {
	Threshold     float64        `json:"threshold"`
	Lines         []InventoryRow `json:"lines"`
	Stagnant      []InventoryRow `json:"stagnant"`
	StagnantStock float64        `json:"stagnant_stock"`
}
