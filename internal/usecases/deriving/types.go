package deriving

import "github.com/vfg2006/hk-dashboard-api/internal/domain"

// Entidades publicadas pelo pipeline: Hong Kong, Macau e o total
const (
	EntityHK    = "hk"
	EntityMC    = "mc"
	EntityTotal = "total"
)

// Derived é o resultado da etapa de derivação para um Bundle
type Derived struct {
	Period      domain.PeriodKey `json:"period"`
	ElapsedDays int              `json:"elapsed_days"`
	Sales       SalesSummary     `json:"sales"`
	Channels    []ChannelLine    `json:"channels"`
	StoreSales  []StoreSalesLine `json:"store_sales"`
	AccSales    []SalesLine      `json:"acc_sales"`
	Seasons     []SeasonLine     `json:"seasons"`
	Inventory   InventorySummary `json:"inventory"`
	PL          PLSummary        `json:"pl"`
	Efficiency  Efficiency       `json:"efficiency"`
	Monthly     MonthlyTrends    `json:"monthly"`
}

type SalesLine struct {
	Key              string     `json:"key"`
	TagSales         float64    `json:"tag_sales"`
	NetSales         float64    `json:"net_sales"`
	DiscountRate     float64    `json:"discount_rate"`
	TagSalesPrev     float64    `json:"tag_sales_prev"`
	NetSalesPrev     float64    `json:"net_sales_prev"`
	DiscountRatePrev float64    `json:"discount_rate_prev"`
	Yoy              domain.YOY `json:"yoy"`
}

type SalesSummary struct {
	HK    SalesLine `json:"hk"`
	MC    SalesLine `json:"mc"`
	Total SalesLine `json:"total"`
}

// ChannelLine é uma linha país x canal com participação na venda total
type ChannelLine struct {
	Key              string     `json:"key"`
	Country          string     `json:"country"`
	Channel          string     `json:"channel"`
	NetSales         float64    `json:"net_sales"`
	NetSalesPrev     float64    `json:"net_sales_prev"`
	DiscountRate     float64    `json:"discount_rate"`
	DiscountRatePrev float64    `json:"discount_rate_prev"`
	Share            float64    `json:"share"`
	Yoy              domain.YOY `json:"yoy"`
}

// StoreSalesLine é a venda acumulada de uma loja com participação na venda das lojas
type StoreSalesLine struct {
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	Country      string     `json:"country"`
	Channel      string     `json:"channel"`
	TagSales     float64    `json:"tag_sales"`
	NetSales     float64    `json:"net_sales"`
	NetSalesPrev float64    `json:"net_sales_prev"`
	DiscountRate float64    `json:"discount_rate"`
	Share        float64    `json:"share"`
	Yoy          domain.YOY `json:"yoy"`
}

type SeasonLine struct {
	Season       string     `json:"season"`
	TagSales     float64    `json:"tag_sales"`
	NetSales     float64    `json:"net_sales"`
	DiscountRate float64    `json:"discount_rate"`
	NetSalesPrev float64    `json:"net_sales_prev"`
	InboundTag   float64    `json:"inbound_tag"`
	SalesTag     float64    `json:"sales_tag"`
	SellThrough  float64    `json:"sell_through"`
	Yoy          domain.YOY `json:"yoy"`
}

type InventoryStock struct {
	Key            string     `json:"key"`
	StockPrice     float64    `json:"stock_price"`
	StockCost      float64    `json:"stock_cost"`
	StockPricePrev float64    `json:"stock_price_prev"`
	Yoy            domain.YOY `json:"yoy"`
}

type InventorySummary struct {
	Total           InventoryStock   `json:"total"`
	BySeason        []InventoryStock `json:"by_season"`
	PastSeasonTotal InventoryStock   `json:"past_season_total"`
	PastSeasonYears []InventoryStock `json:"past_season_years"`
	AccByCategory   []InventoryStock `json:"acc_by_category"`
}

// ExpenseLine é um grupo de custo com comparação anual e peso sobre a venda líquida
type ExpenseLine struct {
	Name     string     `json:"name"`
	Current  float64    `json:"current"`
	Previous float64    `json:"previous"`
	Ratio    float64    `json:"ratio"`
	Yoy      domain.YOY `json:"yoy"`
}

type EntitySummary struct {
	Entity      string                `json:"entity"`
	Current     Snapshot              `json:"current"`
	Previous    Snapshot              `json:"previous"`
	Yoy         map[string]domain.YOY `json:"yoy"`
	Expenses    []ExpenseLine         `json:"expenses"`
	OtherDetail []ExpenseLine         `json:"other_detail"`
}

type HorizonSummary struct {
	HK    EntitySummary `json:"hk"`
	MC    EntitySummary `json:"mc"`
	Total EntitySummary `json:"total"`
}

type PLSummary struct {
	CurrentMonth HorizonSummary `json:"current_month"`
	Cumulative   HorizonSummary `json:"cumulative"`
}

// Efficiency é a venda por unidade de área por dia decorrido no ano
type Efficiency struct {
	HK          float64  `json:"hk"`
	MC          float64  `json:"mc"`
	Total       float64  `json:"total"`
	ElapsedDays int      `json:"elapsed_days"`
	Excluded    []string `json:"excluded_from_area"`
}

type MonthlyTrends struct {
	Channels  []domain.MonthlySeries `json:"channels"`
	Items     []domain.MonthlySeries `json:"items"`
	Inventory []domain.MonthlySeries `json:"inventory"`
}
