package domain

// Estruturas dos arquivos JSON gerados pelo pipeline de dados.
// Todos os valores numéricos são Amount para preservar a ausência.

// ReportMetadata aparece no topo de todos os arquivos
type ReportMetadata struct {
	Period      string `json:"period,omitempty"`
	GeneratedAt string `json:"generated_at,omitempty"`
	Currency    string `json:"currency,omitempty"`
}

// CumulativeDashboard é o recurso principal (hk-dashboard-cumulative-<period>.json)
type CumulativeDashboard struct {
	Metadata               ReportMetadata           `json:"metadata"`
	SalesSummary           SalesSummary             `json:"sales_summary"`
	SeasonSummary          map[string]SeasonFigures `json:"season_summary"`
	SeasonSales            map[string]SalesFigures  `json:"season_sales"`
	CountryChannelSummary  map[string]ChannelRecord `json:"country_channel_summary"`
	EndingInventory        EndingInventory          `json:"ending_inventory"`
	StoreSummary           map[string]StoreSummary  `json:"store_summary"`
	OfflineStoreEfficiency OfflineStoreEfficiency   `json:"offline_store_efficiency"`
	StagnantInventory      InventoryItems           `json:"stagnant_inventory"`
	AllPastSeasonInventory InventoryItems           `json:"all_past_season_inventory"`
	AccSalesData           map[string]SalesFigures  `json:"acc_sales_data"`
}

// SalesFigures reúne vendas de etiqueta, venda líquida e desconto, atuais e do ano anterior
type SalesFigures struct {
	TagSales         Amount `json:"tag_sales"`
	NetSales         Amount `json:"net_sales"`
	DiscountRate     Amount `json:"discount_rate"`
	TagSalesPrev     Amount `json:"tag_sales_prev"`
	NetSalesPrev     Amount `json:"net_sales_prev"`
	DiscountRatePrev Amount `json:"discount_rate_prev"`
}

type SalesSummary struct {
	HK    SalesFigures `json:"hk"`
	MC    SalesFigures `json:"mc"`
	Total SalesFigures `json:"total"`
}

// SeasonFigures resume uma temporada (ex: 25F) pelo valor de entrada e de venda
type SeasonFigures struct {
	InboundTag  Amount `json:"inbound_tag"`
	SalesTag    Amount `json:"sales_tag"`
	NetSales    Amount `json:"net_sales"`
	SellThrough Amount `json:"sell_through"`
}

// ChannelRecord é um par país x canal (HK-Retail, HK-Outlet, HK-Online, MC-Retail, MC-Outlet)
type ChannelRecord struct {
	Country  string         `json:"country"`
	Channel  string         `json:"channel"`
	Current  ChannelFigures `json:"current"`
	Previous ChannelFigures `json:"previous"`
}

type ChannelFigures struct {
	TagSales     Amount `json:"tag_sales"`
	NetSales     Amount `json:"net_sales"`
	DiscountRate Amount `json:"discount_rate"`
}

type EndingInventory struct {
	Total         InventoryFigures            `json:"total"`
	BySeason      map[string]InventoryFigures `json:"by_season"`
	PastSeasonFW  PastSeasonInventory         `json:"past_season_fw"`
	AccByCategory map[string]InventoryFigures `json:"acc_by_category"`
}

type InventoryFigures struct {
	StockPrice     Amount `json:"stock_price"`
	StockCost      Amount `json:"stock_cost"`
	StockPricePrev Amount `json:"stock_price_prev"`
}

type PastSeasonInventory struct {
	Total  InventoryFigures            `json:"total"`
	ByYear map[string]InventoryFigures `json:"by_year"`
}

type StoreSummary struct {
	StoreCode    string `json:"store_code"`
	StoreName    string `json:"store_name"`
	Country      string `json:"country"`
	Channel      string `json:"channel"`
	NetSales     Amount `json:"net_sales"`
	NetSalesPrev Amount `json:"net_sales_prev"`
	TagSales     Amount `json:"tag_sales"`
	Yoy          Amount `json:"yoy"`
}

type OfflineStoreEfficiency struct {
	Stores []StoreArea `json:"stores"`
}

// StoreArea alimenta o cálculo de venda por área (eficiência de loja)
type StoreArea struct {
	StoreCode string `json:"store_code"`
	StoreName string `json:"store_name"`
	Country   string `json:"country"`
	NetSales  Amount `json:"net_sales"`
	Area      Amount `json:"area"`
	Closed    bool   `json:"closed"`
}

type InventoryItems struct {
	Items []InventoryItem `json:"items"`
}

// InventoryItem é a linha bruta de estoque por subcategoria x temporada
type InventoryItem struct {
	Subcategory     string `json:"subcategory"`
	SubcategoryName string `json:"subcategory_name"`
	Season          string `json:"season"`
	StockPrice      Amount `json:"stock_price"`
	GrossSales      Amount `json:"gross_sales"`
	NetSales        Amount `json:"net_sales"`
}

// MonthlyDashboard é o recurso não cumulativo (hk-dashboard-monthly-<period>.json)
type MonthlyDashboard struct {
	Metadata             ReportMetadata      `json:"metadata"`
	MonthlyChannelData   []MonthlyPoint      `json:"monthly_channel_data"`
	MonthlyChannelYoy    map[string][]Amount `json:"monthly_channel_yoy"`
	MonthlyItemData      []MonthlyPoint      `json:"monthly_item_data"`
	MonthlyItemYoy       map[string][]Amount `json:"monthly_item_yoy"`
	MonthlyInventoryData []MonthlyPoint      `json:"monthly_inventory_data"`
	MonthlyInventoryYoy  map[string][]Amount `json:"monthly_inventory_yoy"`
}

// PLData é o recurso de resultado (hk-pl-<period>.json)
type PLData struct {
	Metadata     ReportMetadata `json:"metadata"`
	CurrentMonth PLHorizon      `json:"current_month"`
	PrevMonth    PLHorizon      `json:"prev_month"`
	Cumulative   PLCumulative   `json:"cumulative"`
}

// PLHorizon contém os números de HK, Macau e total para um horizonte
type PLHorizon struct {
	HK     PLFigures         `json:"hk"`
	MC     PLFigures         `json:"mc"`
	Total  PLFigures         `json:"total"`
	Yoy    map[string]Amount `json:"yoy"`
	Change map[string]Amount `json:"change"`
}

type PLCumulative struct {
	HK             PLFigures         `json:"hk"`
	MC             PLFigures         `json:"mc"`
	Total          PLFigures         `json:"total"`
	Yoy            map[string]Amount `json:"yoy"`
	Change         map[string]Amount `json:"change"`
	PrevCumulative PLHorizon         `json:"prev_cumulative"`
}

// Horizon devolve a parte atual do acumulado no mesmo formato dos outros horizontes
func (c PLCumulative) Horizon() PLHorizon {
	return PLHorizon{HK: c.HK, MC: c.MC, Total: c.Total, Yoy: c.Yoy, Change: c.Change}
}

// PLFigures é o FinancialSnapshot de uma entidade em um horizonte
type PLFigures struct {
	TagSales            Amount        `json:"tag_sales"`
	NetSales            Amount        `json:"net_sales"`
	DiscountRate        Amount        `json:"discount_rate"`
	Cogs                Amount        `json:"cogs"`
	CogsRate            Amount        `json:"cogs_rate"`
	GrossProfit         Amount        `json:"gross_profit"`
	GrossProfitRate     Amount        `json:"gross_profit_rate"`
	DirectCost          Amount        `json:"direct_cost"`
	DirectProfit        Amount        `json:"direct_profit"`
	DirectProfitRate    Amount        `json:"direct_profit_rate"`
	SgA                 Amount        `json:"sg_a"`
	OperatingProfit     Amount        `json:"operating_profit"`
	OperatingProfitRate Amount        `json:"operating_profit_rate"`
	ExpenseDetail       ExpenseDetail `json:"expense_detail"`
}

// ExpenseDetail são os grupos fixos de custos, mais o detalhe livre de "outros"
type ExpenseDetail struct {
	Salary      Amount            `json:"salary"`
	Marketing   Amount            `json:"marketing"`
	Fee         Amount            `json:"fee"`
	Rent        Amount            `json:"rent"`
	Insurance   Amount            `json:"insurance"`
	Travel      Amount            `json:"travel"`
	Other       Amount            `json:"other"`
	OtherDetail map[string]Amount `json:"other_detail"`
}

// Buckets devolve os grupos fixos em ordem estável de exibição
func (e ExpenseDetail) Buckets() []NamedAmount {
	return []NamedAmount{
		{Name: "salary", Amount: e.Salary},
		{Name: "marketing", Amount: e.Marketing},
		{Name: "fee", Amount: e.Fee},
		{Name: "rent", Amount: e.Rent},
		{Name: "insurance", Amount: e.Insurance},
		{Name: "travel", Amount: e.Travel},
		{Name: "other", Amount: e.Other},
	}
}

type NamedAmount struct {
	Name   string
	Amount Amount
}

// StorePLReport é o recurso de resultado por loja (mensal ou acumulado)
type StorePLReport struct {
	Metadata ReportMetadata     `json:"metadata"`
	Stores   map[string]StorePL `json:"stores"`
}

// StorePL traz os grupos de custo da loja e os valores do ano anterior com sufixo _prev
type StorePL struct {
	StoreCode        string `json:"store_code"`
	StoreName        string `json:"store_name"`
	NetSales         Amount `json:"net_sales"`
	NetSalesPrev     Amount `json:"net_sales_prev"`
	GrossProfit      Amount `json:"gross_profit"`
	GrossProfitPrev  Amount `json:"gross_profit_prev"`
	Salary           Amount `json:"salary"`
	SalaryPrev       Amount `json:"salary_prev"`
	Marketing        Amount `json:"marketing"`
	MarketingPrev    Amount `json:"marketing_prev"`
	Fee              Amount `json:"fee"`
	FeePrev          Amount `json:"fee_prev"`
	Rent             Amount `json:"rent"`
	RentPrev         Amount `json:"rent_prev"`
	Insurance        Amount `json:"insurance"`
	InsurancePrev    Amount `json:"insurance_prev"`
	Travel           Amount `json:"travel"`
	TravelPrev       Amount `json:"travel_prev"`
	Other            Amount `json:"other"`
	OtherPrev        Amount `json:"other_prev"`
	DirectProfit     Amount `json:"direct_profit"`
	DirectProfitPrev Amount `json:"direct_profit_prev"`
}

// ExpensePair é um grupo de custo com o valor do ano anterior
type ExpensePair struct {
	Name     string
	Current  Amount
	Previous Amount
}

// Expenses devolve os grupos de custo da loja na mesma ordem de ExpenseDetail.Buckets
func (p StorePL) Expenses() []ExpensePair {
	return []ExpensePair{
		{Name: "salary", Current: p.Salary, Previous: p.SalaryPrev},
		{Name: "marketing", Current: p.Marketing, Previous: p.MarketingPrev},
		{Name: "fee", Current: p.Fee, Previous: p.FeePrev},
		{Name: "rent", Current: p.Rent, Previous: p.RentPrev},
		{Name: "insurance", Current: p.Insurance, Previous: p.InsurancePrev},
		{Name: "travel", Current: p.Travel, Previous: p.TravelPrev},
		{Name: "other", Current: p.Other, Previous: p.OtherPrev},
	}
}

// StorePLEntry junta o resultado mensal e o acumulado de uma loja
type StorePLEntry struct {
	Monthly    *StorePL `json:"monthly,omitempty"`
	Cumulative *StorePL `json:"cumulative,omitempty"`
}

// Origens do resultado usado para uma loja
const (
	StorePLCumulative = "cumulative"
	StorePLMonthly    = "monthly"
)

// Preferred devolve o acumulado e, na falta dele, o mensal. Nil quando a loja não tem resultado.
func (e StorePLEntry) Preferred() (*StorePL, string) {
	if e.Cumulative != nil {
		return e.Cumulative, StorePLCumulative
	}
	if e.Monthly != nil {
		return e.Monthly, StorePLMonthly
	}
	return nil, ""
}

// StoreStatusReport é o recurso de status das lojas (hk-store-status-<period>.json)
type StoreStatusReport struct {
	Metadata       ReportMetadata   `json:"metadata"`
	Categories     StatusCategories `json:"categories"`
	MCSummary      StatusSummary    `json:"mc_summary"`
	ExcludedStores []ExcludedStore  `json:"excluded_stores"`
	Summary        StatusSummary    `json:"summary"`
}

type StatusCategories struct {
	ProfitImproving     StatusCategory `json:"profit_improving"`
	ProfitDeteriorating StatusCategory `json:"profit_deteriorating"`
	LossImproving       StatusCategory `json:"loss_improving"`
	LossDeteriorating   StatusCategory `json:"loss_deteriorating"`
}

// All percorre as quatro categorias na ordem de exibição
func (c StatusCategories) All() []StatusCategory {
	return []StatusCategory{c.ProfitImproving, c.ProfitDeteriorating, c.LossImproving, c.LossDeteriorating}
}

type StatusCategory struct {
	Count             Amount        `json:"count"`
	TotalSales        Amount        `json:"total_sales"`
	TotalDirectProfit Amount        `json:"total_direct_profit"`
	Stores            []StoreStatus `json:"stores"`
}

// StoreStatus é a linha de loja de onde sai o StoreRecord
type StoreStatus struct {
	StoreCode        string `json:"store_code"`
	StoreName        string `json:"store_name"`
	Country          string `json:"country"`
	Channel          string `json:"channel"`
	NetSales         Amount `json:"net_sales"`
	NetSalesPrev     Amount `json:"net_sales_prev"`
	Rent             Amount `json:"rent"`
	LaborCost        Amount `json:"labor_cost"`
	DirectProfit     Amount `json:"direct_profit"`
	DirectProfitPrev Amount `json:"direct_profit_prev"`
	Yoy              Amount `json:"yoy"`
	Category         string `json:"category"`
	PrevCategory     string `json:"prev_category"`
}

type StatusSummary struct {
	TotalStores       Amount `json:"total_stores"`
	TotalSales        Amount `json:"total_sales"`
	TotalDirectProfit Amount `json:"total_direct_profit"`
}

type ExcludedStore struct {
	StoreCode string `json:"store_code"`
	StoreName string `json:"store_name"`
	Reason    string `json:"reason"`
}

// CEOInsights é consumido de forma opaca
type CEOInsights map[string]any
