package domain

// Placeholder é exibido quando o valor não se aplica (nunca 0 ou infinito)
const Placeholder = "-"

// DefaultStagnantThreshold: venda bruta abaixo de 5% do valor de etiqueta do estoque
const DefaultStagnantThreshold = 0.05

// StoreCategory é um dos quatro grupos de lucro x crescimento
type StoreCategory string

const (
	CategoryProfitGrowing   StoreCategory = "profit_improving"
	CategoryProfitDeclining StoreCategory = "profit_deteriorating"
	CategoryLossGrowing     StoreCategory = "loss_improving"
	CategoryLossDeclining   StoreCategory = "loss_deteriorating"
	CategoryUnknown         StoreCategory = ""
)

// StoreCategories na ordem de exibição
var StoreCategories = []StoreCategory{
	CategoryProfitGrowing,
	CategoryProfitDeclining,
	CategoryLossGrowing,
	CategoryLossDeclining,
}

// ParseStoreCategory aceita os rótulos do arquivo de status; rótulos desconhecidos viram CategoryUnknown
func ParseStoreCategory(s string) StoreCategory {
	for _, c := range StoreCategories {
		if string(c) == s {
			return c
		}
	}
	return CategoryUnknown
}

func (c StoreCategory) IsProfit() bool {
	return c == CategoryProfitGrowing || c == CategoryProfitDeclining
}

func (c StoreCategory) IsGrowing() bool {
	return c == CategoryProfitGrowing || c == CategoryLossGrowing
}

// ClassifyStore: lucro direto >= 0 é lucro, YOY >= 100 é crescimento (limites inclusivos)
func ClassifyStore(directProfit, yoy float64) StoreCategory {
	profit := directProfit >= 0
	growing := yoy >= 100

	switch {
	case profit && growing:
		return CategoryProfitGrowing
	case profit:
		return CategoryProfitDeclining
	case growing:
		return CategoryLossGrowing
	default:
		return CategoryLossDeclining
	}
}

// ClassifyStoreYOY trata os estados especiais de YOY: virou positivo conta como crescimento
func ClassifyStoreYOY(directProfit float64, yoy YOY) StoreCategory {
	switch yoy.State {
	case YOYTurnedPositive:
		return ClassifyStore(directProfit, 100)
	case YOYNumeric:
		v, _ := yoy.Percent()
		return ClassifyStore(directProfit, v)
	default:
		return ClassifyStore(directProfit, 0)
	}
}

// CategoryTransition descreve a mudança de grupo em relação ao período anterior
type CategoryTransition struct {
	From    StoreCategory `json:"from"`
	To      StoreCategory `json:"to"`
	Changed bool          `json:"changed"`
}

func NewCategoryTransition(from, to StoreCategory) CategoryTransition {
	return CategoryTransition{
		From:    from,
		To:      to,
		Changed: from != CategoryUnknown && from != to,
	}
}

// StoreRecord é a loja física com os números do período atual e anterior
type StoreRecord struct {
	Code             string        `json:"code"`
	Name             string        `json:"name"`
	Country          string        `json:"country"`
	Channel          string        `json:"channel"`
	NetSales         float64       `json:"net_sales"`
	NetSalesPrev     float64       `json:"net_sales_prev"`
	Rent             float64       `json:"rent"`
	LaborCost        float64       `json:"labor_cost"`
	DirectProfit     float64       `json:"direct_profit"`
	DirectProfitPrev float64       `json:"direct_profit_prev"`
	Yoy              YOY           `json:"yoy"`
	Area             float64       `json:"area"`
	Closed           bool          `json:"closed"`
	Category         StoreCategory `json:"category"`
	PrevCategory     StoreCategory `json:"prev_category"`
}

// RentRatio e LaborRatio são percentuais sobre a venda líquida da loja
func (s StoreRecord) RentRatio() float64 {
	return ProfitRate(s.Rent, s.NetSales)
}

func (s StoreRecord) LaborRatio() float64 {
	return ProfitRate(s.LaborCost, s.NetSales)
}

// InventoryLine é uma linha subcategoria x temporada
type InventoryLine struct {
	Subcategory     string  `json:"subcategory"`
	SubcategoryName string  `json:"subcategory_name"`
	Season          string  `json:"season"`
	StockPrice      float64 `json:"stock_price"`
	GrossSales      float64 `json:"gross_sales"`
	NetSales        float64 `json:"net_sales"`
}

// DiscountRate da linha, derivado da venda bruta e líquida
func (l InventoryLine) DiscountRate() float64 {
	return DiscountRate(l.GrossSales, l.NetSales)
}

// StockDays = estoque / venda bruta * 30, só quando há venda bruta
func (l InventoryLine) StockDays() (float64, bool) {
	if l.GrossSales <= 0 {
		return 0, false
	}
	return l.StockPrice / l.GrossSales * 30, true
}

// IsStagnant avalia cada linha isoladamente: venda bruta < estoque * limite.
// Linhas sem estoque positivo ficam fora da população.
func (l InventoryLine) IsStagnant(threshold float64) bool {
	if l.StockPrice <= 0 {
		return false
	}
	return l.GrossSales < l.StockPrice*threshold
}

// NewInventoryLine converte a linha bruta no limite da derivação
func NewInventoryLine(item InventoryItem) InventoryLine {
	return InventoryLine{
		Subcategory:     item.Subcategory,
		SubcategoryName: item.SubcategoryName,
		Season:          item.Season,
		StockPrice:      item.StockPrice.OrZero(),
		GrossSales:      item.GrossSales.OrZero(),
		NetSales:        item.NetSales.OrZero(),
	}
}
