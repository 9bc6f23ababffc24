package domain

import (
	"math"
	"sort"

	"github.com/vfg2006/hk-dashboard-api/pkg/utils"
)

// DiscountRate = (tag - net) / tag * 100, zero quando não há venda de etiqueta
func DiscountRate(tagSales, netSales float64) float64 {
	if tagSales <= 0 {
		return 0
	}
	return (tagSales - netSales) / tagSales * 100
}

// ProfitRate é usado para margem bruta, direta, operacional e custo da mercadoria sobre a venda líquida
func ProfitRate(value, netSales float64) float64 {
	if netSales <= 0 {
		return 0
	}
	return value / netSales * 100
}

// YOYState distingue o percentual numérico dos casos especiais
type YOYState string

const (
	YOYNumeric        YOYState = "numeric"
	YOYTurnedPositive YOYState = "turned_positive"
	YOYNotApplicable  YOYState = "not_applicable"
)

// YOY é a comparação com o mesmo período do ano anterior
type YOY struct {
	State YOYState `json:"state"`
	Value *float64 `json:"value,omitempty"`
}

// Percent devolve o valor numérico quando existe
func (y YOY) Percent() (float64, bool) {
	if y.State != YOYNumeric || y.Value == nil {
		return 0, false
	}
	return *y.Value, true
}

// Label é o texto exibido no card
func (y YOY) Label() string {
	switch y.State {
	case YOYTurnedPositive:
		return "turned positive"
	case YOYNumeric:
		if y.Value != nil {
			return utils.FormatPercent(*y.Value, 1)
		}
	}
	return Placeholder
}

// ComputeYOY compara o valor atual com o do ano anterior.
//
// prev > 0: percentual cur/prev*100.
// prev <= 0 e cur >= 0: virou positivo (nunca um percentual enorme ou negativo).
// ambos negativos: razão com sinal, prejuízo que diminui fica abaixo de 100.
// prev == 0 e cur < 0: não aplicável.
func ComputeYOY(current, previous float64) YOY {
	if previous > 0 {
		return numericYOY(current / previous * 100)
	}

	if current >= 0 {
		return YOY{State: YOYTurnedPositive}
	}

	if previous == 0 {
		return YOY{State: YOYNotApplicable}
	}

	return numericYOY(current / previous * 100)
}

// ComputeAmountYOY só compara quando os dois lados existem
func ComputeAmountYOY(current, previous Amount) YOY {
	if !current.Valid || !previous.Valid {
		return YOY{State: YOYNotApplicable}
	}
	return ComputeYOY(current.Value, previous.Value)
}

// YOYFromSource usa o percentual já calculado pelo pipeline quando presente
func YOYFromSource(source Amount, current, previous Amount) YOY {
	if source.Valid && !math.IsNaN(source.Value) && !math.IsInf(source.Value, 0) {
		if previous.Valid && previous.Value <= 0 && current.Valid && current.Value >= 0 {
			return YOY{State: YOYTurnedPositive}
		}
		return numericYOY(source.Value)
	}
	return ComputeAmountYOY(current, previous)
}

func numericYOY(v float64) YOY {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return YOY{State: YOYNotApplicable}
	}
	return YOY{State: YOYNumeric, Value: &v}
}

// WeightedAverage pondera cada valor pelo módulo do peso (venda da loja).
// Sem peso total devolve zero.
func WeightedAverage(values, weights []float64) float64 {
	n := len(values)
	if len(weights) < n {
		n = len(weights)
	}

	var sum, total float64
	for i := 0; i < n; i++ {
		w := math.Abs(weights[i])
		sum += values[i] * w
		total += w
	}

	if total == 0 {
		return 0
	}
	return sum / total
}

// AreaSales é a entrada do cálculo de eficiência por área
type AreaSales struct {
	Code     string
	NetSales float64
	Area     float64
	Closed   bool
}

// SalesPerArea devolve a venda por unidade de área, indefinida quando não há área
func (a AreaSales) SalesPerArea() (float64, bool) {
	if a.Area <= 0 {
		return 0, false
	}
	return a.NetSales / a.Area, true
}

// ExcludedFromArea: loja fechada com venda por área abaixo do limite (ou sem área)
func (a AreaSales) ExcludedFromArea(threshold float64) bool {
	if !a.Closed {
		return false
	}
	perArea, ok := a.SalesPerArea()
	return !ok || perArea < threshold
}

// AreaEfficiency = (soma das vendas / soma das áreas) / dias decorridos.
// Lojas fechadas com atividade desprezível não entram no denominador de área.
// O resultado não depende da ordem das lojas.
func AreaEfficiency(stores []AreaSales, elapsedDays int, closedThreshold float64) float64 {
	if elapsedDays <= 0 {
		return 0
	}

	// Soma em ordem fixa de código para que o resultado seja idêntico em qualquer ordem de entrada
	sorted := append([]AreaSales(nil), stores...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Code != sorted[j].Code {
			return sorted[i].Code < sorted[j].Code
		}
		return sorted[i].NetSales < sorted[j].NetSales
	})

	var sales, area float64
	for _, s := range sorted {
		sales += s.NetSales
		if s.ExcludedFromArea(closedThreshold) {
			continue
		}
		if s.Area > 0 {
			area += s.Area
		}
	}

	if area <= 0 {
		return 0
	}
	return sales / area / float64(elapsedDays)
}
