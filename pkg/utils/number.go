package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundTo arredonda sem os artefatos de ponto flutuante (ex: 18.745 -> 18.75)
func RoundTo(f float64, places int32) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	rounded, _ := decimal.NewFromFloat(f).Round(places).Float64()
	return rounded
}

// FormatPercent formata com casas fixas e sufixo %, ex: 18.75%
func FormatPercent(f float64, places int32) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "-"
	}
	return decimal.NewFromFloat(f).StringFixed(places) + "%"
}
