package domain

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Amount é um valor numérico opcional vindo dos arquivos JSON.
// A ausência (campo faltante ou null) é preservada até a etapa de derivação.
type Amount struct {
	Value float64
	Valid bool
}

// Some cria um Amount presente
func Some(v float64) Amount {
	return Amount{Value: v, Valid: true}
}

// None representa um valor ausente
var None = Amount{}

// OrZero é o único ponto em que a ausência vira zero
func (a Amount) OrZero() float64 {
	if !a.Valid {
		return 0
	}
	return a.Value
}

// Or retorna o valor presente ou o fallback informado
func (a Amount) Or(fallback float64) float64 {
	if !a.Valid {
		return fallback
	}
	return a.Value
}

// Ptr é útil para respostas JSON em que ausência deve virar null
func (a Amount) Ptr() *float64 {
	if !a.Valid {
		return nil
	}
	v := a.Value
	return &v
}

// MarshalJSON escreve null para ausência e para valores não finitos
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid || math.IsNaN(a.Value) || math.IsInf(a.Value, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, a.Value, 'f', -1, 64), nil
}

// UnmarshalJSON aceita número, null ou string numérica (o pipeline às vezes gera "1234.5")
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = None
		return nil
	}

	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("amount: string inválida %s: %w", data, err)
		}
		if s == "" || s == "-" || s == "N/A" {
			*a = None
			return nil
		}
		data = []byte(s)
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if errors.Is(err, strconv.ErrRange) {
		// Fora da faixa de float64 vira ausente
		*a = None
		return nil
	}
	if err != nil {
		return fmt.Errorf("amount: valor inválido %s: %w", data, err)
	}

	// "NaN" e "Inf" são aceitos pelo ParseFloat mas não são valores de relatório
	if math.IsNaN(v) || math.IsInf(v, 0) {
		*a = None
		return nil
	}

	*a = Some(v)
	return nil
}
