package domain

import (
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MonthlyPoint é uma linha mensal: {"period": "2501", "HK Retail": 123.4, ...}
type MonthlyPoint struct {
	Period string
	Values map[string]Amount
}

func (p *MonthlyPoint) UnmarshalJSON(data []byte) error {
	raw := map[string]jsoniter.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("monthly point: %w", err)
	}

	p.Values = make(map[string]Amount, len(raw))
	for key, value := range raw {
		if key == "period" || key == "month" {
			var period string
			if err := json.Unmarshal(value, &period); err != nil {
				return fmt.Errorf("monthly point: período inválido %s: %w", value, err)
			}
			p.Period = period
			continue
		}

		var amount Amount
		if err := amount.UnmarshalJSON(value); err != nil {
			// Campos não numéricos (rótulos) são ignorados
			continue
		}
		p.Values[key] = amount
	}

	return nil
}

func (p MonthlyPoint) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Values)+1)
	out["period"] = p.Period
	for k, v := range p.Values {
		out[k] = v
	}
	return json.Marshal(out)
}

// MonthlySeries é a sequência jan..mês atual de uma categoria com o YOY de mesmo tamanho
type MonthlySeries struct {
	Key     string   `json:"key"`
	Periods []string `json:"periods"`
	Values  []Amount `json:"values"`
	Yoy     []Amount `json:"yoy"`
}

// BuildMonthlySeries monta uma série por categoria. O YOY é cortado ou completado
// com ausentes para ter o mesmo tamanho dos valores.
func BuildMonthlySeries(points []MonthlyPoint, yoy map[string][]Amount) []MonthlySeries {
	keys := map[string]struct{}{}
	for _, p := range points {
		for k := range p.Values {
			keys[k] = struct{}{}
		}
	}
	for k := range yoy {
		keys[k] = struct{}{}
	}

	sortedKeys := make([]string, 0, len(keys))
	for k := range keys {
		sortedKeys = append(sortedKeys, k)
	}
	sort.Strings(sortedKeys)

	periods := make([]string, len(points))
	for i, p := range points {
		periods[i] = p.Period
	}

	series := make([]MonthlySeries, 0, len(sortedKeys))
	for _, key := range sortedKeys {
		values := make([]Amount, len(points))
		for i, p := range points {
			values[i] = p.Values[key]
		}

		yoyValues := make([]Amount, len(points))
		copy(yoyValues, yoy[key])

		series = append(series, MonthlySeries{
			Key:     key,
			Periods: periods,
			Values:  values,
			Yoy:     yoyValues,
		})
	}

	return series
}
