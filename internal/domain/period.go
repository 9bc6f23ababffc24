// Package domain contém as estruturas de dados e as regras de negócio puras do dashboard
package domain

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidPeriod indica um período fora do formato YYMM
var ErrInvalidPeriod = errors.New("período inválido")

// PeriodKey identifica um ano/mês fiscal no formato YYMM (ex: 2511 = novembro de 2025)
type PeriodKey struct {
	year  int
	month time.Month
}

// ParsePeriod valida e converte um token YYMM
func ParsePeriod(s string) (PeriodKey, error) {
	if len(s) != 4 {
		return PeriodKey{}, fmt.Errorf("%w: %q deve ter 4 dígitos", ErrInvalidPeriod, s)
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return PeriodKey{}, fmt.Errorf("%w: %q contém caracteres não numéricos", ErrInvalidPeriod, s)
		}
	}

	yy, _ := strconv.Atoi(s[:2])
	mm, _ := strconv.Atoi(s[2:])
	if mm < 1 || mm > 12 {
		return PeriodKey{}, fmt.Errorf("%w: mês %02d fora do intervalo 01-12", ErrInvalidPeriod, mm)
	}

	return PeriodKey{year: 2000 + yy, month: time.Month(mm)}, nil
}

// MustParsePeriod é usado em testes e constantes conhecidas
func MustParsePeriod(s string) PeriodKey {
	p, err := ParsePeriod(s)
	if err != nil {
		panic(err)
	}
	return p
}

// PeriodFromTime retorna o período do mês da data informada
func PeriodFromTime(t time.Time) PeriodKey {
	return PeriodKey{year: t.Year(), month: t.Month()}
}

func (p PeriodKey) Year() int {
	return p.year
}

func (p PeriodKey) Month() time.Month {
	return p.month
}

func (p PeriodKey) IsZero() bool {
	return p.year == 0
}

func (p PeriodKey) String() string {
	if p.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d%02d", p.year%100, int(p.month))
}

// PreviousYear retorna o mesmo mês do ano anterior
func (p PeriodKey) PreviousYear() PeriodKey {
	return PeriodKey{year: p.year - 1, month: p.month}
}

// ElapsedDays soma os dias de cada mês de janeiro até o mês do período, inclusive
func (p PeriodKey) ElapsedDays() int {
	if p.IsZero() {
		return 0
	}

	days := 0
	for m := time.January; m <= p.month; m++ {
		days += DaysInMonth(p.year, m)
	}
	return days
}

// DaysInMonth usa o calendário gregoriano padrão
func DaysInMonth(year int, month time.Month) int {
	// Dia zero do mês seguinte é o último dia do mês atual
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (p PeriodKey) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

func (p *PeriodKey) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPeriod, data)
	}

	parsed, err := ParsePeriod(s)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}
