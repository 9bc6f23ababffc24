// Package viewstate concentra o estado de tela do dashboard em um único registro
// alterado apenas por Reduce.
package viewstate

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/classifying"
)

var ErrInvalidAction = errors.New("ação de tela inválida")

// Section é um bloco expansível da tela
type Section string

const (
	SectionSales     Section = "sales"
	SectionChannels  Section = "channels"
	SectionSeasons   Section = "seasons"
	SectionInventory Section = "inventory"
	SectionPL        Section = "pl"
	SectionStores    Section = "stores"
	SectionMonthly   Section = "monthly"
)

var Sections = []Section{
	SectionSales,
	SectionChannels,
	SectionSeasons,
	SectionInventory,
	SectionPL,
	SectionStores,
	SectionMonthly,
}

func parseSection(s string) (Section, bool) {
	for _, section := range Sections {
		if string(section) == s {
			return section, true
		}
	}
	return "", false
}

// State nunca é alterado no lugar: Reduce devolve uma cópia
type State struct {
	Category domain.StoreCategory `json:"category"`
	Expanded map[Section]bool     `json:"expanded"`
	Series   []string             `json:"series"`
}

func Initial() State {
	return State{
		Category: domain.CategoryUnknown,
		Expanded: map[Section]bool{},
		Series:   []string{},
	}
}

func (s State) clone() State {
	out := State{
		Category: s.Category,
		Expanded: make(map[Section]bool, len(s.Expanded)),
		Series:   append([]string{}, s.Series...),
	}
	for k, v := range s.Expanded {
		out.Expanded[k] = v
	}
	return out
}

func (s State) IsExpanded(section Section) bool {
	return s.Expanded[section]
}

func (s State) HasSeries(key string) bool {
	for _, selected := range s.Series {
		if selected == key {
			return true
		}
	}
	return false
}

// FilterStores mantém só as lojas da categoria selecionada; sem seleção devolve todas
func (s State) FilterStores(rows []classifying.StoreRow) []classifying.StoreRow {
	if s.Category == domain.CategoryUnknown {
		return rows
	}

	filtered := make([]classifying.StoreRow, 0, len(rows))
	for _, row := range rows {
		if row.Category == s.Category {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// FilterSeries mantém só as séries selecionadas; sem seleção devolve todas
func (s State) FilterSeries(series []domain.MonthlySeries) []domain.MonthlySeries {
	if len(s.Series) == 0 {
		return series
	}

	filtered := make([]domain.MonthlySeries, 0, len(s.Series))
	for _, serie := range series {
		if s.HasSeries(serie.Key) {
			filtered = append(filtered, serie)
		}
	}
	return filtered
}

// FromQuery reconstrói o estado a partir da query string:
// ?category=profit_improving&expand=stores,inventory&series=HK-Retail
func FromQuery(query url.Values) (State, error) {
	state := Initial()
	actions := make([]Action, 0)

	if category := strings.TrimSpace(query.Get("category")); category != "" {
		actions = append(actions, SelectCategory(domain.StoreCategory(category)))
	}

	for _, raw := range splitValues(query["expand"]) {
		actions = append(actions, Expand(Section(raw)))
	}

	for _, raw := range splitValues(query["series"]) {
		actions = append(actions, ToggleSeries(raw))
	}

	for _, action := range actions {
		next, err := Reduce(state, action)
		if err != nil {
			return Initial(), err
		}
		state = next
	}

	return state, nil
}

func splitValues(values []string) []string {
	out := make([]string, 0)
	seen := map[string]struct{}{}
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, ok := seen[part]; ok {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}
	return out
}

// ExpandedSections lista as seções abertas em ordem estável
func (s State) ExpandedSections() []Section {
	out := make([]Section, 0, len(s.Expanded))
	for section, open := range s.Expanded {
		if open {
			out = append(out, section)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s State) String() string {
	return fmt.Sprintf("category=%q expanded=%v series=%v", s.Category, s.ExpandedSections(), s.Series)
}
