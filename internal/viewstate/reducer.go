package viewstate

import (
	"fmt"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

type ActionType string

const (
	ActionSelectCategory ActionType = "select_category"
	ActionClearCategory  ActionType = "clear_category"
	ActionToggleSection  ActionType = "toggle_section"
	ActionExpand         ActionType = "expand"
	ActionCollapseAll    ActionType = "collapse_all"
	ActionToggleSeries   ActionType = "toggle_series"
	ActionClearSeries    ActionType = "clear_series"
	ActionReset          ActionType = "reset"
)

type Action struct {
	Type     ActionType
	Category domain.StoreCategory
	Section  Section
	Series   string
}

func SelectCategory(category domain.StoreCategory) Action {
	return Action{Type: ActionSelectCategory, Category: category}
}

func ToggleSection(section Section) Action {
	return Action{Type: ActionToggleSection, Section: section}
}

func Expand(section Section) Action {
	return Action{Type: ActionExpand, Section: section}
}

func ToggleSeries(key string) Action {
	return Action{Type: ActionToggleSeries, Series: key}
}

// Reduce aplica uma ação e devolve o novo estado; o estado recebido não é alterado.
// Selecionar de novo a categoria ativa limpa a seleção, como um clique no mesmo cartão.
func Reduce(state State, action Action) (State, error) {
	next := state.clone()

	switch action.Type {
	case ActionSelectCategory:
		category := domain.ParseStoreCategory(string(action.Category))
		if category == domain.CategoryUnknown {
			return state, fmt.Errorf("%w: categoria %q", ErrInvalidAction, action.Category)
		}
		if next.Category == category {
			next.Category = domain.CategoryUnknown
		} else {
			next.Category = category
		}

	case ActionClearCategory:
		next.Category = domain.CategoryUnknown

	case ActionToggleSection, ActionExpand:
		section, ok := parseSection(string(action.Section))
		if !ok {
			return state, fmt.Errorf("%w: seção %q", ErrInvalidAction, action.Section)
		}
		if action.Type == ActionExpand {
			next.Expanded[section] = true
		} else {
			next.Expanded[section] = !next.Expanded[section]
		}

	case ActionCollapseAll:
		next.Expanded = map[Section]bool{}

	case ActionToggleSeries:
		if action.Series == "" {
			return state, fmt.Errorf("%w: série vazia", ErrInvalidAction)
		}
		if next.HasSeries(action.Series) {
			series := make([]string, 0, len(next.Series))
			for _, key := range next.Series {
				if key != action.Series {
					series = append(series, key)
				}
			}
			next.Series = series
		} else {
			next.Series = append(next.Series, action.Series)
		}

	case ActionClearSeries:
		next.Series = []string{}

	case ActionReset:
		return Initial(), nil

	default:
		return state, fmt.Errorf("%w: %q", ErrInvalidAction, action.Type)
	}

	return next, nil
}
