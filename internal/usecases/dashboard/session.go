package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
	"github.com/vfg2006/hk-dashboard-api/pkg/log"
	"github.com/vfg2006/hk-dashboard-api/pkg/utils"
)

// SessionState é o retrato do período ativo
type SessionState struct {
	Period  domain.PeriodKey `json:"period"`
	Ticket  string           `json:"ticket"`
	Loading bool             `json:"loading"`
	Error   string           `json:"error,omitempty"`
	View    *View            `json:"view,omitempty"`
}

// Selector é a sessão vista pela API e pelo agendador
type Selector interface {
	Select(ctx context.Context, period domain.PeriodKey) (*View, error)
	Reload(ctx context.Context) (*View, error)
	State() SessionState
	Active() domain.PeriodKey
}

// Session guarda o período selecionado. Cada seleção recebe um ticket novo e
// cancela a carga anterior; resultados com ticket antigo são descartados.
type Session struct {
	dashboard Dashboarder

	mu      sync.Mutex
	period  domain.PeriodKey
	ticket  string
	cancel  context.CancelFunc
	loading bool
	view    *View
	err     error
}

func NewSession(dashboard Dashboarder) *Session {
	return &Session{
		dashboard: dashboard,
	}
}

// Select troca o período ativo e espera a carga terminar
func (s *Session) Select(ctx context.Context, period domain.PeriodKey) (*View, error) {
	return s.run(ctx, period, s.dashboard.Get)
}

// Reload recarrega o período ativo ignorando a memória. Não interrompe uma
// seleção em andamento: nesse caso devolve ErrLoadInProgress.
func (s *Session) Reload(ctx context.Context) (*View, error) {
	s.mu.Lock()
	period, loading := s.period, s.loading
	s.mu.Unlock()

	if period.IsZero() {
		return nil, ErrNoActivePeriod
	}
	if loading {
		return nil, ErrLoadInProgress
	}

	return s.run(ctx, period, s.dashboard.Refresh)
}

func (s *Session) run(ctx context.Context, period domain.PeriodKey, fetch func(context.Context, domain.PeriodKey) (*View, error)) (*View, error) {
	ticket, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("dashboard: erro ao gerar ticket da seleção: %w", err)
	}

	// A carga não depende da requisição que a iniciou, apenas da próxima seleção
	loadCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.period = period
	s.ticket = ticket
	s.cancel = cancel
	s.loading = true
	s.mu.Unlock()

	view, err := fetch(loadCtx, period)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticket != ticket {
		log.ForContext(ctx).WithField("period", period.String()).Info("dashboard: resultado descartado, período substituído")
		return nil, ErrSuperseded
	}

	cancel()
	s.cancel = nil
	s.loading = false

	if err != nil {
		s.err = err
		return nil, err
	}

	s.view = view
	s.err = nil

	return view, nil
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := SessionState{
		Period:  s.period,
		Ticket:  s.ticket,
		Loading: s.loading,
	}

	// A visão só é exposta se corresponde ao período ativo
	if s.view != nil && s.view.Period == s.period {
		state.View = s.view
	}
	if s.err != nil {
		state.Error = s.err.Error()
	}

	return state
}

func (s *Session) Active() domain.PeriodKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period
}
