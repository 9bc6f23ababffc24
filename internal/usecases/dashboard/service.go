package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/acquiring"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/classifying"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/deriving"
	"github.com/vfg2006/hk-dashboard-api/pkg/log"
)

// View é o modelo completo entregue ao cliente para um período
type View struct {
	Period      domain.PeriodKey           `json:"period"`
	Status      domain.BundleStatus        `json:"status"`
	LoadedAt    time.Time                  `json:"loaded_at"`
	Alerts      []domain.Alert             `json:"alerts"`
	Missing     []domain.Resource          `json:"missing"`
	Sources     map[domain.Resource]string `json:"sources"`
	Derived     *deriving.Derived          `json:"derived"`
	Classified  *classifying.Classified    `json:"classified"`
	CEOInsights domain.CEOInsights         `json:"ceo_insights"`
}

// Available é falso quando a tela deve exibir o estado persistente de dados indisponíveis
func (v *View) Available() bool {
	return v != nil && v.Status != domain.BundleUnavailable
}

type Dashboarder interface {
	// Get devolve a visão memorizada do período, carregando na primeira chamada
	Get(ctx context.Context, period domain.PeriodKey) (*View, error)
	// Refresh descarta a memória do período e carrega de novo
	Refresh(ctx context.Context, period domain.PeriodKey) (*View, error)
	Invalidate(period domain.PeriodKey)
}

type Service struct {
	loader     acquiring.Loader
	deriver    *deriving.Service
	classifier *classifying.Service

	mu    sync.RWMutex
	views map[domain.PeriodKey]*View
}

func NewService(loader acquiring.Loader, deriver *deriving.Service, classifier *classifying.Service) *Service {
	return &Service{
		loader:     loader,
		deriver:    deriver,
		classifier: classifier,
		views:      map[domain.PeriodKey]*View{},
	}
}

func (s *Service) Get(ctx context.Context, period domain.PeriodKey) (*View, error) {
	s.mu.RLock()
	view, ok := s.views[period]
	s.mu.RUnlock()

	if ok {
		return view, nil
	}

	return s.load(ctx, period)
}

func (s *Service) Refresh(ctx context.Context, period domain.PeriodKey) (*View, error) {
	return s.load(ctx, period)
}

func (s *Service) Invalidate(period domain.PeriodKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, period)
}

// load executa as três etapas e só memoriza visões utilizáveis, para que um
// período indisponível seja tentado de novo na próxima chamada
func (s *Service) load(ctx context.Context, period domain.PeriodKey) (*View, error) {
	bundle, err := s.loader.Load(ctx, period)
	if err != nil {
		return nil, err
	}

	view := s.Build(bundle)

	if view.Available() {
		s.mu.Lock()
		s.views[period] = view
		s.mu.Unlock()
	} else {
		log.ForContext(ctx).WithField("period", period.String()).Warn("dashboard: período indisponível, visão não memorizada")
	}

	return view, nil
}

// Build monta a visão a partir de um Bundle já carregado
func (s *Service) Build(bundle *domain.Bundle) *View {
	sources := bundle.Sources
	if sources == nil {
		sources = map[domain.Resource]string{}
	}

	alerts := bundle.Alerts
	if alerts == nil {
		alerts = []domain.Alert{}
	}

	insights := bundle.CEOInsights
	if insights == nil {
		insights = domain.CEOInsights{}
	}

	return &View{
		Period:      bundle.Period,
		Status:      bundle.Status(),
		LoadedAt:    bundle.LoadedAt,
		Alerts:      alerts,
		Missing:     bundle.Missing(),
		Sources:     sources,
		Derived:     s.deriver.Derive(bundle),
		Classified:  s.classifier.Classify(bundle),
		CEOInsights: insights,
	}
}
