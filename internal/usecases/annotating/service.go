// Package annotating guarda os comentários do editor (insights do CEO, análises e data do relatório)
package annotating

import (
	"context"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/hk-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/hk-dashboard-api/internal/domain"
	"github.com/vfg2006/hk-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Annotations é tudo que o editor escreveu para um período
type Annotations struct {
	Period        domain.PeriodKey  `json:"period"`
	Insights      map[string]string `json:"insights"`
	StoreAnalysis *string           `json:"store_analysis"`
	YOYSummary    *string           `json:"yoy_summary"`
	ReportDate    *string           `json:"report_date"`
}

type Annotator interface {
	Get(ctx context.Context, period domain.PeriodKey) (*Annotations, error)
	SetInsight(ctx context.Context, period domain.PeriodKey, itemID string, text string) error
	SetText(ctx context.Context, period domain.PeriodKey, kind Kind, text string) error
	SetReportDate(ctx context.Context, date string) error
}

type Service struct {
	repo repository.AnnotationRepository
}

func NewService(repo repository.AnnotationRepository) Annotator {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Get(ctx context.Context, period domain.PeriodKey) (*Annotations, error) {
	keys := []string{InsightsKey(period), StoreAnalysisKey(period), YOYSummaryKey(period), ReportDateKey}

	values, err := s.repo.GetMany(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar anotações do período %s: %w", period, err)
	}

	logger := log.ForContext(ctx).WithField("period", period.String())

	annotations := &Annotations{
		Period:   period,
		Insights: map[string]string{},
	}

	if raw, ok := values[InsightsKey(period)]; ok {
		insights, err := decodeInsights(raw)
		if err != nil {
			// Um valor ilegível não impede a leitura das demais anotações
			logger.WithError(err).Warn("Insights do CEO ignorados")
		} else {
			annotations.Insights = insights
		}
	}

	annotations.StoreAnalysis = decodeOptionalText(logger, values, StoreAnalysisKey(period))
	annotations.YOYSummary = decodeOptionalText(logger, values, YOYSummaryKey(period))
	annotations.ReportDate = decodeOptionalText(logger, values, ReportDateKey)

	return annotations, nil
}

// SetInsight substitui o texto de um único item mantendo os demais. A leitura
// e a escrita do mapa acontecem juntas no repositório, então dois editores
// salvando itens diferentes do mesmo período não perdem textos.
func (s *Service) SetInsight(ctx context.Context, period domain.PeriodKey, itemID string, text string) error {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return ErrMissingItemID
	}

	err := s.repo.Update(ctx, InsightsKey(period), func(raw string, found bool) (string, error) {
		insights := map[string]string{}
		if found {
			current, err := decodeInsights(raw)
			if err != nil {
				log.ForContext(ctx).WithError(err).Warn("Insights anteriores ilegíveis serão sobrescritos")
			} else {
				insights = current
			}
		}

		insights[itemID] = text

		encoded, err := json.Marshal(insights)
		if err != nil {
			return "", fmt.Errorf("erro ao codificar insights: %w", err)
		}
		return string(encoded), nil
	})
	if err != nil {
		return fmt.Errorf("erro ao gravar insight do período %s: %w", period, err)
	}

	return nil
}

func (s *Service) SetText(ctx context.Context, period domain.PeriodKey, kind Kind, text string) error {
	if _, err := ParseKind(string(kind)); err != nil {
		return err
	}
	return s.setString(ctx, kind.key(period), text)
}

func (s *Service) SetReportDate(ctx context.Context, date string) error {
	return s.setString(ctx, ReportDateKey, date)
}

func (s *Service) setString(ctx context.Context, key string, text string) error {
	encoded, err := json.Marshal(text)
	if err != nil {
		return fmt.Errorf("erro ao codificar anotação %s: %w", key, err)
	}
	return s.repo.Set(ctx, key, string(encoded))
}

func decodeInsights(raw string) (map[string]string, error) {
	insights := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptValue, err)
	}
	if insights == nil {
		insights = map[string]string{}
	}
	return insights, nil
}

func decodeOptionalText(logger log.Logger, values map[string]string, key string) *string {
	raw, ok := values[key]
	if !ok {
		return nil
	}

	var text string
	if err := json.Unmarshal([]byte(raw), &text); err != nil {
		logger.WithError(err).Warnf("Anotação %s ignorada: %v", key, ErrCorruptValue)
		return nil
	}
	return &text
}
