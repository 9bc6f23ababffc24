package annotating

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/hk-dashboard-api/infrastructure/database"
	"github.com/vfg2006/hk-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/hk-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/hk-dashboard-api/internal/config"
	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

var period = domain.MustParsePeriod("2511")

func newSQLiteService(t *testing.T) Annotator {
	t.Helper()

	conn, err := database.NewConnection(context.Background(), config.Database{Driver: database.DriverSQLite, DSN: "file::memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewService(repository.NewAnnotationRepository(conn))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "ceo-insights-2511", InsightsKey(period))
	assert.Equal(t, "hk_store_ai_analysis_2511", StoreAnalysisKey(period))
	assert.Equal(t, "hk_yoy_trend_summary_2511", YOYSummaryKey(period))
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("yoy-summary")
	require.NoError(t, err)
	assert.Equal(t, KindYOYSummary, kind)

	_, err = ParseKind("outro")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestService_RoundTripIsByteIdentical(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	texts := map[string]string{
		"sales":     "Vendas <HK> & \"Macau\"\n  • crescimento de 12%\t",
		"inventory": "中文 😀 \\ fim ",
	}
	for item, text := range texts {
		require.NoError(t, svc.SetInsight(ctx, period, item, text))
	}

	analysis := "Análise das lojas\r\ncom espaços  "
	require.NoError(t, svc.SetText(ctx, period, KindStoreAnalysis, analysis))
	require.NoError(t, svc.SetReportDate(ctx, "2025-12-05"))

	got, err := svc.Get(ctx, period)
	require.NoError(t, err)

	for item, text := range texts {
		assert.Equal(t, []byte(text), []byte(got.Insights[item]))
	}
	require.NotNil(t, got.StoreAnalysis)
	assert.Equal(t, []byte(analysis), []byte(*got.StoreAnalysis))
	assert.Nil(t, got.YOYSummary)
	require.NotNil(t, got.ReportDate)
	assert.Equal(t, "2025-12-05", *got.ReportDate)
}

func TestService_PeriodsAreIsolated(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetInsight(ctx, period, "sales", "novembro"))
	require.NoError(t, svc.SetText(ctx, period, KindYOYSummary, "resumo"))

	other, err := svc.Get(ctx, domain.MustParsePeriod("2510"))
	require.NoError(t, err)
	assert.Empty(t, other.Insights)
	assert.Nil(t, other.YOYSummary)
}

func TestService_SetInsightKeepsOtherItems(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetInsight(ctx, period, "sales", "primeiro"))
	require.NoError(t, svc.SetInsight(ctx, period, "pl", "segundo"))
	require.NoError(t, svc.SetInsight(ctx, period, "sales", "atualizado"))

	got, err := svc.Get(ctx, period)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"sales": "atualizado", "pl": "segundo"}, got.Insights)
}

func TestService_ConcurrentInsightsAreNotLost(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	const editors = 20

	var wg sync.WaitGroup
	errs := make(chan error, editors)
	for i := 0; i < editors; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- svc.SetInsight(ctx, period, fmt.Sprintf("item-%d", i), fmt.Sprintf("texto %d", i))
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	got, err := svc.Get(ctx, period)
	require.NoError(t, err)
	assert.Len(t, got.Insights, editors)
}

func TestService_SetInsightUpdateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnnotationRepository(ctrl)

	repo.EXPECT().Update(gomock.Any(), "ceo-insights-2511", gomock.Any()).Return(errors.New("conexão perdida"))

	err := NewService(repo).SetInsight(context.Background(), period, "sales", "texto")
	assert.ErrorContains(t, err, "conexão perdida")
}

func TestService_SetInsightRequiresItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnnotationRepository(ctrl)

	err := NewService(repo).SetInsight(context.Background(), period, "  ", "texto")
	assert.ErrorIs(t, err, ErrMissingItemID)
}

func TestService_SetTextEncodesAsJSONString(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnnotationRepository(ctrl)

	repo.EXPECT().Set(gomock.Any(), "hk_yoy_trend_summary_2511", `"linha 1\nlinha 2"`).Return(nil)

	require.NoError(t, NewService(repo).SetText(context.Background(), period, KindYOYSummary, "linha 1\nlinha 2"))
}

func TestService_GetIgnoresCorruptValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnnotationRepository(ctrl)

	repo.EXPECT().GetMany(gomock.Any(), gomock.Any()).Return(map[string]string{
		"ceo-insights-2511":         "{não é json",
		"hk_store_ai_analysis_2511": `"ok"`,
		"reportDate":                "sem aspas",
	}, nil)

	got, err := NewService(repo).Get(context.Background(), period)
	require.NoError(t, err)
	assert.Empty(t, got.Insights)
	require.NotNil(t, got.StoreAnalysis)
	assert.Equal(t, "ok", *got.StoreAnalysis)
	assert.Nil(t, got.ReportDate)
}

func TestService_GetRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnnotationRepository(ctrl)

	repo.EXPECT().GetMany(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão perdida"))

	_, err := NewService(repo).Get(context.Background(), period)
	assert.Error(t, err)
}
