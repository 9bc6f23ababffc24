package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/hk-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/annotating"
)

func TestPrepareEntries(t *testing.T) {
	dump := Dump{
		"reportDate":                "2025-12-05",
		"ceo-insights-2511":         `{"sales-1":"Vendas acima do esperado"}`,
		"ceo-insights-2513":         `{"x":"mês inválido"}`,
		"ceo-insights-2510":         `não é json`,
		"hk_store_ai_analysis_2511": "Lojas em queda concentradas em Kowloon",
		"hk_yoy_trend_summary_2511": "Tendência \"positiva\"",
		"theme":                     "dark",
	}

	entries, ignored := prepareEntries(dump)

	assert.Equal(t, []Entry{
		{Key: "ceo-insights-2511", Value: `{"sales-1":"Vendas acima do esperado"}`},
		{Key: "hk_store_ai_analysis_2511", Value: `"Lojas em queda concentradas em Kowloon"`},
		{Key: "hk_yoy_trend_summary_2511", Value: `"Tendência \"positiva\""`},
		{Key: "reportDate", Value: `"2025-12-05"`},
	}, entries)
	assert.ElementsMatch(t, []string{"ceo-insights-2510", "ceo-insights-2513", "theme"}, ignored)
}

func TestHasPeriodSuffix(t *testing.T) {
	assert.True(t, hasPeriodSuffix("ceo-insights-2501", annotating.InsightsKey))
	assert.False(t, hasPeriodSuffix("ceo-insights-25011", annotating.InsightsKey))
	assert.False(t, hasPeriodSuffix("ceo-insights-", annotating.InsightsKey))
	assert.False(t, hasPeriodSuffix("hk_store_ai_analysis_2501", annotating.InsightsKey))
}

func TestReadDump(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "dump.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{"reportDate":"2025-12-05"}`), 0o600))

	dump, err := readDump(valid)
	require.NoError(t, err)
	assert.Equal(t, Dump{"reportDate": "2025-12-05"}, dump)

	invalid := filepath.Join(dir, "invalido.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`["reportDate"]`), 0o600))

	_, err = readDump(invalid)
	assert.Error(t, err)

	_, err = readDump(filepath.Join(dir, "nao-existe.json"))
	assert.Error(t, err)
}

func TestImportEntries_CountsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnnotationRepository(ctrl)

	ctx := context.Background()
	repo.EXPECT().Set(ctx, "reportDate", `"2025-12-05"`).Return(nil)
	repo.EXPECT().Set(ctx, "ceo-insights-2511", `{}`).Return(errors.New("disco cheio"))

	stats := importEntries(ctx, repo, []Entry{
		{Key: "reportDate", Value: `"2025-12-05"`},
		{Key: "ceo-insights-2511", Value: `{}`},
	})

	assert.Equal(t, 1, stats.Imported)
	assert.Equal(t, 1, stats.Errors)
}
