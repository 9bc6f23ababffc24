package reportsclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/hk-dashboard-api/internal/config"
	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetCumulativeDashboard(ctx context.Context, file string) (*domain.CumulativeDashboard, error)
	GetMonthlyDashboard(ctx context.Context, file string) (*domain.MonthlyDashboard, error)
	GetPL(ctx context.Context, file string) (*domain.PLData, error)
	GetStorePL(ctx context.Context, file string) (*domain.StorePLReport, error)
	GetStoreStatus(ctx context.Context, file string) (*domain.StoreStatusReport, error)
	GetCEOInsights(ctx context.Context, file string) (domain.CEOInsights, error)
}

type ReportsClient struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	now        func() time.Time
}

// NewClient cria o cliente dos arquivos JSON publicados pelo pipeline de dados
func NewClient(cfg *config.Config) Client {
	return &ReportsClient{
		httpClient: &http.Client{
			Timeout: cfg.Reports.Timeout,
		},
		baseURL: cfg.Reports.BaseURL,
		timeout: cfg.Reports.Timeout,
		now:     time.Now,
	}
}
