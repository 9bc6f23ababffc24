package reportsclient

import (
	"context"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

func (c *ReportsClient) GetStoreStatus(ctx context.Context, file string) (*domain.StoreStatusReport, error) {
	var response domain.StoreStatusReport
	if err := c.fetchJSON(ctx, file, fetchOptions{}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetCEOInsights devolve o mapa livre de textos; arquivo vazio vira mapa vazio
func (c *ReportsClient) GetCEOInsights(ctx context.Context, file string) (domain.CEOInsights, error) {
	response := domain.CEOInsights{}
	if err := c.fetchJSON(ctx, file, fetchOptions{}, &response); err != nil {
		return nil, err
	}
	if response == nil {
		response = domain.CEOInsights{}
	}
	return response, nil
}
