package reportsclient

import (
	"context"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

func (c *ReportsClient) GetPL(ctx context.Context, file string) (*domain.PLData, error) {
	var response domain.PLData
	if err := c.fetchJSON(ctx, file, fetchOptions{}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *ReportsClient) GetStorePL(ctx context.Context, file string) (*domain.StorePLReport, error) {
	var response domain.StorePLReport
	if err := c.fetchJSON(ctx, file, fetchOptions{}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
