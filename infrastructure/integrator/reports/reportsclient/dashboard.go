package reportsclient

import (
	"context"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

func (c *ReportsClient) GetCumulativeDashboard(ctx context.Context, file string) (*domain.CumulativeDashboard, error) {
	var response domain.CumulativeDashboard
	if err := c.fetchJSON(ctx, file, fetchOptions{noStore: true}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *ReportsClient) GetMonthlyDashboard(ctx context.Context, file string) (*domain.MonthlyDashboard, error) {
	var response domain.MonthlyDashboard
	if err := c.fetchJSON(ctx, file, fetchOptions{noStore: true}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
