package reports

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	reportsdomain "github.com/vfg2006/hk-dashboard-api/infrastructure/integrator/reports/domain"
	"github.com/vfg2006/hk-dashboard-api/infrastructure/integrator/reports/mocks"
	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

func notFound(file string) error {
	return &reportsdomain.ResourceError{File: file, Status: http.StatusNotFound, Err: reportsdomain.ErrResourceNotFound}
}

func TestReportsService_GetPL(t *testing.T) {
	period := domain.MustParsePeriod("2511")
	ctx := context.Background()

	tests := []struct {
		name           string
		setup          func(client *mocks.MockClient)
		expectedSource string
		expectErr      bool
	}{
		{
			name: "arquivo do período existe",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetPL(gomock.Any(), "hk-pl-2511.json").Return(&domain.PLData{}, nil)
			},
			expectedSource: "hk-pl-2511.json",
		},
		{
			name: "cai no arquivo genérico uma única vez",
			setup: func(client *mocks.MockClient) {
				gomock.InOrder(
					client.EXPECT().GetPL(gomock.Any(), "hk-pl-2511.json").Return(nil, notFound("hk-pl-2511.json")),
					client.EXPECT().GetPL(gomock.Any(), "hk-pl.json").Return(&domain.PLData{}, nil),
				)
			},
			expectedSource: "hk-pl.json",
		},
		{
			name: "falha de rede também usa o fallback",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetPL(gomock.Any(), "hk-pl-2511.json").
					Return(nil, &reportsdomain.ResourceError{File: "hk-pl-2511.json", Err: reportsdomain.ErrResourceFetch})
				client.EXPECT().GetPL(gomock.Any(), "hk-pl.json").Return(&domain.PLData{}, nil)
			},
			expectedSource: "hk-pl.json",
		},
		{
			name: "os dois arquivos faltam",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetPL(gomock.Any(), "hk-pl-2511.json").Return(nil, notFound("hk-pl-2511.json"))
				client.EXPECT().GetPL(gomock.Any(), "hk-pl.json").Return(nil, notFound("hk-pl.json"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			resp, source, err := New(client).GetPL(ctx, period)
			if tt.expectErr {
				require.Error(t, err)
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, reportsdomain.ErrResourceNotFound)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, resp)
			assert.Equal(t, tt.expectedSource, source)
		})
	}
}

func TestReportsService_GetStoreStatus_Fallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetStoreStatus(gomock.Any(), "hk-store-status-2511.json").Return(nil, notFound("hk-store-status-2511.json"))
	client.EXPECT().GetStoreStatus(gomock.Any(), "hk-store-status.json").Return(&domain.StoreStatusReport{}, nil)

	resp, source, err := New(client).GetStoreStatus(context.Background(), domain.MustParsePeriod("2511"))
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "hk-store-status.json", source)
}

func TestReportsService_MonthlyHasNoFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetMonthlyDashboard(gomock.Any(), "hk-dashboard-monthly-2511.json").
		Return(nil, notFound("hk-dashboard-monthly-2511.json")).Times(1)

	resp, _, err := New(client).GetMonthlyDashboard(context.Background(), domain.MustParsePeriod("2511"))
	assert.Nil(t, resp)
	assert.True(t, reportsdomain.IsNotFound(err))
}

func TestReportsService_GetStorePL_Merge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetStorePL(gomock.Any(), "hk-store-pl-2511.json").Return(&domain.StorePLReport{
		Stores: map[string]domain.StorePL{
			"HK01": {StoreCode: "HK01", NetSales: domain.Some(100)},
			"HK02": {StoreCode: "HK02", NetSales: domain.Some(50)},
		},
	}, nil)
	client.EXPECT().GetStorePL(gomock.Any(), "hk-store-pl-cumulative-2511.json").Return(&domain.StorePLReport{
		Stores: map[string]domain.StorePL{
			"HK01": {StoreCode: "HK01", NetSales: domain.Some(1100)},
			"MC01": {StoreCode: "MC01", NetSales: domain.Some(700)},
		},
	}, nil)

	merged, source, err := New(client).GetStorePL(context.Background(), domain.MustParsePeriod("2511"))
	require.NoError(t, err)
	assert.Equal(t, "hk-store-pl-2511.json+hk-store-pl-cumulative-2511.json", source)
	require.Len(t, merged, 3)

	assert.Equal(t, 100.0, merged["HK01"].Monthly.NetSales.Value)
	assert.Equal(t, 1100.0, merged["HK01"].Cumulative.NetSales.Value)
	assert.Nil(t, merged["HK02"].Cumulative)
	assert.Nil(t, merged["MC01"].Monthly)
}

func TestReportsService_GetStorePL_BothMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetStorePL(gomock.Any(), gomock.Any()).Return(nil, notFound("x")).Times(2)

	merged, _, err := New(client).GetStorePL(context.Background(), domain.MustParsePeriod("2511"))
	require.Error(t, err)
	assert.Nil(t, merged)
}

func TestReportsService_LastResortFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetCumulativeDashboard(gomock.Any(), "hk-dashboard-data.json").Return(&domain.CumulativeDashboard{}, nil)
	client.EXPECT().GetPL(gomock.Any(), "hk-pl-data.json").Return(&domain.PLData{}, nil)

	service := New(client)

	_, source, err := service.GetLastResortDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hk-dashboard-data.json", source)

	_, source, err = service.GetLastResortPL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hk-pl-data.json", source)
}
