package dashboarding

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/traffic-dashboard-api/internal/config"
	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/traffic-dashboard-api/pkg/log"
)

const campaignURL = "https://exemplo.com/campanhas.csv"

func init() {
	log.SetupTestLogger()
}

func campaignSnapshot(t *testing.T) *loading.Snapshot {
	t.Helper()
	input := "Campanha,Leads,Valor usado,CTR\n" +
		"A,10,\"R$ 100,00\",\"1,0%\"\n" +
		"A,5,\"R$ 50,00\",\"3,0%\"\n" +
		"B,7,\"R$ 70,00\",\"2,0%\"\n"

	tbl, err := loading.Parse(strings.NewReader(input), loading.DefaultParseOptions(), domain.CampaignSchema)
	require.NoError(t, err)

	return &loading.Snapshot{
		ID:       "campanhas-abc123",
		Source:   campaignURL,
		Schema:   domain.CampaignSchema.Name,
		Table:    tbl,
		LoadedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestService(t *testing.T) (Dashboarder, *mocks.MockSnapshotProvider) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockSnapshotProvider(ctrl)
	cfg := &config.Config{Feed: config.Feed{CampaignURL: campaignURL}}
	return NewService(cfg, provider), provider
}

func TestVariants(t *testing.T) {
	service, _ := newTestService(t)

	infos := service.Variants()
	require.Len(t, infos, 2)

	assert.Equal(t, domain.VariantCampaign, infos[0].Variant)
	assert.True(t, infos[0].Configured)
	assert.Equal(t, []string{domain.ColumnCampaign}, infos[0].Filters)

	assert.Equal(t, domain.VariantCredit, infos[1].Variant)
	assert.False(t, infos[1].Configured)
	assert.Len(t, infos[1].Filters, 4)
}

func TestRender(t *testing.T) {
	service, provider := newTestService(t)
	snapshot := campaignSnapshot(t)

	provider.EXPECT().Get(gomock.Any(), campaignURL, domain.CampaignSchema).Return(snapshot, nil)

	dashboard, err := service.Render(context.Background(), domain.VariantCampaign, domain.Selections{domain.ColumnCampaign: {"A"}})
	require.NoError(t, err)

	assert.Equal(t, "campanhas-abc123", dashboard.SnapshotID)
	assert.Equal(t, 3, dashboard.TotalRows)
	assert.Equal(t, 2, dashboard.FilteredRows)
	assert.Equal(t, domain.Selections{domain.ColumnCampaign: {"A"}}, dashboard.Selections)

	require.Len(t, dashboard.Metrics, 3)
	assert.Equal(t, "15", dashboard.Metrics[0].Display)
	assert.Equal(t, "R$ 150,00", dashboard.Metrics[1].Display)
	assert.Equal(t, "2.00%", dashboard.Metrics[2].Display)

	// As opções de filtro vêm da tabela sem filtro
	require.Len(t, dashboard.FilterOptions, 1)
	assert.Equal(t, []string{"A", "B"}, dashboard.FilterOptions[0].Values)

	assert.Len(t, dashboard.Charts, 3)
	assert.Len(t, dashboard.Table.Rows, 2)
}

func TestRenderWithoutSelections(t *testing.T) {
	service, provider := newTestService(t)

	provider.EXPECT().Get(gomock.Any(), campaignURL, domain.CampaignSchema).Return(campaignSnapshot(t), nil)

	dashboard, err := service.Render(context.Background(), domain.VariantCampaign, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.FilteredRows)
	assert.Equal(t, "22", dashboard.Metrics[0].Display)
	assert.Empty(t, dashboard.Selections)
}

func TestRenderFilterToNothing(t *testing.T) {
	service, provider := newTestService(t)

	provider.EXPECT().Get(gomock.Any(), campaignURL, domain.CampaignSchema).Return(campaignSnapshot(t), nil)

	dashboard, err := service.Render(context.Background(), domain.VariantCampaign, domain.Selections{domain.ColumnCampaign: {"Z"}})
	require.NoError(t, err)

	assert.Equal(t, 0, dashboard.FilteredRows)
	assert.Equal(t, "0", dashboard.Metrics[0].Display)
	assert.Nil(t, dashboard.Metrics[2].Value)
	assert.Empty(t, dashboard.Table.Rows)
	for _, chart := range dashboard.Charts {
		assert.Empty(t, chart.Points)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name       string
		variant    domain.Variant
		selections domain.Selections
		setup      func(t *testing.T, provider *mocks.MockSnapshotProvider)
		wantErr    error
	}{
		{
			name:    "variante desconhecida",
			variant: "vendas",
			setup:   func(t *testing.T, provider *mocks.MockSnapshotProvider) {},
			wantErr: ErrUnknownVariant,
		},
		{
			name:    "origem não configurada",
			variant: domain.VariantCredit,
			setup:   func(t *testing.T, provider *mocks.MockSnapshotProvider) {},
			wantErr: ErrFeedNotConfigured,
		},
		{
			name:       "filtro em coluna numérica",
			variant:    domain.VariantCampaign,
			selections: domain.Selections{domain.ColumnLeads: {"10"}},
			setup: func(t *testing.T, provider *mocks.MockSnapshotProvider) {
				provider.EXPECT().Get(gomock.Any(), campaignURL, domain.CampaignSchema).Return(campaignSnapshot(t), nil)
			},
			wantErr: ErrInvalidSelection,
		},
		{
			name:    "falha ao buscar planilha",
			variant: domain.VariantCampaign,
			setup: func(t *testing.T, provider *mocks.MockSnapshotProvider) {
				provider.EXPECT().
					Get(gomock.Any(), campaignURL, domain.CampaignSchema).
					Return(nil, loading.NewFetchError(loading.ErrSourceUnreachable, loading.CodeSourceUnreachable, campaignURL, "timeout"))
			},
			wantErr: loading.ErrFetch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, provider := newTestService(t)
			tt.setup(t, provider)

			dashboard, err := service.Render(context.Background(), tt.variant, tt.selections)
			require.Error(t, err)
			assert.Nil(t, dashboard)
			assert.True(t, errors.Is(err, tt.wantErr), "erro inesperado: %v", err)
		})
	}
}

func TestFilterOptions(t *testing.T) {
	service, provider := newTestService(t)

	provider.EXPECT().Get(gomock.Any(), campaignURL, domain.CampaignSchema).Return(campaignSnapshot(t), nil)

	options, err := service.FilterOptions(context.Background(), domain.VariantCampaign)
	require.NoError(t, err)
	assert.Equal(t, []domain.FilterOption{{Column: domain.ColumnCampaign, Values: []string{"A", "B"}}}, options)
}

func TestDetailTable(t *testing.T) {
	service, provider := newTestService(t)

	provider.EXPECT().Get(gomock.Any(), campaignURL, domain.CampaignSchema).Return(campaignSnapshot(t), nil)

	detail, err := service.DetailTable(context.Background(), domain.VariantCampaign, domain.Selections{domain.ColumnCampaign: {"B"}})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"B", "7", "R$ 70,00", "2.00%"}}, detail.Rows)
}

func TestRefresh(t *testing.T) {
	service, provider := newTestService(t)
	snapshot := campaignSnapshot(t)

	provider.EXPECT().Refresh(gomock.Any(), campaignURL, domain.CampaignSchema).Return(snapshot, nil)

	refreshed, err := service.Refresh(context.Background(), domain.VariantCampaign)
	require.NoError(t, err)
	assert.Same(t, snapshot, refreshed)

	_, err = service.Refresh(context.Background(), domain.VariantCredit)
	assert.ErrorIs(t, err, ErrFeedNotConfigured)
}
