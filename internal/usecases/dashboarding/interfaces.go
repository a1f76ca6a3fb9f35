package dashboarding

import (
	"context"

	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/loading"
)

// SnapshotProvider entrega a tabela carregada de uma origem, possivelmente em cache
type SnapshotProvider interface {
	Get(ctx context.Context, source string, schema domain.Schema) (*loading.Snapshot, error)
	Refresh(ctx context.Context, source string, schema domain.Schema) (*loading.Snapshot, error)
}

// Dashboarder executa o pipeline carga -> filtro -> agregação -> apresentação
type Dashboarder interface {
	// Variants lista as variantes conhecidas e se a origem de cada uma está configurada
	Variants() []domain.DashboardInfo

	// Render monta o dashboard completo para as seleções informadas
	Render(ctx context.Context, variant domain.Variant, selections domain.Selections) (*domain.Dashboard, error)

	// FilterOptions lista os valores disponíveis para cada filtro, sobre a tabela sem filtro
	FilterOptions(ctx context.Context, variant domain.Variant) ([]domain.FilterOption, error)

	// DetailTable devolve somente a tabela detalhada formatada
	DetailTable(ctx context.Context, variant domain.Variant, selections domain.Selections) (*domain.DetailTable, error)

	// Refresh recarrega a planilha da variante, ignorando o cache
	Refresh(ctx context.Context, variant domain.Variant) (*loading.Snapshot, error)
}
