package dashboarding

import (
	"context"
	"fmt"

	"github.com/vfg2006/traffic-dashboard-api/internal/config"
	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/presenting"
	"github.com/vfg2006/traffic-dashboard-api/pkg/log"
)

var variants = []domain.Variant{domain.VariantCampaign, domain.VariantCredit}

// Service implementa Dashboarder
type Service struct {
	sources  map[domain.Variant]string
	provider SnapshotProvider
}

// NewService cria uma nova instância do serviço de dashboards
func NewService(cfg *config.Config, provider SnapshotProvider) Dashboarder {
	return &Service{
		sources: map[domain.Variant]string{
			domain.VariantCampaign: cfg.Feed.CampaignURL,
			domain.VariantCredit:   cfg.Feed.CreditURL,
		},
		provider: provider,
	}
}

func (s *Service) Variants() []domain.DashboardInfo {
	infos := make([]domain.DashboardInfo, 0, len(variants))
	for _, variant := range variants {
		schema, _ := domain.SchemaFor(variant)
		layout, _ := presenting.LayoutFor(variant)
		infos = append(infos, domain.DashboardInfo{
			Variant:    variant,
			Title:      layout.Title(),
			Configured: s.sources[variant] != "",
			Filters:    schema.Categorical(),
		})
	}
	return infos
}

func (s *Service) Render(ctx context.Context, variant domain.Variant, selections domain.Selections) (*domain.Dashboard, error) {
	schema, snapshot, err := s.snapshot(ctx, variant)
	if err != nil {
		return nil, err
	}

	if err := validateSelections(schema, selections); err != nil {
		return nil, err
	}

	filtered, err := filtering.Filter(snapshot.Table, selections)
	if err != nil {
		return nil, err
	}

	layout, _ := presenting.LayoutFor(variant)

	log.L.WithContext(ctx).WithFields(log.Fields{
		"variant": variant,
		"rows":    filtered.Len(),
	}).Debug("Dashboard montado")

	return &domain.Dashboard{
		Variant:       variant,
		Title:         layout.Title(),
		SnapshotID:    snapshot.ID,
		LoadedAt:      snapshot.LoadedAt,
		TotalRows:     snapshot.Table.Len(),
		FilteredRows:  filtered.Len(),
		Selections:    selections.Active(),
		FilterOptions: presenting.FilterOptions(snapshot.Table, schema),
		Metrics:       layout.Metrics(filtered),
		Charts:        layout.Charts(filtered),
		Table:         presenting.DetailTable(filtered, schema),
	}, nil
}

func (s *Service) FilterOptions(ctx context.Context, variant domain.Variant) ([]domain.FilterOption, error) {
	schema, snapshot, err := s.snapshot(ctx, variant)
	if err != nil {
		return nil, err
	}
	return presenting.FilterOptions(snapshot.Table, schema), nil
}

func (s *Service) DetailTable(ctx context.Context, variant domain.Variant, selections domain.Selections) (*domain.DetailTable, error) {
	schema, snapshot, err := s.snapshot(ctx, variant)
	if err != nil {
		return nil, err
	}

	if err := validateSelections(schema, selections); err != nil {
		return nil, err
	}

	filtered, err := filtering.Filter(snapshot.Table, selections)
	if err != nil {
		return nil, err
	}

	detail := presenting.DetailTable(filtered, schema)
	return &detail, nil
}

func (s *Service) Refresh(ctx context.Context, variant domain.Variant) (*loading.Snapshot, error) {
	schema, source, err := s.resolve(variant)
	if err != nil {
		return nil, err
	}
	return s.provider.Refresh(ctx, source, schema)
}

func (s *Service) snapshot(ctx context.Context, variant domain.Variant) (domain.Schema, *loading.Snapshot, error) {
	schema, source, err := s.resolve(variant)
	if err != nil {
		return schema, nil, err
	}

	snapshot, err := s.provider.Get(ctx, source, schema)
	if err != nil {
		return schema, nil, err
	}
	return schema, snapshot, nil
}

func (s *Service) resolve(variant domain.Variant) (domain.Schema, string, error) {
	schema, ok := domain.SchemaFor(variant)
	if !ok {
		return schema, "", NewDashboardError(ErrUnknownVariant, string(variant), "")
	}

	source := s.sources[variant]
	if source == "" {
		return schema, "", NewDashboardError(ErrFeedNotConfigured, string(variant), "")
	}

	return schema, source, nil
}

// validateSelections aceita apenas colunas categóricas do schema
func validateSelections(schema domain.Schema, selections domain.Selections) error {
	for column := range selections {
		spec, ok := schema.Column(column)
		if !ok || !spec.Categorical {
			return NewDashboardError(ErrInvalidSelection, string(schema.Variant), fmt.Sprintf("coluna %q não pode ser filtrada", column))
		}
	}
	return nil
}
