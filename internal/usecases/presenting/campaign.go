package presenting

import (
	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/table"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/traffic-dashboard-api/pkg/utils"
)

type campaignLayout struct{}

func (campaignLayout) Title() string {
	return "📊 Dashboard de Campanhas de Tráfego"
}

func (campaignLayout) Metrics(t *table.Table) []domain.Metric {
	metrics := make([]domain.Metric, 0, 3)

	if t.Has(domain.ColumnLeads) {
		leads := aggregating.Sum(t, domain.ColumnLeads)
		metrics = append(metrics, metric("📌", "Total de Leads", leads, utils.FormatInteger(leads)))
	}

	if t.Has(domain.ColumnSpend) {
		spend := aggregating.Sum(t, domain.ColumnSpend)
		metrics = append(metrics, metric("💰", "Total Investido", spend, utils.FormatCurrency(spend)))
	}

	if t.Has(domain.ColumnCTR) {
		if ctr, ok := aggregating.Mean(t, domain.ColumnCTR); ok {
			metrics = append(metrics, metric("📈", "CTR Médio", ctr, utils.FormatPercent(ctr)))
		} else {
			metrics = append(metrics, emptyMetric("📈", "CTR Médio"))
		}
	}

	return metrics
}

// Charts gera um gráfico de barras por coluna numérica presente, com uma
// barra por linha da tabela colorida pela campanha
func (campaignLayout) Charts(t *table.Table) []domain.ChartSpec {
	schema := domain.CampaignSchema
	campaigns := t.Column(domain.ColumnCampaign)

	charts := make([]domain.ChartSpec, 0)
	for _, column := range schema.ColumnsOfKind(domain.KindNumber) {
		if !t.Has(column) {
			continue
		}

		format := schema.FormatOf(column)
		yLabel := column
		if format == domain.FormatPercent {
			yLabel = column + " (%)"
		}

		values := t.Column(column)
		points := make([]domain.ChartPoint, len(values))
		for i, value := range values {
			label := ""
			if campaigns != nil {
				label = campaigns[i].Key()
			}

			point := domain.ChartPoint{
				X:     label,
				Color: label,
				Hover: hoverText(label, column, FormatCell(value, format)),
			}
			if !value.Missing {
				y := value.Number
				point.Y = &y
			}
			points[i] = point
		}

		charts = append(charts, domain.ChartSpec{
			Kind:          domain.ChartBar,
			Title:         "📊 " + column + " por Campanha",
			X:             domain.ColumnCampaign,
			Y:             column,
			Color:         domain.ColumnCampaign,
			Labels:        map[string]string{column: yLabel},
			HoverTemplate: hoverTemplate("x", column, format),
			Points:        points,
		})
	}

	return charts
}
