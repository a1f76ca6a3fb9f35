package presenting

import (
	"time"

	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/table"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/traffic-dashboard-api/pkg/utils"
)

const countLabel = "Quantidade"

type creditLayout struct{}

func (creditLayout) Title() string {
	return "💳 Dashboard de Solicitações de Crédito"
}

func (creditLayout) Metrics(t *table.Table) []domain.Metric {
	requests := float64(t.Len())
	metrics := []domain.Metric{
		metric("📝", "Total de Solicitações", requests, utils.FormatInteger(requests)),
	}

	if !t.Has(domain.ColumnCreditAmount) {
		return metrics
	}

	total := aggregating.Sum(t, domain.ColumnCreditAmount)
	metrics = append(metrics, metric("💰", "Crédito Total Desejado", total, utils.FormatCurrency(total)))

	if average, ok := aggregating.Mean(t, domain.ColumnCreditAmount); ok {
		metrics = append(metrics, metric("🎟️", "Ticket Médio", average, utils.FormatCurrency(average)))
	} else {
		metrics = append(metrics, emptyMetric("🎟️", "Ticket Médio"))
	}

	return metrics
}

func (creditLayout) Charts(t *table.Table) []domain.ChartSpec {
	charts := make([]domain.ChartSpec, 0, 5)
	amount := domain.ColumnCreditAmount
	hasAmount := t.Has(amount)

	if hasAmount && t.Has(domain.ColumnPurpose) {
		groups := aggregating.SortedGroups(aggregating.GroupSum(t, domain.ColumnPurpose, amount))
		charts = append(charts, domain.ChartSpec{
			Kind:          domain.ChartPie,
			Title:         "🎯 Crédito por Finalidade",
			Names:         domain.ColumnPurpose,
			Values:        amount,
			HoverTemplate: hoverTemplate("label", amount, domain.FormatCurrency),
			Points:        groupPoints(groups, amount, domain.FormatCurrency, identity),
		})
	}

	if hasAmount && t.Has(domain.ColumnBroker) {
		charts = append(charts, groupBarChart(t, "👤 Crédito por Corretor", domain.ColumnBroker))
	}

	if t.Has(domain.ColumnStatus) {
		charts = append(charts, statusChart(t))
	}

	if hasAmount && t.Has(domain.ColumnBrokerageUnit) {
		charts = append(charts, groupBarChart(t, "🏢 Crédito por Unidade", domain.ColumnBrokerageUnit))
	}

	if hasAmount && t.Has(domain.ColumnRequestDate) {
		groups := aggregating.GroupsByKey(aggregating.GroupSum(t, domain.ColumnRequestDate, amount))
		charts = append(charts, domain.ChartSpec{
			Kind:          domain.ChartLine,
			Title:         "📅 Crédito por Data da Solicitação",
			X:             domain.ColumnRequestDate,
			Y:             amount,
			HoverTemplate: hoverTemplate("x", amount, domain.FormatCurrency),
			Points:        groupPoints(groups, amount, domain.FormatCurrency, displayDate),
		})
	}

	return charts
}

func groupBarChart(t *table.Table, title, group string) domain.ChartSpec {
	amount := domain.ColumnCreditAmount
	groups := aggregating.SortedGroups(aggregating.GroupSum(t, group, amount))

	points := groupPoints(groups, amount, domain.FormatCurrency, identity)
	for i := range points {
		points[i].Color = points[i].X
	}

	return domain.ChartSpec{
		Kind:          domain.ChartBar,
		Title:         title,
		X:             group,
		Y:             amount,
		Color:         group,
		HoverTemplate: hoverTemplate("x", amount, domain.FormatCurrency),
		Points:        points,
	}
}

func statusChart(t *table.Table) domain.ChartSpec {
	counts := aggregating.ValueCounts(t, domain.ColumnStatus)

	points := make([]domain.ChartPoint, len(counts))
	for i, count := range counts {
		y := float64(count.Count)
		points[i] = domain.ChartPoint{
			X:     count.Value,
			Y:     &y,
			Color: count.Value,
			Hover: hoverText(count.Value, countLabel, utils.FormatInteger(y)),
		}
	}

	return domain.ChartSpec{
		Kind:          domain.ChartBar,
		Title:         "📌 Solicitações por Status",
		X:             domain.ColumnStatus,
		Y:             countLabel,
		Color:         domain.ColumnStatus,
		HoverTemplate: hoverTemplate("x", countLabel, domain.FormatPlain),
		Points:        points,
	}
}

// displayDate exibe a chave ISO de uma data no formato brasileiro
func displayDate(key string) string {
	date, err := time.Parse(time.DateOnly, key)
	if err != nil {
		return key
	}
	return utils.FormatDate(date)
}
