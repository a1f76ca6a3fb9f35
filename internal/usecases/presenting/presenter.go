// Package presenting transforma a tabela filtrada e seus agregados em cards
// de métricas, especificações de gráficos e na tabela detalhada formatada.
package presenting

import (
	"fmt"

	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/table"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/traffic-dashboard-api/pkg/utils"
)

// Layout monta os elementos visuais do dashboard de uma variante
type Layout interface {
	Title() string
	Metrics(t *table.Table) []domain.Metric
	Charts(t *table.Table) []domain.ChartSpec
}

// LayoutFor retorna o layout da variante informada
func LayoutFor(variant domain.Variant) (Layout, bool) {
	switch variant {
	case domain.VariantCampaign:
		return campaignLayout{}, true
	case domain.VariantCredit:
		return creditLayout{}, true
	default:
		return nil, false
	}
}

// DetailTable formata todas as células na ordem de carga das colunas.
// Células ausentes viram texto vazio.
func DetailTable(t *table.Table, schema domain.Schema) domain.DetailTable {
	columns := t.Names()
	formats := make([]domain.ColumnFormat, len(columns))
	cells := make([][]domain.Value, len(columns))
	for i, column := range columns {
		formats[i] = schema.FormatOf(column)
		cells[i] = t.Column(column)
	}

	rows := make([][]string, t.Len())
	for r := range rows {
		row := make([]string, len(columns))
		for c := range columns {
			row[c] = FormatCell(cells[c][r], formats[c])
		}
		rows[r] = row
	}

	return domain.DetailTable{Columns: columns, Rows: rows}
}

// FilterOptions lista os valores distintos de cada coluna categórica presente
func FilterOptions(t *table.Table, schema domain.Schema) []domain.FilterOption {
	options := make([]domain.FilterOption, 0)
	for _, column := range schema.Categorical() {
		if !t.Has(column) {
			continue
		}
		options = append(options, domain.FilterOption{
			Column: column,
			Values: aggregating.Unique(t, column),
		})
	}
	return options
}

// FormatCell converte uma célula no texto exibido ao usuário
func FormatCell(value domain.Value, format domain.ColumnFormat) string {
	if value.Missing {
		return ""
	}

	switch value.Kind {
	case domain.KindNumber:
		return FormatNumber(value.Number, format)
	case domain.KindDate:
		return utils.FormatDate(value.Date)
	default:
		return value.Text
	}
}

func FormatNumber(number float64, format domain.ColumnFormat) string {
	switch format {
	case domain.FormatCurrency:
		return utils.FormatCurrency(number)
	case domain.FormatPercent:
		return utils.FormatPercent(number)
	default:
		return utils.FormatNumber(number)
	}
}

// hoverTemplate segue a sintaxe do plotly usada pelo painel original
func hoverTemplate(axis, column string, format domain.ColumnFormat) string {
	return fmt.Sprintf("<b>%%{%s}</b><br>%s: %s<extra></extra>", axis, column, hoverValue(axis, format))
}

func hoverValue(axis string, format domain.ColumnFormat) string {
	value := "y"
	if axis == "label" {
		value = "value"
	}

	switch format {
	case domain.FormatCurrency:
		return "R$ %{" + value + ":,.2f}"
	case domain.FormatPercent:
		return "%{" + value + ":,.2f}%"
	default:
		return "%{" + value + "}"
	}
}

func hoverText(label, column, formatted string) string {
	return fmt.Sprintf("<b>%s</b><br>%s: %s", label, column, formatted)
}

func metric(icon, label string, value float64, display string) domain.Metric {
	return domain.Metric{Icon: icon, Label: label, Value: &value, Display: display}
}

func emptyMetric(icon, label string) domain.Metric {
	return domain.Metric{Icon: icon, Label: label}
}

// groupPoints converte totais agrupados em pontos de gráfico
func groupPoints(groups []domain.GroupTotal, column string, format domain.ColumnFormat, label func(string) string) []domain.ChartPoint {
	points := make([]domain.ChartPoint, 0, len(groups))
	for _, group := range groups {
		total := group.Total
		points = append(points, domain.ChartPoint{
			X:     group.Key,
			Y:     &total,
			Hover: hoverText(label(group.Key), column, FormatNumber(total, format)),
		})
	}
	return points
}

func identity(key string) string {
	return key
}
