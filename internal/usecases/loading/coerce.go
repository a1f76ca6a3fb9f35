package loading

import (
	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/table"
	"github.com/vfg2006/traffic-dashboard-api/pkg/log"
	"github.com/vfg2006/traffic-dashboard-api/pkg/metrics"
	"github.com/vfg2006/traffic-dashboard-api/pkg/utils"
)

// Coerce converte as colunas numéricas e de data do schema. Células que não
// puderem ser convertidas ficam ausentes; colunas do schema que não existem
// na planilha são ignoradas.
func Coerce(t *table.Table, schema domain.Schema) (*table.Table, error) {
	current := t
	for _, spec := range schema.Columns {
		if spec.Kind == domain.KindString {
			continue
		}

		if !current.Has(spec.Name) {
			log.L.WithFields(log.Fields{
				"column": spec.Name,
				"schema": schema.Name,
			}).Warn("Coluna esperada não encontrada na planilha")
			continue
		}

		values, missing := coerceColumn(current.Column(spec.Name), spec.Kind)
		metrics.CellsCoerced.WithLabelValues(schema.Name, "ok").Add(float64(len(values) - missing))
		metrics.CellsCoerced.WithLabelValues(schema.Name, "missing").Add(float64(missing))

		next, err := current.WithColumn(spec.Name, spec.Kind, values)
		if err != nil {
			return nil, err
		}
		current = next
	}

	return current, nil
}

func coerceColumn(raw []domain.Value, kind domain.Kind) ([]domain.Value, int) {
	values := make([]domain.Value, len(raw))
	missing := 0
	for i, cell := range raw {
		values[i] = coerceCell(cell, kind)
		if values[i].Missing {
			missing++
		}
	}
	return values, missing
}

func coerceCell(cell domain.Value, kind domain.Kind) domain.Value {
	if cell.Missing {
		return domain.MissingValue(kind)
	}

	switch kind {
	case domain.KindNumber:
		if number, ok := utils.ParseNumeric(cell.Text); ok {
			return domain.NumberValue(number)
		}
	case domain.KindDate:
		if date, ok := utils.ParseLocaleDate(cell.Text); ok {
			return domain.DateValue(date)
		}
	}

	return domain.MissingValue(kind)
}
