package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/table"
	"github.com/vfg2006/traffic-dashboard-api/pkg/utils"
)

// newTable monta uma tabela convertendo as colunas informadas para número
func newTable(t *testing.T, records [][]string, numeric ...string) *table.Table {
	t.Helper()
	tbl, err := table.FromRecords(records)
	require.NoError(t, err)

	for _, column := range numeric {
		raw := tbl.Column(column)
		values := make([]domain.Value, len(raw))
		for i, cell := range raw {
			number, ok := utils.ParseNumeric(cell.Text)
			if cell.Missing || !ok {
				values[i] = domain.MissingValue(domain.KindNumber)
				continue
			}
			values[i] = domain.NumberValue(number)
		}
		tbl, err = tbl.WithColumn(column, domain.KindNumber, values)
		require.NoError(t, err)
	}
	return tbl
}

func TestSum(t *testing.T) {
	tbl := newTable(t, [][]string{
		{"Campanha", "Leads"},
		{"A", "10"},
		{"A", ""},
		{"B", "5"},
	}, "Leads")

	assert.Equal(t, 15.0, Sum(tbl, "Leads"))
	assert.Equal(t, 0.0, Sum(tbl, "Inexistente"))
	assert.Equal(t, 0.0, Sum(tbl, "Campanha"), "colunas de texto não somam")
}

func TestSumSkipsMissing(t *testing.T) {
	withMissing := newTable(t, [][]string{{"Valor"}, {"1,5"}, {"abc"}, {"2,5"}, {""}}, "Valor")
	withoutMissing := newTable(t, [][]string{{"Valor"}, {"1,5"}, {"2,5"}}, "Valor")

	assert.Equal(t, Sum(withoutMissing, "Valor"), Sum(withMissing, "Valor"))

	mean, ok := Mean(withMissing, "Valor")
	require.True(t, ok)
	assert.Equal(t, 2.0, mean)
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		records  [][]string
		wantMean float64
		wantOK   bool
	}{
		{
			name:     "valores válidos",
			records:  [][]string{{"CTR"}, {"1,0%"}, {"2,0%"}, {"3,0%"}},
			wantMean: 2,
			wantOK:   true,
		},
		{
			name:    "todos ausentes",
			records: [][]string{{"CTR"}, {""}, {"n/d"}},
			wantOK:  false,
		},
		{
			name:    "tabela vazia",
			records: [][]string{{"CTR"}},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := newTable(t, tt.records, "CTR")

			mean, ok := Mean(tbl, "CTR")
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.wantMean, mean, 1e-9)
		})
	}
}

func TestCount(t *testing.T) {
	tbl := newTable(t, [][]string{{"Campanha", "Leads"}, {"A", "1"}, {"", "x"}, {"B", "2"}}, "Leads")

	assert.Equal(t, 2, Count(tbl, "Campanha"))
	assert.Equal(t, 2, Count(tbl, "Leads"))
	assert.Equal(t, 0, Count(tbl, "Inexistente"))
}

func TestGroupSum(t *testing.T) {
	tbl := newTable(t, [][]string{
		{"Finalidade do Crédito", "Crédito Desejado (R$)"},
		{"Casa", "R$ 1.000,00"},
		{"Carro", "R$ 500,00"},
		{"Casa", "R$ 2.000,00"},
		{"", "R$ 9.999,00"},
		{"Moto", ""},
	}, "Crédito Desejado (R$)")

	totals := GroupSum(tbl, "Finalidade do Crédito", "Crédito Desejado (R$)")

	assert.Equal(t, map[string]float64{"Casa": 3000, "Carro": 500, "Moto": 0}, totals)
}

func TestGroupSumAbsentColumns(t *testing.T) {
	tbl := newTable(t, [][]string{{"Campanha", "Leads"}, {"A", "1"}}, "Leads")

	assert.Empty(t, GroupSum(tbl, "Inexistente", "Leads"))
	assert.Equal(t, map[string]float64{"A": 0}, GroupSum(tbl, "Campanha", "Inexistente"))
}

func TestSortedGroups(t *testing.T) {
	groups := SortedGroups(map[string]float64{"b": 10, "a": 10, "c": 30, "d": 0})

	assert.Equal(t, []domain.GroupTotal{
		{Key: "c", Total: 30},
		{Key: "a", Total: 10},
		{Key: "b", Total: 10},
		{Key: "d", Total: 0},
	}, groups)
}

func TestGroupsByKey(t *testing.T) {
	groups := GroupsByKey(map[string]float64{"2024-03-10": 1, "2024-01-05": 2, "2024-02-20": 3})

	assert.Equal(t, []domain.GroupTotal{
		{Key: "2024-01-05", Total: 2},
		{Key: "2024-02-20", Total: 3},
		{Key: "2024-03-10", Total: 1},
	}, groups)
}

func TestValueCounts(t *testing.T) {
	tbl := newTable(t, [][]string{
		{"Status da Negociação"},
		{"Em análise"},
		{"Aprovado"},
		{"Negado"},
		{"Aprovado"},
		{""},
		{"Negado"},
		{"Cancelado"},
	})

	assert.Equal(t, []domain.ValueCount{
		{Value: "Aprovado", Count: 2},
		{Value: "Negado", Count: 2},
		{Value: "Em análise", Count: 1},
		{Value: "Cancelado", Count: 1},
	}, ValueCounts(tbl, "Status da Negociação"))

	assert.Empty(t, ValueCounts(tbl, "Inexistente"))
}

func TestUnique(t *testing.T) {
	tbl := newTable(t, [][]string{{"Campanha"}, {"B"}, {"A"}, {"B"}, {""}, {"C"}})

	assert.Equal(t, []string{"B", "A", "C"}, Unique(tbl, "Campanha"))
	assert.Empty(t, Unique(tbl, "Inexistente"))
}
