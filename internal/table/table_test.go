package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
)

func campaignRecords() [][]string {
	return [][]string{
		{"Campanha", "Leads", "Data"},
		{"A", "10", "2024-03-01"},
		{"A", "5", ""},
		{"B", "", "2024-03-02"},
		{"", "7"},
	}
}

func TestFromRecords(t *testing.T) {
	tbl, err := FromRecords(campaignRecords())
	require.NoError(t, err)

	assert.Equal(t, []string{"Campanha", "Leads", "Data"}, tbl.Names())
	assert.Equal(t, 4, tbl.Len())
	assert.True(t, tbl.Has("Leads"))
	assert.False(t, tbl.Has("CTR"))
	assert.Equal(t, domain.KindString, tbl.Kind("Leads"))

	// Células vazias e linhas curtas viram ausentes
	assert.True(t, tbl.Value(2, "Leads").Missing)
	assert.True(t, tbl.Value(3, "Campanha").Missing)
	assert.True(t, tbl.Value(3, "Data").Missing)
	assert.Equal(t, "A", tbl.Value(0, "Campanha").Text)
}

func TestFromRecords_SemCabecalho(t *testing.T) {
	_, err := FromRecords(nil)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestFromRecords_SoCabecalho(t *testing.T) {
	tbl, err := FromRecords([][]string{{"Campanha", "Leads"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"Campanha", "Leads"}, tbl.Names())
	assert.Equal(t, 0, tbl.Len())
	assert.Empty(t, tbl.Column("Leads"))

	filtered, err := tbl.Where("Campanha", []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, 0, filtered.Len())

	withNumbers, err := tbl.WithColumn("Leads", domain.KindNumber, []domain.Value{})
	require.NoError(t, err)
	assert.Equal(t, domain.KindNumber, withNumbers.Kind("Leads"))
}

func TestValue_ColunaInexistente(t *testing.T) {
	tbl, err := FromRecords(campaignRecords())
	require.NoError(t, err)

	assert.True(t, tbl.Value(0, "CTR").Missing)
	assert.True(t, tbl.Value(99, "Campanha").Missing)
	assert.Nil(t, tbl.Column("CTR"))
}

func TestWithColumn(t *testing.T) {
	tbl, err := FromRecords(campaignRecords())
	require.NoError(t, err)

	leads := []domain.Value{
		domain.NumberValue(10),
		domain.NumberValue(5),
		domain.MissingValue(domain.KindNumber),
		domain.NumberValue(7),
	}
	numeric, err := tbl.WithColumn("Leads", domain.KindNumber, leads)
	require.NoError(t, err)

	assert.Equal(t, domain.KindNumber, numeric.Kind("Leads"))
	assert.Equal(t, 10.0, numeric.Value(0, "Leads").Number)
	assert.True(t, numeric.Value(2, "Leads").Missing)

	// A tabela original continua com texto
	assert.Equal(t, domain.KindString, tbl.Kind("Leads"))
	assert.Equal(t, "10", tbl.Value(0, "Leads").Text)

	dates := []domain.Value{
		domain.DateValue(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		domain.MissingValue(domain.KindDate),
		domain.DateValue(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)),
		domain.MissingValue(domain.KindDate),
	}
	dated, err := numeric.WithColumn("Data", domain.KindDate, dates)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-02", dated.Value(2, "Data").Key())
	assert.True(t, dated.Value(1, "Data").Missing)

	_, err = tbl.WithColumn("Leads", domain.KindNumber, leads[:2])
	assert.Error(t, err)
}

func TestWhere(t *testing.T) {
	tbl, err := FromRecords(campaignRecords())
	require.NoError(t, err)

	filtered, err := tbl.Where("Campanha", []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, 2, filtered.Len())
	assert.Equal(t, 4, tbl.Len())

	none, err := tbl.Where("Campanha", []string{"Z"})
	require.NoError(t, err)
	assert.Equal(t, 0, none.Len())
	assert.Equal(t, tbl.Names(), none.Names())

	same, err := tbl.Where("Inexistente", []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, tbl.Len(), same.Len())
}

func TestWhere_ColunaNumerica(t *testing.T) {
	tbl, err := FromRecords(campaignRecords())
	require.NoError(t, err)

	numeric, err := tbl.WithColumn("Leads", domain.KindNumber, []domain.Value{
		domain.NumberValue(10),
		domain.NumberValue(5),
		domain.MissingValue(domain.KindNumber),
		domain.NumberValue(10),
	})
	require.NoError(t, err)

	filtered, err := numeric.Where("Leads", []string{"10"})
	require.NoError(t, err)
	assert.Equal(t, 2, filtered.Len())
	assert.Equal(t, "A", filtered.Value(0, "Campanha").Text)
	assert.True(t, filtered.Value(1, "Campanha").Missing)
}

func TestRecords(t *testing.T) {
	tbl, err := FromRecords([][]string{
		{"Campanha", "Leads"},
		{"A", "10"},
		{"B", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Campanha", "Leads"},
		{"A", "10"},
		{"B", ""},
	}, tbl.Records())
}
