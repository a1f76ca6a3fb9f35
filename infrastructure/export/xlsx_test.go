package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
)

func TestWriteDetailTable(t *testing.T) {
	detail := domain.DetailTable{
		Columns: []string{"Campanha", "Leads", "Valor usado"},
		Rows: [][]string{
			{"A", "10", "R$ 1.234,56"},
			{"B", "", "R$ 0,44"},
		},
	}

	var buffer bytes.Buffer
	require.NoError(t, WriteDetailTable(&buffer, "campanhas", detail))

	file, err := excelize.OpenReader(&buffer)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{"campanhas"}, file.GetSheetList())

	rows, err := file.GetRows("campanhas")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Campanha", "Leads", "Valor usado"}, rows[0])
	assert.Equal(t, []string{"A", "10", "R$ 1.234,56"}, rows[1])
	assert.Equal(t, "B", rows[2][0])
	assert.Equal(t, "R$ 0,44", rows[2][2])
}

func TestWriteDetailTableEmpty(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, WriteDetailTable(&buffer, "", domain.DetailTable{Columns: []string{"Campanha"}}))

	file, err := excelize.OpenReader(&buffer)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Dados")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Campanha"}}, rows)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Dados", sheetName(""))
	assert.Equal(t, "solicitacoes_credito", sheetName("solicitacoes_credito"))
	assert.Len(t, []rune(sheetName(strings.Repeat("á", 40))), maxSheetNameLength)
}
