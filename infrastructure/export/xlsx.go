// Package export gera planilhas XLSX a partir da tabela detalhada
package export

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
)

// ContentType é o tipo MIME de planilhas OOXML
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const maxSheetNameLength = 31

// WriteDetailTable grava a tabela detalhada, já formatada, em uma planilha
// com cabeçalho em negrito e painel congelado na primeira linha
func WriteDetailTable(w io.Writer, sheet string, detail domain.DetailTable) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet = sheetName(sheet)
	if err := file.SetSheetName(file.GetSheetName(0), sheet); err != nil {
		return errors.Wrap(err, "erro ao nomear aba")
	}

	writer, err := file.NewStreamWriter(sheet)
	if err != nil {
		return errors.Wrap(err, "erro ao abrir aba para escrita")
	}

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "erro ao criar estilo do cabeçalho")
	}

	if err := writer.SetPanes(&excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return errors.Wrap(err, "erro ao congelar cabeçalho")
	}

	header := make([]interface{}, len(detail.Columns))
	for i, column := range detail.Columns {
		header[i] = excelize.Cell{StyleID: headerStyle, Value: column}
	}
	if err := writer.SetRow("A1", header); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho")
	}

	for r, row := range detail.Rows {
		cells := make([]interface{}, len(row))
		for i, value := range row {
			cells[i] = value
		}

		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := writer.SetRow(cell, cells); err != nil {
			return errors.Wrapf(err, "erro ao escrever linha %d", r+1)
		}
	}

	if err := writer.Flush(); err != nil {
		return errors.Wrap(err, "erro ao finalizar aba")
	}

	if _, err := file.WriteTo(w); err != nil {
		return errors.Wrap(err, "erro ao gravar planilha")
	}
	return nil
}

func sheetName(name string) string {
	if name == "" {
		return "Dados"
	}
	runes := []rune(name)
	if len(runes) > maxSheetNameLength {
		runes = runes[:maxSheetNameLength]
	}
	return string(runes)
}
