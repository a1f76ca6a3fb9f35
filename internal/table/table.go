// Package table implementa a tabela tipada do pipeline sobre um dataframe do gota.
//
// Todas as colunas são carregadas como texto. Colunas numéricas são
// substituídas por séries float (NaN = ausente) e colunas de data por texto
// ISO (NA = ausente). Toda operação devolve uma nova tabela; a original nunca
// é alterada.
package table

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
)

// naText é o texto que o gota interpreta como célula ausente
const naText = "NaN"

// Valores tratados como ausentes na leitura, como no pandas
var nanValues = []string{"", "NA", "NaN", "nan", "<nil>"}

var ErrEmptyTable = errors.New("tabela sem cabeçalho")

type Table struct {
	frame dataframe.DataFrame
	kinds map[string]domain.Kind
}

// FromRecords monta uma tabela de texto a partir de registros cuja primeira
// linha é o cabeçalho. Linhas curtas são completadas com células ausentes e
// linhas longas são truncadas na largura do cabeçalho.
func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, ErrEmptyTable
	}

	width := len(records[0])
	rectangular := make([][]string, len(records))
	for i, record := range records {
		row := make([]string, width)
		copy(row, record)
		rectangular[i] = row
	}

	var frame dataframe.DataFrame
	if len(rectangular) == 1 {
		// O gota não carrega registros só com cabeçalho
		columns := make([]series.Series, width)
		for i, name := range rectangular[0] {
			columns[i] = series.New([]string{}, series.String, name)
		}
		frame = dataframe.New(columns...)
	} else {
		frame = dataframe.LoadRecords(
			rectangular,
			dataframe.HasHeader(true),
			dataframe.DetectTypes(false),
			dataframe.DefaultType(series.String),
			dataframe.NaNValues(nanValues),
		)
	}
	if frame.Err != nil {
		return nil, fmt.Errorf("table: erro ao montar dataframe: %w", frame.Err)
	}

	kinds := make(map[string]domain.Kind, width)
	for _, name := range frame.Names() {
		kinds[name] = domain.KindString
	}

	return &Table{frame: frame, kinds: kinds}, nil
}

// Names retorna as colunas na ordem de carga
func (t *Table) Names() []string {
	return t.frame.Names()
}

// Len retorna o número de linhas
func (t *Table) Len() int {
	return t.frame.Nrow()
}

func (t *Table) Has(column string) bool {
	_, ok := t.kinds[column]
	return ok
}

// Kind retorna o tipo da coluna; colunas inexistentes são texto
func (t *Table) Kind(column string) domain.Kind {
	return t.kinds[column]
}

// Value retorna a célula tipada. Colunas inexistentes e linhas fora do
// intervalo resultam em valor ausente.
func (t *Table) Value(row int, column string) domain.Value {
	kind, ok := t.kinds[column]
	if !ok || row < 0 || row >= t.Len() {
		return domain.MissingValue(kind)
	}

	return elementValue(t.frame.Col(column).Elem(row), kind)
}

// Column retorna todas as células de uma coluna, ou nil se ela não existir
func (t *Table) Column(column string) []domain.Value {
	kind, ok := t.kinds[column]
	if !ok {
		return nil
	}

	col := t.frame.Col(column)
	values := make([]domain.Value, col.Len())
	for i := range values {
		values[i] = elementValue(col.Elem(i), kind)
	}
	return values
}

// WithColumn substitui (ou acrescenta) uma coluna com o tipo informado
func (t *Table) WithColumn(column string, kind domain.Kind, values []domain.Value) (*Table, error) {
	if len(values) != t.Len() {
		return nil, fmt.Errorf("table: coluna %q com %d valores para %d linhas", column, len(values), t.Len())
	}

	var s series.Series
	switch kind {
	case domain.KindNumber:
		floats := make([]float64, len(values))
		for i, value := range values {
			if value.Missing {
				floats[i] = math.NaN()
				continue
			}
			floats[i] = value.Number
		}
		s = series.New(floats, series.Float, column)
	default:
		texts := make([]string, len(values))
		for i, value := range values {
			if value.Missing {
				texts[i] = naText
				continue
			}
			texts[i] = value.Key()
		}
		s = series.New(texts, series.String, column)
	}

	frame := t.frame.Mutate(s)
	if frame.Err != nil {
		return nil, fmt.Errorf("table: erro ao substituir coluna %q: %w", column, frame.Err)
	}

	kinds := make(map[string]domain.Kind, len(t.kinds)+1)
	for name, k := range t.kinds {
		kinds[name] = k
	}
	kinds[column] = kind

	return &Table{frame: frame, kinds: kinds}, nil
}

// Where mantém as linhas cujo valor na coluna pertence a allowed, preservando
// a ordem. Células ausentes nunca casam.
func (t *Table) Where(column string, allowed []string) (*Table, error) {
	if !t.Has(column) || t.Len() == 0 {
		return t, nil
	}

	var frame dataframe.DataFrame
	if t.kinds[column] == domain.KindString {
		frame = t.frame.Filter(dataframe.F{
			Colname:    column,
			Comparator: series.In,
			Comparando: allowed,
		})
	} else {
		frame = t.frame.Subset(t.matchingRows(column, allowed))
	}

	if frame.Err != nil {
		return nil, fmt.Errorf("table: erro ao filtrar coluna %q: %w", column, frame.Err)
	}

	return &Table{frame: frame, kinds: t.kinds}, nil
}

func (t *Table) matchingRows(column string, allowed []string) []int {
	set := make(map[string]struct{}, len(allowed))
	for _, value := range allowed {
		set[value] = struct{}{}
	}

	rows := make([]int, 0, t.Len())
	for i, value := range t.Column(column) {
		if value.Missing {
			continue
		}
		if _, ok := set[value.Key()]; ok {
			rows = append(rows, i)
		}
	}
	return rows
}

// Records retorna cabeçalho e linhas com as chaves canônicas das células
// (ausentes viram texto vazio)
func (t *Table) Records() [][]string {
	names := t.Names()
	records := make([][]string, 0, t.Len()+1)
	records = append(records, names)

	columns := make([][]domain.Value, len(names))
	for i, name := range names {
		columns[i] = t.Column(name)
	}

	for row := 0; row < t.Len(); row++ {
		record := make([]string, len(names))
		for i := range names {
			record[i] = columns[i][row].Key()
		}
		records = append(records, record)
	}
	return records
}

func elementValue(elem series.Element, kind domain.Kind) domain.Value {
	if elem.IsNA() {
		return domain.MissingValue(kind)
	}

	switch kind {
	case domain.KindNumber:
		number := elem.Float()
		if math.IsNaN(number) {
			return domain.MissingValue(kind)
		}
		return domain.NumberValue(number)
	case domain.KindDate:
		date, err := time.Parse(time.DateOnly, elem.String())
		if err != nil {
			return domain.MissingValue(kind)
		}
		return domain.DateValue(date)
	default:
		return domain.StringValue(elem.String())
	}
}
