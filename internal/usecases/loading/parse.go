package loading

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/table"
)

// Codificações aceitas para o texto da planilha
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
	EncodingISO88591    = "iso-8859-1"
)

// ParseOptions controla a leitura do texto delimitado
type ParseOptions struct {
	Delimiter rune
	Encoding  string
}

func DefaultParseOptions() ParseOptions {
	return ParseOptions{Delimiter: ',', Encoding: EncodingUTF8}
}

// Parse lê texto delimitado (primeira linha = cabeçalho), normaliza os nomes
// das colunas e converte as colunas numéricas e de data do schema.
func Parse(r io.Reader, opts ParseOptions, schema domain.Schema) (*table.Table, error) {
	decoder, err := textDecoder(opts.Encoding)
	if err != nil {
		return nil, NewFetchError(ErrUnparseable, CodeUnparseable, "", err.Error())
	}

	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return nil, NewFetchError(ErrUnparseable, CodeUnparseable, "", err.Error())
	}
	if looksLikeHTML(data) {
		return nil, NewFetchError(ErrUnparseable, CodeUnparseable, "", "a origem devolveu uma página HTML")
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = opts.Delimiter
	if reader.Comma == 0 {
		reader.Comma = ','
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, NewFetchError(ErrUnparseable, CodeUnparseable, "", err.Error())
	}
	if len(records) == 0 {
		return nil, NewFetchError(ErrUnparseable, CodeUnparseable, "", "planilha vazia")
	}

	records[0] = normalizeHeader(records[0])

	raw, err := table.FromRecords(records)
	if err != nil {
		return nil, NewFetchError(ErrUnparseable, CodeUnparseable, "", err.Error())
	}

	return Coerce(raw, schema)
}

func textDecoder(encoding string) (transform.Transformer, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", EncodingUTF8, "utf8":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case EncodingWindows1252, "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case EncodingISO88591, "latin1":
		return charmap.ISO8859_1.NewDecoder(), nil
	default:
		return nil, errors.Errorf("codificação não suportada: %s", encoding)
	}
}

// normalizeHeader remove espaços nas bordas e unifica a forma Unicode dos
// nomes, para que "Impressões" composto e decomposto sejam a mesma coluna
func normalizeHeader(header []string) []string {
	names := make([]string, len(header))
	for i, name := range header {
		names[i] = norm.NFC.String(strings.TrimSpace(name))
	}
	return names
}

func looksLikeHTML(data []byte) bool {
	head := bytes.ToLower(bytes.TrimSpace(data))
	if len(head) > 64 {
		head = head[:64]
	}
	return bytes.HasPrefix(head, []byte("<!doctype html")) || bytes.HasPrefix(head, []byte("<html"))
}
