package utils

import (
	"strings"
	"time"
)

// DisplayDateLayout é o formato de exibição de datas na tabela detalhada
const DisplayDateLayout = "02/01/2006"

// Layouts aceitos para datas vindas da planilha, do mais comum para o menos comum
var localeDateLayouts = []string{
	"02/01/2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2/1/2006",
	"02-01-2006",
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
}

// ParseLocaleDate interpreta uma data no formato brasileiro (dia primeiro),
// aceitando ISO como alternativa. Retorna false quando nenhum layout reconhece o texto.
// O horário é descartado: o resultado é sempre meia-noite UTC do dia informado.
func ParseLocaleDate(raw string) (time.Time, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, currencyMarker, ""))
	if cleaned == "" {
		return time.Time{}, false
	}

	for _, layout := range localeDateLayouts {
		parsed, err := time.Parse(layout, cleaned)
		if err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// FormatDate formata uma data para exibição: 2024-03-05 -> "05/03/2024"
func FormatDate(date time.Time) string {
	return date.Format(DisplayDateLayout)
}
