package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const currencyMarker = "R$"

// ParseNumeric converte um texto no formato brasileiro ("R$ 1.234,56", "12,5%")
// para float64. O segundo retorno é false quando o texto não representa um
// número finito; nesse caso o valor deve ser tratado como ausente.
func ParseNumeric(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(raw, currencyMarker, "")
	cleaned = strings.ReplaceAll(cleaned, "%", "")
	// Primeiro remove o separador de milhar e só depois troca o decimal.
	// Inverter a ordem corrompe valores como "1.234,56".
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}

// FormatCurrency formata um valor como moeda brasileira: 1234.5 -> "R$ 1.234,50".
// Valores não finitos resultam em string vazia.
func FormatCurrency(value float64) string {
	if !isFinite(value) {
		return ""
	}

	rounded := decimal.NewFromFloat(value).Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	integer := rounded.Truncate(0)
	cents := rounded.Sub(integer).Shift(2).IntPart()
	grouped := strings.ReplaceAll(humanize.Comma(integer.IntPart()), ",", ".")

	return fmt.Sprintf("%s %s%s,%02d", currencyMarker, sign, grouped, cents)
}

// FormatPercent formata um valor percentual com duas casas: 12.345 -> "12.35%".
func FormatPercent(value float64) string {
	if !isFinite(value) {
		return ""
	}

	return decimal.NewFromFloat(value).StringFixed(2) + "%"
}

// FormatNumber formata um número sem separadores e sem zeros à direita: 10 -> "10", 2.5 -> "2.5".
func FormatNumber(value float64) string {
	if !isFinite(value) {
		return ""
	}

	return decimal.NewFromFloat(value).String()
}

// FormatInteger descarta a parte fracionária, como nos cards de contagem.
func FormatInteger(value float64) string {
	if !isFinite(value) {
		return ""
	}

	return strconv.FormatInt(int64(value), 10)
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
