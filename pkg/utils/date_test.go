package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLocaleDate(t *testing.T) {
	expected := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "Dia primeiro", input: "05/03/2024", ok: true},
		{name: "Dia primeiro sem zero", input: "5/3/2024", ok: true},
		{name: "Com horário", input: "05/03/2024 14:30:00", ok: true},
		{name: "ISO", input: "2024-03-05", ok: true},
		{name: "ISO com horário", input: "2024-03-05 08:00:00", ok: true},
		{name: "Com marcador de moeda", input: "R$ 05/03/2024", ok: true},
		{name: "Vazio", input: "", ok: false},
		{name: "Texto inválido", input: "ontem", ok: false},
		{name: "Mês inválido", input: "05/13/2024", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, ok := ParseLocaleDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, expected.Equal(date), "esperado %s, obtido %s", expected, date)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05/03/2024", FormatDate(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)))
}
