package domain

import (
	"strconv"
	"time"
)

// Kind é o tipo lógico de uma coluna da tabela
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	default:
		return "string"
	}
}

// Value representa uma célula tipada. Missing indica ausência de dado válido,
// que é diferente de zero ou de texto vazio.
type Value struct {
	Kind    Kind
	Missing bool
	Text    string
	Number  float64
	Date    time.Time
}

func StringValue(text string) Value {
	return Value{Kind: KindString, Text: text}
}

func NumberValue(number float64) Value {
	return Value{Kind: KindNumber, Number: number}
}

func DateValue(date time.Time) Value {
	return Value{Kind: KindDate, Date: date}
}

func MissingValue(kind Kind) Value {
	return Value{Kind: kind, Missing: true}
}

// Key retorna a representação canônica usada em filtros e agrupamentos.
// Datas usam o formato ISO para que a ordenação textual seja cronológica.
func (v Value) Key() string {
	if v.Missing {
		return ""
	}

	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindDate:
		return v.Date.Format(time.DateOnly)
	default:
		return v.Text
	}
}
