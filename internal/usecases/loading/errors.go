package loading

import (
	"errors"
	"fmt"
)

// Códigos de erro expostos pela API
const (
	CodeSourceUnreachable = "FEED_001"
	CodeUnparseable       = "FEED_002"
)

var (
	// ErrFetch é o erro base de qualquer falha ao obter uma planilha
	ErrFetch = errors.New("feed fetch failed")

	ErrSourceUnreachable = errors.New("feed source unreachable")
	ErrUnparseable       = errors.New("feed is not parseable as tabular text")
)

// FetchError é um erro com contexto adicional sobre a origem da planilha
type FetchError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Source  string // URL ou caminho da planilha
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *FetchError) Error() string {
	msg := e.Err.Error()
	if e.Source != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Source)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is faz qualquer FetchError corresponder a ErrFetch
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// NewFetchError cria um novo FetchError
func NewFetchError(err error, code, source, details string) *FetchError {
	return &FetchError{
		Err:     err,
		Code:    code,
		Source:  source,
		Details: details,
	}
}
