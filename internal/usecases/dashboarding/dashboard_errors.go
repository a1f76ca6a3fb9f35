package dashboarding

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de dashboards
var (
	ErrUnknownVariant    = errors.New("unknown dashboard variant")
	ErrFeedNotConfigured = errors.New("feed source not configured")
	ErrInvalidSelection  = errors.New("invalid filter selection")
)

// DashboardError é um erro com contexto adicional para dashboards
type DashboardError struct {
	Err     error  // Erro base
	Variant string // Variante envolvida
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Variant, e.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Variant)
}

// Unwrap retorna o erro subjacente
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError cria um novo DashboardError
func NewDashboardError(err error, variant string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Variant: variant,
		Details: details,
	}
}
