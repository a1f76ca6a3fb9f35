package loading

import (
	"context"
	"time"

	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/table"
)

// Loader obtém uma planilha e devolve a tabela já convertida segundo o schema
type Loader interface {
	// Load busca a origem (URL ou caminho) e converte as colunas do schema.
	// Falhas de acesso ou de leitura retornam *FetchError; anomalias em
	// células nunca são erro.
	Load(ctx context.Context, source string, schema domain.Schema) (*table.Table, error)
}

// Snapshot é uma tabela carregada identificada para reaproveitamento entre requisições
type Snapshot struct {
	ID       string
	Source   string
	Schema   string
	Table    *table.Table
	LoadedAt time.Time
}
