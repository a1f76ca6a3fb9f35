package scheduler

import "github.com/vfg2006/traffic-dashboard-api/internal/domain"

// Refresher expõe o disparo manual e o status da atualização das planilhas
type Refresher interface {
	// TriggerManualSync dispara a atualização em segundo plano. Sem variantes, atualiza todas as configuradas.
	TriggerManualSync(variants ...domain.Variant)
	GetStatus() map[string]any
}

var _ Refresher = (*FeedRefreshService)(nil)
