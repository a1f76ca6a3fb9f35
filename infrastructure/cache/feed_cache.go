// Package cache guarda as planilhas carregadas por origem durante um TTL
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/traffic-dashboard-api/pkg/log"
	"github.com/vfg2006/traffic-dashboard-api/pkg/metrics"
	"github.com/vfg2006/traffic-dashboard-api/pkg/utils"
)

type entry struct {
	snapshot  *loading.Snapshot
	expiresAt time.Time
}

// FeedCache memoriza tabelas por origem e schema. Com TTL zero nada é
// guardado, mas cargas concorrentes da mesma origem continuam unificadas.
type FeedCache struct {
	loader  loading.Loader
	ttl     time.Duration
	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewFeedCache(loader loading.Loader, ttl time.Duration) *FeedCache {
	return &FeedCache{
		loader:  loader,
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func cacheKey(source string, schema domain.Schema) string {
	return source + "|" + schema.Name
}

// Get devolve a tabela em cache ou a carrega da origem
func (c *FeedCache) Get(ctx context.Context, source string, schema domain.Schema) (*loading.Snapshot, error) {
	key := cacheKey(source, schema)

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && c.now().Before(cached.expiresAt) {
		metrics.FeedCacheTotal.WithLabelValues("hit").Inc()
		return cached.snapshot, nil
	}

	metrics.FeedCacheTotal.WithLabelValues("miss").Inc()
	return c.load(ctx, key, source, schema)
}

// Refresh recarrega a origem. Em caso de falha a entrada anterior é mantida.
func (c *FeedCache) Refresh(ctx context.Context, source string, schema domain.Schema) (*loading.Snapshot, error) {
	return c.load(ctx, cacheKey(source, schema), source, schema)
}

// Invalidate descarta a entrada da origem
func (c *FeedCache) Invalidate(source string, schema domain.Schema) {
	c.mu.Lock()
	delete(c.entries, cacheKey(source, schema))
	c.mu.Unlock()
}

func (c *FeedCache) load(ctx context.Context, key, source string, schema domain.Schema) (*loading.Snapshot, error) {
	result, err, shared := c.group.Do(key, func() (interface{}, error) {
		tbl, err := c.loader.Load(ctx, source, schema)
		if err != nil {
			return nil, err
		}

		id, err := utils.NewSnapshotID(schema.Name)
		if err != nil {
			return nil, err
		}

		snapshot := &loading.Snapshot{
			ID:       id,
			Source:   source,
			Schema:   schema.Name,
			Table:    tbl,
			LoadedAt: c.now(),
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[key] = entry{snapshot: snapshot, expiresAt: snapshot.LoadedAt.Add(c.ttl)}
			c.mu.Unlock()
		}

		return snapshot, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		log.L.WithContext(ctx).WithField("source", source).Debug("Carga de planilha compartilhada entre requisições")
	}

	return result.(*loading.Snapshot), nil
}
