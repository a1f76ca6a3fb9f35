package loading

import (
	"bytes"
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/traffic-dashboard-api/infrastructure/feed/feedclient"
	"github.com/vfg2006/traffic-dashboard-api/internal/config"
	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/table"
	"github.com/vfg2006/traffic-dashboard-api/pkg/log"
	"github.com/vfg2006/traffic-dashboard-api/pkg/metrics"
)

// Service implementa Loader sobre o cliente de planilhas
type Service struct {
	client  feedclient.Client
	options ParseOptions
}

// NewService cria uma nova instância do serviço de carga
func NewService(cfg *config.Config, client feedclient.Client) Loader {
	return &Service{
		client: client,
		options: ParseOptions{
			Delimiter: cfg.Feed.DelimiterRune(),
			Encoding:  cfg.Feed.Encoding,
		},
	}
}

func (s *Service) Load(ctx context.Context, source string, schema domain.Schema) (*table.Table, error) {
	logger := log.L.WithContext(ctx).WithFields(log.Fields{
		"source": source,
		"schema": schema.Name,
	})

	start := time.Now()
	payload, err := s.client.Fetch(ctx, source)
	if err != nil {
		return nil, NewFetchError(ErrSourceUnreachable, CodeSourceUnreachable, source, err.Error())
	}

	t, err := Parse(bytes.NewReader(payload.Body), s.options, schema)
	if err != nil {
		var fetchErr *FetchError
		if errors.As(err, &fetchErr) {
			fetchErr.Source = source
			return nil, fetchErr
		}
		return nil, NewFetchError(ErrUnparseable, CodeUnparseable, source, err.Error())
	}

	metrics.RowsLoaded.WithLabelValues(schema.Name).Set(float64(t.Len()))
	logger.WithFields(log.Fields{
		"rows":        t.Len(),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Planilha carregada")

	return t, nil
}
