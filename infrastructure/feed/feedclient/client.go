package feedclient

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/vfg2006/traffic-dashboard-api/internal/config"
	"github.com/vfg2006/traffic-dashboard-api/pkg/log"
	"github.com/vfg2006/traffic-dashboard-api/pkg/metrics"
	"github.com/vfg2006/traffic-dashboard-api/pkg/utils"
)

// Payload é o conteúdo bruto de uma planilha obtida de uma origem
type Payload struct {
	Source      string
	Body        []byte
	ContentType string
	FetchedAt   time.Time
}

// Client obtém o conteúdo bruto de uma planilha a partir de uma URL ou caminho local
type Client interface {
	Fetch(ctx context.Context, source string) (*Payload, error)
}

type FeedClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg *config.Config) Client {
	return &FeedClient{
		httpClient: &http.Client{
			Timeout: cfg.Feed.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.Feed.RequestsPerSecond), 1),
	}
}

func (c *FeedClient) Fetch(ctx context.Context, source string) (*Payload, error) {
	start := time.Now()
	logger := log.L.WithContext(ctx).WithField("source", source)

	payload, err := c.fetch(ctx, source)
	metrics.FeedFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.FeedFetchTotal.WithLabelValues("error").Inc()
		logger.WithError(err).Error("Falha ao buscar planilha")
		return nil, err
	}

	metrics.FeedFetchTotal.WithLabelValues("ok").Inc()
	logger.WithField("bytes", len(payload.Body)).Debug("Planilha obtida")

	return payload, nil
}

func (c *FeedClient) fetch(ctx context.Context, source string) (*Payload, error) {
	if !IsRemote(source) {
		body, err := os.ReadFile(source)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler arquivo %s", source)
		}
		return &Payload{Source: source, Body: body, FetchedAt: time.Now()}, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "erro aguardando limite de requisições")
	}

	body, header, err := utils.MakeRequest(ctx, c.httpClient, source)
	if err != nil {
		return nil, err
	}

	return &Payload{
		Source:      source,
		Body:        body,
		ContentType: header.Get("Content-Type"),
		FetchedAt:   time.Now(),
	}, nil
}

// IsRemote indica se a origem deve ser buscada via HTTP
func IsRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
