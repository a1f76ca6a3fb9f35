// Package metrics concentra os coletores Prometheus da aplicação
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "feed_dashboard"

var (
	FeedFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_fetch_total",
		Help:      "Total de buscas de planilhas por resultado.",
	}, []string{"result"})

	FeedFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "feed_fetch_duration_seconds",
		Help:      "Duração das buscas de planilhas.",
		Buckets:   prometheus.DefBuckets,
	})

	FeedCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_cache_total",
		Help:      "Consultas ao cache de planilhas por resultado (hit, miss).",
	}, []string{"result"})

	RowsLoaded = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "rows_loaded",
		Help:      "Linhas carregadas na última leitura de cada schema.",
	}, []string{"schema"})

	CellsCoerced = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cells_coerced_total",
		Help:      "Células convertidas por schema e resultado (ok, missing).",
	}, []string{"schema", "result"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Requisições HTTP por método e status.",
	}, []string{"method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

// Handler expõe as métricas no formato Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
