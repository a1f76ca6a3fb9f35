package handler

import (
	"net/http"

	"github.com/vfg2006/traffic-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/traffic-dashboard-api/internal/scheduler"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/traffic-dashboard-api/pkg/metrics"
	"github.com/vfg2006/traffic-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

// Dashboards registra as rotas de leitura, limitadas por IP do cliente
func Dashboards(service dashboarding.Dashboarder, limiter *middleware.RateLimiter) []router.Route {
	limited := []func(http.Handler) http.Handler{middleware.RateLimit(limiter)}

	return []router.Route{
		{
			Path:        "/v1/dashboards",
			Method:      http.MethodGet,
			Handler:     ListDashboards(service),
			Middlewares: limited,
		},
		{
			Path:        "/v1/dashboards/:variant",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: limited,
		},
		{
			Path:        "/v1/dashboards/:variant/filters",
			Method:      http.MethodGet,
			Handler:     GetFilterOptions(service),
			Middlewares: limited,
		},
		{
			Path:        "/v1/dashboards/:variant/export",
			Method:      http.MethodGet,
			Handler:     ExportDashboard(service),
			Middlewares: limited,
		},
	}
}

func CronJobs(refresher scheduler.Refresher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(refresher),
		},
		{
			Path:    "/v1/cron",
			Method:  http.MethodGet,
			Handler: GetCronStatus(refresher),
		},
	}
}
