package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/traffic-dashboard-api/infrastructure/export"
	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/traffic-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/traffic-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func ListDashboards(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Variants())
	})
}

// GetDashboard monta o dashboard da variante. Cada parâmetro da query é uma
// coluna categórica e pode se repetir: ?Campanha=A&Campanha=B
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		variant := variantParam(r)
		selections := parseSelections(r.URL.Query())

		logger.WithFields(log.Fields{
			"variant":    variant,
			"selections": selections,
		}).Debug("dashboards: montando dashboard")

		dashboard, err := service.Render(r.Context(), variant, selections)
		if err != nil {
			writeServiceError(w, r, variant, err)
			return
		}

		logger.WithFields(log.Fields{
			"variant": variant,
			"rows":    dashboard.FilteredRows,
		}).Info("dashboards: dashboard entregue")

		writeJSON(w, r, http.StatusOK, dashboard)
	})
}

func GetFilterOptions(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		variant := variantParam(r)

		options, err := service.FilterOptions(r.Context(), variant)
		if err != nil {
			writeServiceError(w, r, variant, err)
			return
		}

		writeJSON(w, r, http.StatusOK, options)
	})
}

// ExportDashboard devolve a tabela detalhada filtrada como planilha XLSX
func ExportDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		variant := variantParam(r)

		detail, err := service.DetailTable(r.Context(), variant, parseSelections(r.URL.Query()))
		if err != nil {
			writeServiceError(w, r, variant, err)
			return
		}

		schema, _ := domain.SchemaFor(variant)

		var buf bytes.Buffer
		if err := export.WriteDetailTable(&buf, schema.Name, *detail); err != nil {
			logger.WithFields(log.Fields{
				"variant": variant,
				"error":   err.Error(),
			}).Error("dashboards: falha ao gerar planilha de exportação")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Não foi possível gerar a planilha", nil)
			return
		}

		w.Header().Set("Content-Type", export.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", schema.Name+".xlsx"))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Warn("dashboards: falha ao enviar planilha")
		}
	})
}

func variantParam(r *http.Request) domain.Variant {
	return domain.Variant(httprouter.ParamsFromContext(r.Context()).ByName("variant"))
}

// parseSelections converte a query em seleções, descartando valores vazios
func parseSelections(query url.Values) domain.Selections {
	selections := make(domain.Selections, len(query))
	for column, values := range query {
		column = strings.TrimSpace(column)
		if column == "" {
			continue
		}
		for _, value := range values {
			if value = strings.TrimSpace(value); value != "" {
				selections[column] = append(selections[column], value)
			}
		}
	}
	return selections
}

// writeServiceError traduz os erros do pipeline para os códigos da API
func writeServiceError(w http.ResponseWriter, r *http.Request, variant domain.Variant, err error) {
	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"variant": variant,
		"error":   err.Error(),
	})

	var dashboardErr *dashboarding.DashboardError
	var fetchErr *loading.FetchError

	switch {
	case errors.Is(err, dashboarding.ErrUnknownVariant):
		logger.Warn("dashboards: variante desconhecida")
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Dashboard não encontrado", map[string]string{"variant": string(variant)})

	case errors.Is(err, dashboarding.ErrInvalidSelection):
		details := ""
		if errors.As(err, &dashboardErr) {
			details = dashboardErr.Details
		}
		logger.Warn("dashboards: filtro inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Filtro inválido", details)

	case errors.Is(err, dashboarding.ErrFeedNotConfigured):
		logger.Error("dashboards: planilha da variante não configurada")
		apiErrors.WriteError(w, apiErrors.ErrFeedNotConfigured, "Planilha não configurada para este dashboard", nil)

	case errors.As(err, &fetchErr):
		logger.WithFields(log.Fields{
			"feed_code":   fetchErr.Code,
			"feed_source": fetchErr.Source,
		}).Error("dashboards: falha ao carregar planilha")
		code := apiErrors.ErrFeedUnreachable
		if fetchErr.Code == loading.CodeUnparseable {
			code = apiErrors.ErrFeedUnparseable
		}
		apiErrors.WriteError(w, code, "Não foi possível carregar a planilha", map[string]string{"variant": string(variant)})

	default:
		logger.Error("dashboards: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("falha ao escrever resposta JSON")
	}
}
