package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/scheduler"
	"github.com/vfg2006/traffic-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/traffic-dashboard-api/pkg/log"
)

// CronJobTypeAll atualiza todas as planilhas configuradas
const CronJobTypeAll = "all"

// RunCronJob dispara manualmente a atualização de uma planilha (campaign, credit ou all)
func RunCronJob(refresher scheduler.Refresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeAll:
			refresher.TriggerManualSync()
		default:
			variant := domain.Variant(cronType)
			if _, ok := domain.SchemaFor(variant); !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: campaign, credit, all", nil)
				return
			}
			refresher.TriggerManualSync(variant)
		}

		logger.WithField("variant", cronType).Info("cron: atualização manual iniciada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status da atualização das planilhas
func GetCronStatus(refresher scheduler.Refresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, refresher.GetStatus())
	})
}
