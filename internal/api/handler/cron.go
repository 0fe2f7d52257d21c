package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
	"github.com/Jrogbaaa/Project-X-sub000/internal/scheduler"
	"github.com/Jrogbaaa/Project-X-sub000/pkg/apiErrors"
	"github.com/Jrogbaaa/Project-X-sub000/pkg/middleware"
)

// Tipos de cron job executáveis manualmente
const (
	CronJobTypeMetricsRefresh = "metrics-refresh"
)

// CronJobServices contém os serviços de cron acionáveis pela API
type CronJobServices struct {
	MetricsRefreshService *scheduler.MetricsRefreshService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRole != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeMetricsRefresh:
			if services.MetricsRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização de métricas não disponível", nil)
				return
			}
			// Contexto próprio: o job sobrevive ao fim da requisição
			go services.MetricsRefreshService.RefreshStaleMetrics(context.Background())

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: metrics-refresh", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
			"type":   cronType,
		})
	}
}

// GetCronStatus retorna o estado corrente dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.MetricsRefreshService != nil {
			status["metrics_refresh"] = services.MetricsRefreshService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("cron: failed to encode status response")
		}
	}
}
