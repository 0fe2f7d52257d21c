package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/matching"
	"github.com/Jrogbaaa/Project-X-sub000/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SearchRequest aceita o briefing em texto livre ou a consulta já
// estruturada. Quando ambos vierem, a consulta estruturada vence
type SearchRequest struct {
	Brief string                `json:"brief,omitempty"`
	Query *domain.CampaignQuery `json:"query,omitempty"`
}

// RunSearch executa uma busca de criadores para uma campanha
func RunSearch(service matching.Matcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SearchRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Query == nil && req.Brief == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o briefing ou a consulta estruturada", nil)
			return
		}

		var (
			response *domain.SearchResponse
			err      error
		)

		if req.Query != nil {
			response, err = service.RunSearchWithQuery(r.Context(), req.Query)
		} else {
			response, err = service.RunSearch(r.Context(), req.Brief)
		}
		if err != nil {
			logrus.WithError(err).Error("search: failed to run search")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar a busca", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("search: failed to encode response")
		}
	}
}
