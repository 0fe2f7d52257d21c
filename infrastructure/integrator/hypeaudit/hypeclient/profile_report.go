package hypeclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	hypedomain "github.com/Jrogbaaa/Project-X-sub000/infrastructure/integrator/hypeaudit/domain"
)

// ErrReportNotFound indica que o provedor não possui relatório para o token
var ErrReportNotFound = errors.New("relatório de perfil não encontrado")

type responseProfileReport struct {
	Data *hypedomain.ProfileReport `json:"data"`
}

// GetProfileReport obtém o relatório completo de métricas por token de perfil
func (c *HypeAuditClient) GetProfileReport(ctx context.Context, profileID string) (*hypedomain.ProfileReport, error) {
	endpoint := fmt.Sprintf("%s/profiles/%s/report", c.cfg.HypeAudit.BaseURL, url.PathEscape(profileID))

	body, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var response responseProfileReport
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	if response.Data == nil {
		return nil, ErrReportNotFound
	}

	return response.Data, nil
}
