package hypeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	hypedomain "github.com/Jrogbaaa/Project-X-sub000/infrastructure/integrator/hypeaudit/domain"
)

type responseSearchProfiles struct {
	Data []hypedomain.ProfileSummary `json:"data"`
}

// SearchProfiles busca perfis por texto livre. Retorna a lista possivelmente
// vazia; "nenhum resultado" não é erro aqui — quem decide o que fazer é o
// gate de verificação
func (c *HypeAuditClient) SearchProfiles(ctx context.Context, platform, query string, limit int) ([]hypedomain.ProfileSummary, error) {
	params := url.Values{}
	params.Add("platform", platform)
	params.Add("q", query)
	params.Add("limit", strconv.Itoa(limit))

	endpoint := fmt.Sprintf("%s/profiles/search?%s", c.cfg.HypeAudit.BaseURL, params.Encode())

	body, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var response responseSearchProfiles
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	return response.Data, nil
}
