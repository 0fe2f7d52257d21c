package hypeclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	hypedomain "github.com/Jrogbaaa/Project-X-sub000/infrastructure/integrator/hypeaudit/domain"
	"github.com/Jrogbaaa/Project-X-sub000/internal/config"
)

// Client é o acesso bruto à API do HypeAudit. Duas operações: busca textual
// de perfis e relatório completo por token. Retry/backoff e limite de vazão
// ficam aqui; a normalização para o domínio fica no integrador
type Client interface {
	SearchProfiles(ctx context.Context, platform, query string, limit int) ([]hypedomain.ProfileSummary, error)
	GetProfileReport(ctx context.Context, profileID string) (*hypedomain.ProfileReport, error)
}

type HypeAuditClient struct {
	cfg        *config.Config
	httpClient *retryablehttp.Client
	limiter    *rate.Limiter
}

func NewClient(cfg *config.Config) Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.HypeAudit.RetryMax
	retryClient.RetryWaitMin = cfg.HypeAudit.RetryWaitBase
	retryClient.RetryWaitMax = cfg.HypeAudit.RetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.HypeAudit.RequestTimeout

	// DefaultBackoff é exponencial a partir de RetryWaitMin com teto em
	// RetryWaitMax e respeita o header Retry-After em respostas 429/503
	retryClient.Backoff = retryablehttp.DefaultBackoff
	retryClient.CheckRetry = retryablehttp.DefaultRetryPolicy
	retryClient.Logger = nil

	retryClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			logrus.WithFields(logrus.Fields{
				"url":     req.URL.Path,
				"attempt": attempt,
			}).Warn("hypeaudit: retrying request")
		}
	}

	ratePerSecond := cfg.HypeAudit.RatePerSecond
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}

	return &HypeAuditClient{
		cfg:        cfg,
		httpClient: retryClient,
		limiter:    rate.NewLimiter(rate.Limit(ratePerSecond), 1),
	}
}

// doRequest aguarda o limitador de vazão, anexa o bearer token e executa a
// requisição com a política de retry configurada
func (c *HypeAuditClient) doRequest(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("erro ao aguardar o limitador de vazão: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.HypeAudit.AccessToken)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	logrus.WithFields(logrus.Fields{
		"url":         req.URL.Path,
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("hypeaudit: request completed")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resposta inesperada do HypeAudit: status %d", resp.StatusCode)
	}

	return body, nil
}
