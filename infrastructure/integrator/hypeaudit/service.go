package hypeaudit

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	hypedomain "github.com/Jrogbaaa/Project-X-sub000/infrastructure/integrator/hypeaudit/domain"
	"github.com/Jrogbaaa/Project-X-sub000/infrastructure/integrator/hypeaudit/hypeclient"
	"github.com/Jrogbaaa/Project-X-sub000/internal/config"
	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
)

// ErrProfileNotFound indica que a busca textual não encontrou o perfil
var ErrProfileNotFound = errors.New("perfil não encontrado no provedor")

// lookupLimit é o tamanho de página usado na busca textual de perfis
const lookupLimit = 5

// VerifiedProfile é o resultado normalizado de uma verificação de métricas
type VerifiedProfile struct {
	ExternalID string
	Username   string
	Followers  int
	Metrics    *domain.CreatorMetrics
}

// AudienceIntegrator é a fronteira do gateway de métricas vista pelo pipeline.
// LookupProfile custa 1 chamada externa; FetchMetricsByID custa 1 chamada
type AudienceIntegrator interface {
	LookupProfile(ctx context.Context, platform, username string) (*hypedomain.ProfileSummary, error)
	FetchMetricsByID(ctx context.Context, externalID string) (*VerifiedProfile, error)
}

type HypeAuditIntegrator struct {
	cfg    *config.Config
	Client hypeclient.Client
}

func New(cfg *config.Config, client hypeclient.Client) *HypeAuditIntegrator {
	return &HypeAuditIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// LookupProfile localiza o perfil pelo username e retorna o melhor resultado.
// A API pode retornar homônimos: preferimos a correspondência exata de
// username e, na ausência dela, o primeiro resultado
func (s *HypeAuditIntegrator) LookupProfile(ctx context.Context, platform, username string) (*hypedomain.ProfileSummary, error) {
	summaries, err := s.Client.SearchProfiles(ctx, platform, username, lookupLimit)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": platform,
			"username": username,
			"error":    err.Error(),
		}).Error("hypeaudit: failed to search profiles")
		return nil, err
	}

	if len(summaries) == 0 {
		return nil, ErrProfileNotFound
	}

	for i := range summaries {
		if strings.EqualFold(summaries[i].Username, username) {
			return &summaries[i], nil
		}
	}

	return &summaries[0], nil
}

// FetchMetricsByID obtém o relatório completo e o normaliza para o domínio
func (s *HypeAuditIntegrator) FetchMetricsByID(ctx context.Context, externalID string) (*VerifiedProfile, error) {
	report, err := s.Client.GetProfileReport(ctx, externalID)
	if err != nil {
		if errors.Is(err, hypeclient.ErrReportNotFound) {
			return nil, ErrProfileNotFound
		}
		logrus.WithFields(logrus.Fields{
			"external_id": externalID,
			"error":       err.Error(),
		}).Error("hypeaudit: failed to get profile report")
		return nil, err
	}

	return &VerifiedProfile{
		ExternalID: report.ID,
		Username:   report.Username,
		Followers:  report.Followers,
		Metrics:    FactoryCreatorMetrics(report),
	}, nil
}

// FactoryCreatorMetrics converte o relatório bruto do provedor no registro
// canônico de métricas. Campo ausente vira nil, nunca erro: o restante do
// pipeline trata nulos explicitamente
func FactoryCreatorMetrics(report *hypedomain.ProfileReport) *domain.CreatorMetrics {
	metrics := &domain.CreatorMetrics{
		Credibility:    report.AQS,
		EngagementRate: report.EngagementRate,
		GrowthRate6M:   report.FollowerGrowth6M,
	}

	if len(report.AudienceGenders) > 0 {
		metrics.GenderSplit = make(map[string]float64, len(report.AudienceGenders))
		for _, bucket := range report.AudienceGenders {
			metrics.GenderSplit[strings.ToLower(bucket.Code)] = bucket.Weight * 100
		}
	}

	if len(report.AudienceAges) > 0 {
		metrics.AgeGroups = make(map[string]float64, len(report.AudienceAges))
		for _, bucket := range report.AudienceAges {
			metrics.AgeGroups[bucket.Code] = bucket.Weight * 100
		}
	}

	if len(report.AudienceGeo) > 0 {
		metrics.GeoCountries = make(map[string]float64, len(report.AudienceGeo))
		for _, bucket := range report.AudienceGeo {
			metrics.GeoCountries[strings.ToUpper(bucket.Code)] = bucket.Weight * 100
		}
	}

	return metrics
}

// IsComplete informa se o relatório trouxe o mínimo para o filtro estrito
func (p *VerifiedProfile) IsComplete() bool {
	return p.Metrics != nil && p.Metrics.Credibility != nil && p.Metrics.EngagementRate != nil
}
