package hypeaudit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	hypedomain "github.com/Jrogbaaa/Project-X-sub000/infrastructure/integrator/hypeaudit/domain"
	"github.com/Jrogbaaa/Project-X-sub000/infrastructure/integrator/hypeaudit/hypeclient"
	clientmocks "github.com/Jrogbaaa/Project-X-sub000/infrastructure/integrator/hypeaudit/hypeclient/mocks"
	"github.com/Jrogbaaa/Project-X-sub000/internal/config"
)

func floatPtr(f float64) *float64 { return &f }

func newIntegrator(t *testing.T) (*HypeAuditIntegrator, *clientmocks.MockClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := clientmocks.NewMockClient(ctrl)
	return New(&config.Config{}, client), client
}

func TestLookupProfile(t *testing.T) {
	t.Run("Prefere a correspondência exata de username entre homônimos", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().
			SearchProfiles(gomock.Any(), "instagram", "mariafit", 5).
			Return([]hypedomain.ProfileSummary{
				{ID: "p-1", Username: "mariafit_oficial"},
				{ID: "p-2", Username: "MariaFit"},
			}, nil)

		summary, err := integrator.LookupProfile(context.Background(), "instagram", "mariafit")

		assert.NoError(t, err)
		assert.Equal(t, "p-2", summary.ID)
	})

	t.Run("Sem correspondência exata usa o primeiro resultado", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().
			SearchProfiles(gomock.Any(), "instagram", "maria", 5).
			Return([]hypedomain.ProfileSummary{
				{ID: "p-1", Username: "mariafit_oficial"},
				{ID: "p-2", Username: "maria.viajes"},
			}, nil)

		summary, err := integrator.LookupProfile(context.Background(), "instagram", "maria")

		assert.NoError(t, err)
		assert.Equal(t, "p-1", summary.ID)
	})

	t.Run("Busca vazia vira perfil não encontrado", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().
			SearchProfiles(gomock.Any(), "instagram", "inexistente", 5).
			Return([]hypedomain.ProfileSummary{}, nil)

		summary, err := integrator.LookupProfile(context.Background(), "instagram", "inexistente")

		assert.Nil(t, summary)
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("Erro do cliente é propagado", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().
			SearchProfiles(gomock.Any(), "instagram", "qualquer", 5).
			Return(nil, errors.New("status 500"))

		_, err := integrator.LookupProfile(context.Background(), "instagram", "qualquer")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrProfileNotFound)
	})
}

func TestFetchMetricsByID(t *testing.T) {
	t.Run("Relatório é normalizado para o perfil verificado", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().
			GetProfileReport(gomock.Any(), "p-1").
			Return(&hypedomain.ProfileReport{
				ID:             "p-1",
				Username:       "mariafit",
				Followers:      45000,
				AQS:            floatPtr(82),
				EngagementRate: floatPtr(0.045),
			}, nil)

		profile, err := integrator.FetchMetricsByID(context.Background(), "p-1")

		assert.NoError(t, err)
		assert.Equal(t, "p-1", profile.ExternalID)
		assert.Equal(t, 45000, profile.Followers)
		assert.Equal(t, 82.0, *profile.Metrics.Credibility)
		assert.True(t, profile.IsComplete())
	})

	t.Run("Relatório inexistente vira perfil não encontrado", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().
			GetProfileReport(gomock.Any(), "p-x").
			Return(nil, hypeclient.ErrReportNotFound)

		_, err := integrator.FetchMetricsByID(context.Background(), "p-x")

		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}

func TestFactoryCreatorMetrics(t *testing.T) {
	t.Run("Buckets do provedor viram percentuais normalizados", func(t *testing.T) {
		report := &hypedomain.ProfileReport{
			AQS:              floatPtr(75),
			EngagementRate:   floatPtr(0.03),
			FollowerGrowth6M: floatPtr(-0.02),
			AudienceGenders: []hypedomain.WeightedBucket{
				{Code: "FEMALE", Weight: 0.62},
				{Code: "MALE", Weight: 0.38},
			},
			AudienceAges: []hypedomain.WeightedBucket{
				{Code: "18-24", Weight: 0.40},
			},
			AudienceGeo: []hypedomain.WeightedBucket{
				{Code: "es", Weight: 0.55},
				{Code: "mx", Weight: 0.20},
			},
		}

		metrics := FactoryCreatorMetrics(report)

		assert.Equal(t, 75.0, *metrics.Credibility)
		assert.Equal(t, 0.03, *metrics.EngagementRate)
		assert.Equal(t, -0.02, *metrics.GrowthRate6M)
		assert.InDelta(t, 62.0, metrics.GenderSplit["female"], 1e-9)
		assert.InDelta(t, 38.0, metrics.GenderSplit["male"], 1e-9)
		assert.InDelta(t, 40.0, metrics.AgeGroups["18-24"], 1e-9)
		assert.InDelta(t, 55.0, metrics.GeoCountries["ES"], 1e-9)
		assert.InDelta(t, 20.0, metrics.GeoCountries["MX"], 1e-9)
	})

	t.Run("Relatório vazio produz métricas sem breakdowns", func(t *testing.T) {
		metrics := FactoryCreatorMetrics(&hypedomain.ProfileReport{})

		assert.Nil(t, metrics.Credibility)
		assert.Nil(t, metrics.EngagementRate)
		assert.Nil(t, metrics.GenderSplit)
		assert.Nil(t, metrics.AgeGroups)
		assert.Nil(t, metrics.GeoCountries)
	})
}
