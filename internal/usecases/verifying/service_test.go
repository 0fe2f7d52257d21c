package verifying

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Jrogbaaa/Project-X-sub000/infrastructure/integrator/hypeaudit"
	hypedomain "github.com/Jrogbaaa/Project-X-sub000/infrastructure/integrator/hypeaudit/domain"
	hypemocks "github.com/Jrogbaaa/Project-X-sub000/infrastructure/integrator/hypeaudit/mocks"
	repomocks "github.com/Jrogbaaa/Project-X-sub000/infrastructure/repository/mocks"
	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
)

var testNow = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

func testConfig() Config {
	return Config{
		FreshnessWindow: 168 * time.Hour,
		MaxWorkers:      5,
		CallBudget:      15,
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func completeProfile(externalID string, followers int) *hypeaudit.VerifiedProfile {
	return &hypeaudit.VerifiedProfile{
		ExternalID: externalID,
		Followers:  followers,
		Metrics: &domain.CreatorMetrics{
			Credibility:    floatPtr(82),
			EngagementRate: floatPtr(0.04),
		},
	}
}

func newTestService(integrator hypeaudit.AudienceIntegrator, repo *repomocks.MockCreatorRepository, cfg Config) *Service {
	service := NewService(integrator, repo, cfg)
	service.now = func() time.Time { return testNow }
	return service
}

func TestVerifyCandidates(t *testing.T) {
	tests := []struct {
		name       string
		config     Config
		candidates func() []*domain.Creator
		setup      func(integrator *hypemocks.MockAudienceIntegrator, repo *repomocks.MockCreatorRepository)
		validate   func(t *testing.T, result *Result, stats *domain.VerificationStats)
	}{
		{
			name:   "Candidato com métricas frescas dispensa chamada externa",
			config: testConfig(),
			candidates: func() []*domain.Creator {
				verifiedAt := testNow.Add(-24 * time.Hour)
				return []*domain.Creator{{
					Platform:        "instagram",
					Username:        "fresca",
					Metrics:         &domain.CreatorMetrics{Credibility: floatPtr(90)},
					MetricsComplete: true,
					VerifiedAt:      &verifiedAt,
				}}
			},
			setup: func(integrator *hypemocks.MockAudienceIntegrator, repo *repomocks.MockCreatorRepository) {},
			validate: func(t *testing.T, result *Result, stats *domain.VerificationStats) {
				assert.Len(t, result.Verified, 1)
				assert.Empty(t, result.Unverified)
				assert.Equal(t, 1, stats.AlreadyFresh)
				assert.Zero(t, stats.ExternalCalls)
				assert.False(t, result.Degraded)
			},
		},
		{
			name:   "Token lembrado usa o caminho direto de uma chamada",
			config: testConfig(),
			candidates: func() []*domain.Creator {
				return []*domain.Creator{{
					Platform:   "instagram",
					Username:   "direta",
					ExternalID: strPtr("tok-1"),
				}}
			},
			setup: func(integrator *hypemocks.MockAudienceIntegrator, repo *repomocks.MockCreatorRepository) {
				integrator.EXPECT().
					FetchMetricsByID(gomock.Any(), "tok-1").
					Return(completeProfile("tok-1", 12000), nil)
				repo.EXPECT().UpdateMetrics(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *Result, stats *domain.VerificationStats) {
				assert.Len(t, result.Verified, 1)
				assert.Equal(t, 1, stats.Verified)
				assert.Equal(t, 1, stats.ExternalCalls)
				assert.Equal(t, 12000, result.Verified[0].FollowerCount)
				assert.True(t, result.Verified[0].MetricsComplete)
				assert.Equal(t, testNow, *result.Verified[0].VerifiedAt)
			},
		},
		{
			name:   "Sem token o caminho completo custa duas chamadas",
			config: testConfig(),
			candidates: func() []*domain.Creator {
				return []*domain.Creator{{Platform: "instagram", Username: "completa"}}
			},
			setup: func(integrator *hypemocks.MockAudienceIntegrator, repo *repomocks.MockCreatorRepository) {
				integrator.EXPECT().
					LookupProfile(gomock.Any(), "instagram", "completa").
					Return(&hypedomain.ProfileSummary{ID: "tok-9", Username: "completa", Followers: 8000}, nil)
				integrator.EXPECT().
					FetchMetricsByID(gomock.Any(), "tok-9").
					Return(completeProfile("tok-9", 0), nil)
				repo.EXPECT().UpdateMetrics(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *Result, stats *domain.VerificationStats) {
				assert.Len(t, result.Verified, 1)
				assert.Equal(t, 2, stats.ExternalCalls)
				// Relatório sem contagem usa a contagem vinda da busca textual
				assert.Equal(t, 8000, result.Verified[0].FollowerCount)
			},
		},
		{
			name: "Orçamento de chamadas limita quantos candidatos são despachados",
			config: Config{
				FreshnessWindow: 168 * time.Hour,
				MaxWorkers:      5,
				CallBudget:      3,
			},
			candidates: func() []*domain.Creator {
				return []*domain.Creator{
					{Platform: "instagram", Username: "primeira"},
					{Platform: "instagram", Username: "segunda"},
					{Platform: "instagram", Username: "terceira"},
				}
			},
			setup: func(integrator *hypemocks.MockAudienceIntegrator, repo *repomocks.MockCreatorRepository) {
				integrator.EXPECT().
					LookupProfile(gomock.Any(), "instagram", "primeira").
					Return(&hypedomain.ProfileSummary{ID: "tok-a", Username: "primeira"}, nil)
				integrator.EXPECT().
					FetchMetricsByID(gomock.Any(), "tok-a").
					Return(completeProfile("tok-a", 5000), nil)
				repo.EXPECT().UpdateMetrics(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *Result, stats *domain.VerificationStats) {
				assert.Len(t, result.Verified, 1)
				assert.Len(t, result.Unverified, 2)
				assert.Equal(t, 2, stats.ExternalCalls)
				// Pulados por orçamento não contam como falha nem degradam a busca
				assert.Zero(t, stats.FailedVerification)
				assert.False(t, result.Degraded)
			},
		},
		{
			name:   "Falha total de verificação degrada a busca sem derrubá-la",
			config: testConfig(),
			candidates: func() []*domain.Creator {
				return []*domain.Creator{
					{Platform: "instagram", Username: "uma"},
					{Platform: "instagram", Username: "outra"},
				}
			},
			setup: func(integrator *hypemocks.MockAudienceIntegrator, repo *repomocks.MockCreatorRepository) {
				integrator.EXPECT().
					LookupProfile(gomock.Any(), "instagram", gomock.Any()).
					Return(nil, errors.New("upstream indisponível")).
					Times(2)
			},
			validate: func(t *testing.T, result *Result, stats *domain.VerificationStats) {
				assert.Empty(t, result.Verified)
				assert.Len(t, result.Unverified, 2)
				assert.True(t, result.Degraded)
				assert.Equal(t, 2, stats.FailedVerification)
				assert.Equal(t, 4, stats.ExternalCalls)
			},
		},
		{
			name:   "Candidato duplicado é verificado uma única vez",
			config: testConfig(),
			candidates: func() []*domain.Creator {
				duplicated := &domain.Creator{Platform: "instagram", Username: "Repetida", ExternalID: strPtr("tok-d")}
				other := &domain.Creator{Platform: "instagram", Username: "repetida", ExternalID: strPtr("tok-d")}
				return []*domain.Creator{duplicated, other}
			},
			setup: func(integrator *hypemocks.MockAudienceIntegrator, repo *repomocks.MockCreatorRepository) {
				integrator.EXPECT().
					FetchMetricsByID(gomock.Any(), "tok-d").
					Return(completeProfile("tok-d", 3000), nil).
					Times(1)
				repo.EXPECT().UpdateMetrics(gomock.Any()).Return(nil).Times(1)
			},
			validate: func(t *testing.T, result *Result, stats *domain.VerificationStats) {
				assert.Len(t, result.Verified, 1)
				assert.Empty(t, result.Unverified)
				assert.Equal(t, 1, stats.ExternalCalls)
			},
		},
		{
			name:   "Ordem de entrada é preservada nos dois conjuntos",
			config: testConfig(),
			candidates: func() []*domain.Creator {
				return []*domain.Creator{
					{Platform: "instagram", Username: "ana", ExternalID: strPtr("tok-ana")},
					{Platform: "instagram", Username: "bia", ExternalID: strPtr("tok-bia")},
					{Platform: "instagram", Username: "clara", ExternalID: strPtr("tok-clara")},
					{Platform: "instagram", Username: "duda", ExternalID: strPtr("tok-duda")},
				}
			},
			setup: func(integrator *hypemocks.MockAudienceIntegrator, repo *repomocks.MockCreatorRepository) {
				integrator.EXPECT().
					FetchMetricsByID(gomock.Any(), "tok-ana").
					Return(completeProfile("tok-ana", 1000), nil)
				integrator.EXPECT().
					FetchMetricsByID(gomock.Any(), "tok-bia").
					Return(nil, errors.New("relatório indisponível"))
				integrator.EXPECT().
					FetchMetricsByID(gomock.Any(), "tok-clara").
					Return(completeProfile("tok-clara", 2000), nil)
				integrator.EXPECT().
					FetchMetricsByID(gomock.Any(), "tok-duda").
					Return(nil, errors.New("relatório indisponível"))
				repo.EXPECT().UpdateMetrics(gomock.Any()).Return(nil).Times(2)
			},
			validate: func(t *testing.T, result *Result, stats *domain.VerificationStats) {
				assert.Equal(t, "ana", result.Verified[0].Username)
				assert.Equal(t, "clara", result.Verified[1].Username)
				assert.Equal(t, "bia", result.Unverified[0].Username)
				assert.Equal(t, "duda", result.Unverified[1].Username)
				assert.False(t, result.Degraded)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			integrator := hypemocks.NewMockAudienceIntegrator(ctrl)
			repo := repomocks.NewMockCreatorRepository(ctrl)
			tt.setup(integrator, repo)

			service := newTestService(integrator, repo, tt.config)
			stats := domain.NewVerificationStats()

			result := service.VerifyCandidates(context.Background(), tt.candidates(), stats)

			tt.validate(t, result, stats)
		})
	}
}

func TestVerifyCandidates_RespectsWorkerLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const maxWorkers = 2
	const candidateCount = 6

	var inFlight, peak int64

	integrator := hypemocks.NewMockAudienceIntegrator(ctrl)
	repo := repomocks.NewMockCreatorRepository(ctrl)

	integrator.EXPECT().
		FetchMetricsByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, externalID string) (*hypeaudit.VerifiedProfile, error) {
			current := atomic.AddInt64(&inFlight, 1)
			for {
				observed := atomic.LoadInt64(&peak)
				if current <= observed || atomic.CompareAndSwapInt64(&peak, observed, current) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt64(&inFlight, -1)
			return completeProfile(externalID, 1000), nil
		}).
		Times(candidateCount)
	repo.EXPECT().UpdateMetrics(gomock.Any()).Return(nil).Times(candidateCount)

	service := newTestService(integrator, repo, Config{
		FreshnessWindow: 168 * time.Hour,
		MaxWorkers:      maxWorkers,
		CallBudget:      candidateCount,
	})

	candidates := make([]*domain.Creator, 0, candidateCount)
	for i := 0; i < candidateCount; i++ {
		token := "tok-" + string(rune('a'+i))
		candidates = append(candidates, &domain.Creator{
			Platform:   "instagram",
			Username:   "worker" + string(rune('a'+i)),
			ExternalID: &token,
		})
	}

	stats := domain.NewVerificationStats()
	result := service.VerifyCandidates(context.Background(), candidates, stats)

	assert.Len(t, result.Verified, candidateCount)
	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(maxWorkers))
	assert.Equal(t, candidateCount, stats.ExternalCalls)
}

func TestVerifyCandidates_CanceledContextCountsAsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := hypemocks.NewMockAudienceIntegrator(ctrl)
	repo := repomocks.NewMockCreatorRepository(ctrl)

	service := newTestService(integrator, repo, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats := domain.NewVerificationStats()
	result := service.VerifyCandidates(ctx, []*domain.Creator{
		{Platform: "instagram", Username: "cancelada"},
	}, stats)

	assert.Empty(t, result.Verified)
	assert.Len(t, result.Unverified, 1)
	assert.True(t, result.Degraded)
	assert.Equal(t, 1, stats.FailedVerification)
	assert.Zero(t, stats.ExternalCalls)
}
