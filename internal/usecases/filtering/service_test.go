package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
	intelmocks "github.com/Jrogbaaa/Project-X-sub000/internal/usecases/intelligence/mocks"
)

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func passingMetrics() *domain.CreatorMetrics {
	return &domain.CreatorMetrics{
		Credibility:    floatPtr(85),
		EngagementRate: floatPtr(0.05),
		GeoCountries:   map[string]float64{"ES": 60},
	}
}

func baseQuery() *domain.CampaignQuery {
	return &domain.CampaignQuery{
		Thresholds: domain.QualityThresholds{
			MinCredibility:   70,
			MinSpainAudience: 40,
		},
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Candidate
		query      *domain.CampaignQuery
		setup      func(intel *intelmocks.MockIntelligence)
		validate   func(t *testing.T, survivors []Candidate, stats *domain.VerificationStats)
	}{
		{
			name: "Verificado sem campo obrigatório é rejeitado no modo estrito",
			candidates: []Candidate{{
				Creator:  &domain.Creator{Username: "semdados"},
				Verified: true,
			}},
			query: baseQuery(),
			setup: func(intel *intelmocks.MockIntelligence) {},
			validate: func(t *testing.T, survivors []Candidate, stats *domain.VerificationStats) {
				assert.Empty(t, survivors)
				assert.Equal(t, 1, stats.RejectionReasons[domain.RejectionMissingData])
			},
		},
		{
			name: "Não verificado sem dados passa no modo leniente",
			candidates: []Candidate{{
				Creator:  &domain.Creator{Username: "semdados"},
				Verified: false,
			}},
			query: baseQuery(),
			setup: func(intel *intelmocks.MockIntelligence) {},
			validate: func(t *testing.T, survivors []Candidate, stats *domain.VerificationStats) {
				assert.Len(t, survivors, 1)
				assert.Empty(t, stats.RejectionReasons)
			},
		},
		{
			name: "Credibilidade abaixo do corte reprova mesmo sem verificação",
			candidates: []Candidate{{
				Creator: &domain.Creator{
					Username: "fraca",
					Metrics: &domain.CreatorMetrics{
						Credibility:  floatPtr(40),
						GeoCountries: map[string]float64{"ES": 60},
					},
				},
				Verified: false,
			}},
			query: baseQuery(),
			setup: func(intel *intelmocks.MockIntelligence) {},
			validate: func(t *testing.T, survivors []Candidate, stats *domain.VerificationStats) {
				assert.Empty(t, survivors)
				assert.Equal(t, 1, stats.RejectionReasons[domain.RejectionCredibility])
			},
		},
		{
			name: "Audiência da Espanha abaixo do mínimo reprova",
			candidates: []Candidate{{
				Creator: &domain.Creator{
					Username: "estrangeira",
					Metrics: &domain.CreatorMetrics{
						Credibility:  floatPtr(85),
						GeoCountries: map[string]float64{"MX": 80, "ES": 10},
					},
				},
				Verified: true,
			}},
			query: baseQuery(),
			setup: func(intel *intelmocks.MockIntelligence) {},
			validate: func(t *testing.T, survivors []Candidate, stats *domain.VerificationStats) {
				assert.Empty(t, survivors)
				assert.Equal(t, 1, stats.RejectionReasons[domain.RejectionSpainAudience])
			},
		},
		{
			name: "Sem breakdown geográfico o país declarado serve de fallback",
			candidates: []Candidate{
				{
					Creator: &domain.Creator{
						Username: "espanhola",
						Country:  strPtr("ES"),
						Metrics:  &domain.CreatorMetrics{Credibility: floatPtr(85)},
					},
					Verified: false,
				},
				{
					Creator: &domain.Creator{
						Username: "mexicana",
						Country:  strPtr("MX"),
						Metrics:  &domain.CreatorMetrics{Credibility: floatPtr(85)},
					},
					Verified: false,
				},
			},
			query: baseQuery(),
			setup: func(intel *intelmocks.MockIntelligence) {},
			validate: func(t *testing.T, survivors []Candidate, stats *domain.VerificationStats) {
				assert.Len(t, survivors, 1)
				assert.Equal(t, "espanhola", survivors[0].Creator.Username)
				assert.Equal(t, 1, stats.RejectionReasons[domain.RejectionSpainAudience])
			},
		},
		{
			name: "Nicho excluído é rejeição incondicional",
			candidates: []Candidate{{
				Creator: &domain.Creator{
					Username:  "tipster",
					Interests: []string{"apostas esportivas"},
					Metrics:   passingMetrics(),
				},
				Verified: false,
			}},
			query: func() *domain.CampaignQuery {
				q := baseQuery()
				q.ExcludeNiches = []string{"apostas"}
				return q
			}(),
			setup: func(intel *intelmocks.MockIntelligence) {},
			validate: func(t *testing.T, survivors []Candidate, stats *domain.VerificationStats) {
				assert.Empty(t, survivors)
				assert.Equal(t, 1, stats.RejectionReasons[domain.RejectionExcludedNiche])
			},
		},
		{
			name: "Embaixador de concorrente sai quando a campanha exclui rivais",
			candidates: []Candidate{
				{Creator: &domain.Creator{Username: "rival", Metrics: passingMetrics()}, Verified: true},
				{Creator: &domain.Creator{Username: "livre", Metrics: passingMetrics()}, Verified: true},
			},
			query: func() *domain.CampaignQuery {
				q := baseQuery()
				q.Brand = &domain.BrandContext{Name: "Nike"}
				q.ExcludeRivals = true
				return q
			}(),
			setup: func(intel *intelmocks.MockIntelligence) {
				intel.EXPECT().
					CompetitorConflict("Nike", "rival").
					Return(&domain.CompetitorBrand{Name: "Adidas", Severity: domain.SeverityHigh}, true)
				intel.EXPECT().
					CompetitorConflict("Nike", "livre").
					Return(nil, false)
			},
			validate: func(t *testing.T, survivors []Candidate, stats *domain.VerificationStats) {
				assert.Len(t, survivors, 1)
				assert.Equal(t, "livre", survivors[0].Creator.Username)
				assert.Equal(t, 1, stats.RejectionReasons[domain.RejectionCompetitorRelation])
			},
		},
		{
			name: "Distribuição de gênero da audiência fora da tolerância reprova",
			candidates: []Candidate{
				{
					Creator: &domain.Creator{
						Username: "longe",
						Metrics: &domain.CreatorMetrics{
							Credibility:  floatPtr(85),
							GeoCountries: map[string]float64{"ES": 60},
							GenderSplit:  map[string]float64{"female": 45},
						},
					},
					Verified: true,
				},
				{
					Creator: &domain.Creator{
						Username: "perto",
						Metrics: &domain.CreatorMetrics{
							Credibility:  floatPtr(85),
							GeoCountries: map[string]float64{"ES": 60},
							GenderSplit:  map[string]float64{"female": 55},
						},
					},
					Verified: true,
				},
			},
			query: func() *domain.CampaignQuery {
				q := baseQuery()
				q.GenderTarget = &domain.GenderSplitTarget{FemalePct: 80, MalePct: 20}
				return q
			}(),
			setup: func(intel *intelmocks.MockIntelligence) {},
			validate: func(t *testing.T, survivors []Candidate, stats *domain.VerificationStats) {
				assert.Len(t, survivors, 1)
				assert.Equal(t, "perto", survivors[0].Creator.Username)
				assert.Equal(t, 1, stats.RejectionReasons[domain.RejectionAudienceGender])
			},
		},
		{
			name: "Seleção exclusivamente feminina reprova criador masculino declarado",
			candidates: []Candidate{{
				Creator: &domain.Creator{
					Username: "carlos",
					Gender:   strPtr("male"),
					Metrics: &domain.CreatorMetrics{
						Credibility:  floatPtr(85),
						GeoCountries: map[string]float64{"ES": 60},
						GenderSplit:  map[string]float64{"female": 80},
					},
				},
				Verified: true,
			}},
			query: func() *domain.CampaignQuery {
				q := baseQuery()
				q.GenderTarget = &domain.GenderSplitTarget{FemalePct: 100}
				return q
			}(),
			setup: func(intel *intelmocks.MockIntelligence) {},
			validate: func(t *testing.T, survivors []Candidate, stats *domain.VerificationStats) {
				assert.Empty(t, survivors)
				assert.Equal(t, 1, stats.RejectionReasons[domain.RejectionCreatorGender])
			},
		},
		{
			name: "Faixa de seguidores corta quem está fora quando sobra alguém",
			candidates: []Candidate{
				{Creator: &domain.Creator{Username: "mini", FollowerCount: 2000, Metrics: passingMetrics()}, Verified: true},
				{Creator: &domain.Creator{Username: "ideal", FollowerCount: 50000, Metrics: passingMetrics()}, Verified: true},
			},
			query: func() *domain.CampaignQuery {
				q := baseQuery()
				q.MinFollowers = 10000
				q.MaxFollowers = 100000
				return q
			}(),
			setup: func(intel *intelmocks.MockIntelligence) {},
			validate: func(t *testing.T, survivors []Candidate, stats *domain.VerificationStats) {
				assert.Len(t, survivors, 1)
				assert.Equal(t, "ideal", survivors[0].Creator.Username)
				assert.Equal(t, 1, stats.RejectionReasons[domain.RejectionFollowerRange])
			},
		},
		{
			name: "Faixa de seguidores é relaxada quando esvaziaria o resultado",
			candidates: []Candidate{
				{Creator: &domain.Creator{Username: "mini", FollowerCount: 2000, Metrics: passingMetrics()}, Verified: true},
				{Creator: &domain.Creator{Username: "micro", FollowerCount: 3000, Metrics: passingMetrics()}, Verified: true},
			},
			query: func() *domain.CampaignQuery {
				q := baseQuery()
				q.MinFollowers = 10000
				return q
			}(),
			setup: func(intel *intelmocks.MockIntelligence) {},
			validate: func(t *testing.T, survivors []Candidate, stats *domain.VerificationStats) {
				assert.Len(t, survivors, 2)
				assert.Zero(t, stats.RejectionReasons[domain.RejectionFollowerRange])
			},
		},
		{
			name: "Contagem de seguidores desconhecida não reprova pela faixa",
			candidates: []Candidate{
				{Creator: &domain.Creator{Username: "incognita", Metrics: passingMetrics()}, Verified: true},
				{Creator: &domain.Creator{Username: "ideal", FollowerCount: 50000, Metrics: passingMetrics()}, Verified: true},
			},
			query: func() *domain.CampaignQuery {
				q := baseQuery()
				q.MinFollowers = 10000
				q.MaxFollowers = 100000
				return q
			}(),
			setup: func(intel *intelmocks.MockIntelligence) {},
			validate: func(t *testing.T, survivors []Candidate, stats *domain.VerificationStats) {
				assert.Len(t, survivors, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			intel := intelmocks.NewMockIntelligence(ctrl)
			tt.setup(intel)

			service := NewService(intel)
			stats := domain.NewVerificationStats()

			survivors := service.Apply(tt.candidates, tt.query, stats)

			tt.validate(t, survivors, stats)
		})
	}
}
