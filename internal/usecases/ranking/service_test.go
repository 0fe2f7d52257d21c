package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/filtering"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/intelligence"
	intelmocks "github.com/Jrogbaaa/Project-X-sub000/internal/usecases/intelligence/mocks"
)

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func newRankingService(t *testing.T, setup func(intel *intelmocks.MockIntelligence)) *Service {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	intel := intelmocks.NewMockIntelligence(ctrl)
	if setup != nil {
		setup(intel)
	}

	return NewService(intel, Config{CelebrityFollowerThreshold: 1_000_000})
}

func TestSizeMultiplier(t *testing.T) {
	query := &domain.CampaignQuery{MinFollowers: 10000, MaxFollowers: 100000}

	tests := []struct {
		name      string
		followers int
		query     *domain.CampaignQuery
		want      float64
	}{
		{"Contagem desconhecida recebe multiplicador fixo", 0, query, 0.35},
		{"Dentro da faixa não sofre ajuste", 50000, query, 1.0},
		{"Abaixo da faixa é proporcional", 8000, query, 0.8},
		{"Muito abaixo da faixa para no piso", 2000, query, 0.5},
		{"Acima da faixa é inversamente proporcional", 200000, query, 0.5},
		{"Muito acima da faixa para no piso anti celebridade", 1_000_000, query, 0.3},
		{"Sem faixa definida não há ajuste", 500, &domain.CampaignQuery{}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newRankingService(t, nil)
			assert.InDelta(t, tt.want, service.SizeMultiplier(tt.followers, tt.query), 1e-9)
		})
	}
}

func TestScoreCandidate_ContinuousFactors(t *testing.T) {
	service := newRankingService(t, nil)

	t.Run("Sem métricas nem alvos todos os fatores são neutros", func(t *testing.T) {
		scores := service.ScoreCandidate(&domain.Creator{Username: "vazia"}, &domain.CampaignQuery{})

		assert.Equal(t, 0.5, scores.Credibility)
		assert.Equal(t, 0.5, scores.Engagement)
		assert.Equal(t, 0.5, scores.Growth)
		assert.Equal(t, 0.5, scores.Geography)
		assert.Equal(t, 0.5, scores.AudienceMatch)
		assert.Equal(t, 0.5, scores.BrandAffinity)
		assert.Equal(t, 0.5, scores.CreativeFit)
		assert.Equal(t, 0.5, scores.NicheMatch)
	})

	t.Run("Fatores contínuos normalizados pelas referências", func(t *testing.T) {
		creator := &domain.Creator{
			Username: "medida",
			Metrics: &domain.CreatorMetrics{
				Credibility:    floatPtr(80),
				EngagementRate: floatPtr(0.03),
				GrowthRate6M:   floatPtr(0.15),
				GeoCountries:   map[string]float64{"ES": 45},
			},
		}

		scores := service.ScoreCandidate(creator, &domain.CampaignQuery{})

		assert.InDelta(t, 0.8, scores.Credibility, 1e-9)
		assert.InDelta(t, 0.2, scores.Engagement, 1e-9)
		assert.InDelta(t, 0.5, scores.Growth, 1e-9)
		assert.InDelta(t, 0.45, scores.Geography, 1e-9)
	})

	t.Run("Engajamento acima do teto satura em um", func(t *testing.T) {
		creator := &domain.Creator{
			Metrics: &domain.CreatorMetrics{EngagementRate: floatPtr(0.30)},
		}

		scores := service.ScoreCandidate(creator, &domain.CampaignQuery{})

		assert.Equal(t, 1.0, scores.Engagement)
	})

	t.Run("Crescimento negativo ainda pontua acima de zero", func(t *testing.T) {
		creator := &domain.Creator{
			Metrics: &domain.CreatorMetrics{GrowthRate6M: floatPtr(-0.06)},
		}

		scores := service.ScoreCandidate(creator, &domain.CampaignQuery{})

		assert.InDelta(t, 0.2, scores.Growth, 1e-9)
	})

	t.Run("Encaixe de audiência é a média de gênero e idade", func(t *testing.T) {
		creator := &domain.Creator{
			Metrics: &domain.CreatorMetrics{
				GenderSplit: map[string]float64{"female": 70},
				AgeGroups:   map[string]float64{"18-24": 30, "25-34": 25, "45-54": 20},
			},
		}
		query := &domain.CampaignQuery{
			GenderTarget: &domain.GenderSplitTarget{FemalePct: 60, MalePct: 40},
			AgeTarget:    &domain.AgeRangeTarget{MinAge: 18, MaxAge: 34},
		}

		scores := service.ScoreCandidate(creator, query)

		// Gênero: 1 - |70-60|/100 = 0.9; idade: buckets 18-24 e 25-34 = 55%
		assert.InDelta(t, (0.9+0.55)/2, scores.AudienceMatch, 1e-9)
	})

	t.Run("Bucket aberto de idade intersecta alvo sem teto", func(t *testing.T) {
		creator := &domain.Creator{
			Metrics: &domain.CreatorMetrics{
				AgeGroups: map[string]float64{"65+": 40, "18-24": 10},
			},
		}
		query := &domain.CampaignQuery{
			AgeTarget: &domain.AgeRangeTarget{MinAge: 60},
		}

		scores := service.ScoreCandidate(creator, query)

		// Só o bucket 65+ intersecta; genderFit fica neutro em 0.5
		assert.InDelta(t, (0.5+0.4)/2, scores.AudienceMatch, 1e-9)
	})
}

func TestScoreCandidate_NicheMatch(t *testing.T) {
	query := &domain.CampaignQuery{CampaignNiche: "fitness"}

	tests := []struct {
		name    string
		creator *domain.Creator
		setup   func(intel *intelmocks.MockIntelligence)
		want    float64
	}{
		{
			name:    "Nicho exato",
			creator: &domain.Creator{PrimaryNiche: &domain.NicheClassification{Niche: "fitness"}},
			setup: func(intel *intelmocks.MockIntelligence) {
				intel.EXPECT().Affinity("fitness", "fitness").Return(intelligence.AffinityExact)
			},
			want: 0.95,
		},
		{
			name:    "Nicho relacionado",
			creator: &domain.Creator{PrimaryNiche: &domain.NicheClassification{Niche: "nutrición"}},
			setup: func(intel *intelmocks.MockIntelligence) {
				intel.EXPECT().Affinity("fitness", "nutrición").Return(intelligence.AffinityRelated)
			},
			want: 0.70,
		},
		{
			name: "Nicho conflitante",
			creator: &domain.Creator{
				FollowerCount: 50000,
				PrimaryNiche:  &domain.NicheClassification{Niche: "comida rápida"},
			},
			setup: func(intel *intelmocks.MockIntelligence) {
				intel.EXPECT().Affinity("fitness", "comida rápida").Return(intelligence.AffinityConflicting)
			},
			want: 0.20,
		},
		{
			name: "Conflito com alcance de celebridade é o pior caso",
			creator: &domain.Creator{
				FollowerCount: 5_000_000,
				PrimaryNiche:  &domain.NicheClassification{Niche: "comida rápida"},
			},
			setup: func(intel *intelmocks.MockIntelligence) {
				intel.EXPECT().Affinity("fitness", "comida rápida").Return(intelligence.AffinityConflicting)
			},
			want: 0.15,
		},
		{
			name:    "Relação desconhecida fica neutra",
			creator: &domain.Creator{PrimaryNiche: &domain.NicheClassification{Niche: "viajes"}},
			setup: func(intel *intelmocks.MockIntelligence) {
				intel.EXPECT().Affinity("fitness", "viajes").Return(intelligence.AffinityUnknown)
			},
			want: 0.5,
		},
		{
			name:    "Criador sem nicho classificado fica neutro",
			creator: &domain.Creator{},
			setup:   nil,
			want:    0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newRankingService(t, tt.setup)
			scores := service.ScoreCandidate(tt.creator, query)
			assert.InDelta(t, tt.want, scores.NicheMatch, 1e-9)
		})
	}
}

func TestScoreCandidate_NicheKeywordFallback(t *testing.T) {
	service := newRankingService(t, nil)
	query := &domain.CampaignQuery{
		TopicKeywords: []string{"treino"},
		ExcludeNiches: []string{"apostas"},
	}

	t.Run("Palavra chave presente soma sobre o neutro", func(t *testing.T) {
		creator := &domain.Creator{Interests: []string{"treino funcional"}}
		scores := service.ScoreCandidate(creator, query)
		assert.InDelta(t, 0.8, scores.NicheMatch, 1e-9)
	})

	t.Run("Nicho excluído desconta do neutro", func(t *testing.T) {
		creator := &domain.Creator{Interests: []string{"apostas esportivas"}}
		scores := service.ScoreCandidate(creator, query)
		assert.InDelta(t, 0.2, scores.NicheMatch, 1e-9)
	})
}

func TestScoreCandidate_BrandAffinity(t *testing.T) {
	brandQuery := &domain.CampaignQuery{
		Brand: &domain.BrandContext{Name: "Nike", Handle: "@nike"},
	}

	tests := []struct {
		name    string
		creator *domain.Creator
		setup   func(intel *intelmocks.MockIntelligence)
		want    float64
	}{
		{
			name:    "Embaixador confirmado de concorrente direto",
			creator: &domain.Creator{Username: "rival"},
			setup: func(intel *intelmocks.MockIntelligence) {
				intel.EXPECT().
					CompetitorConflict("Nike", "rival").
					Return(&domain.CompetitorBrand{Name: "Adidas", Severity: domain.SeverityHigh}, true)
			},
			want: 0.05,
		},
		{
			name:    "Conflito de severidade média",
			creator: &domain.Creator{Username: "parcial"},
			setup: func(intel *intelmocks.MockIntelligence) {
				intel.EXPECT().
					CompetitorConflict("Nike", "parcial").
					Return(&domain.CompetitorBrand{Name: "Puma", Severity: domain.SeverityMedium}, true)
			},
			want: 0.15,
		},
		{
			name: "Menção textual a concorrente é conflito mais brando",
			creator: &domain.Creator{
				Username: "mencionadora",
				Bio:      strPtr("entrenando con mis Adidas favoritas"),
			},
			setup: func(intel *intelmocks.MockIntelligence) {
				intel.EXPECT().CompetitorConflict("Nike", "mencionadora").Return(nil, false)
				intel.EXPECT().
					BrandIntel("Nike").
					Return(&domain.BrandIntel{
						Brand:       "Nike",
						Competitors: []domain.CompetitorBrand{{Name: "Adidas", Severity: domain.SeverityHigh}},
					}, true).
					AnyTimes()
			},
			want: 0.25,
		},
		{
			name:    "Embaixador da própria marca satura",
			creator: &domain.Creator{Username: "veterana"},
			setup: func(intel *intelmocks.MockIntelligence) {
				intel.EXPECT().CompetitorConflict("Nike", "veterana").Return(nil, false)
				intel.EXPECT().BrandIntel("Nike").Return(nil, false).AnyTimes()
				intel.EXPECT().IsBrandAmbassador("Nike", "veterana").Return(true)
			},
			want: 0.40,
		},
		{
			name: "Menção à própria marca sobe",
			creator: &domain.Creator{
				Username: "fa",
				Bio:      strPtr("siempre con @nike en los pies"),
			},
			setup: func(intel *intelmocks.MockIntelligence) {
				intel.EXPECT().CompetitorConflict("Nike", "fa").Return(nil, false)
				intel.EXPECT().BrandIntel("Nike").Return(nil, false).AnyTimes()
				intel.EXPECT().IsBrandAmbassador("Nike", "fa").Return(false)
			},
			want: 0.75,
		},
		{
			name:    "Sem relação nenhuma fica neutro",
			creator: &domain.Creator{Username: "neutra"},
			setup: func(intel *intelmocks.MockIntelligence) {
				intel.EXPECT().CompetitorConflict("Nike", "neutra").Return(nil, false)
				intel.EXPECT().BrandIntel("Nike").Return(nil, false).AnyTimes()
				intel.EXPECT().IsBrandAmbassador("Nike", "neutra").Return(false)
			},
			want: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newRankingService(t, tt.setup)
			scores := service.ScoreCandidate(tt.creator, brandQuery)
			assert.InDelta(t, tt.want, scores.BrandAffinity, 1e-9)
		})
	}
}

func TestScoreCandidate_CreativeFit(t *testing.T) {
	t.Run("Mistura de temas, tom e experiência com a marca", func(t *testing.T) {
		service := newRankingService(t, func(intel *intelmocks.MockIntelligence) {
			intel.EXPECT().
				BrandIntel("Nike").
				Return(&domain.BrandIntel{
					Brand:       "Nike",
					Ambassadors: []domain.Ambassador{{Username: "criativa", Status: domain.AmbassadorFormer}},
				}, true).
				AnyTimes()
			intel.EXPECT().CompetitorConflict(gomock.Any(), gomock.Any()).Return(nil, false).AnyTimes()
			intel.EXPECT().IsBrandAmbassador(gomock.Any(), gomock.Any()).Return(false).AnyTimes()
		})

		creator := &domain.Creator{
			Username:  "criativa",
			Interests: []string{"humor", "deporte"},
		}
		query := &domain.CampaignQuery{
			Brand: &domain.BrandContext{Name: "Nike"},
			Creative: &domain.CreativeBrief{
				ThemeTags: []string{"deporte", "aire libre"},
				ToneTags:  []string{"humor"},
			},
		}

		scores := service.ScoreCandidate(creator, query)

		// Temas: 1 de 2; tom: 1 de 1; ex embaixadora conta como experiência
		assert.InDelta(t, 0.4*0.5+0.3*1.0+0.3*1.0, scores.CreativeFit, 1e-9)
	})

	t.Run("Sem brief criativo fica neutro", func(t *testing.T) {
		service := newRankingService(t, nil)
		scores := service.ScoreCandidate(&domain.Creator{}, &domain.CampaignQuery{})
		assert.Equal(t, 0.5, scores.CreativeFit)
	})
}

func TestRankCandidates(t *testing.T) {
	service := newRankingService(t, nil)

	weights := domain.DefaultRankingWeights()
	query := &domain.CampaignQuery{MinFollowers: 10000, MaxFollowers: 100000}

	candidates := []filtering.Candidate{
		{
			Creator: &domain.Creator{
				Username:      "celebridade",
				FollowerCount: 2_000_000,
				Metrics: &domain.CreatorMetrics{
					Credibility:    floatPtr(95),
					EngagementRate: floatPtr(0.15),
					GeoCountries:   map[string]float64{"ES": 90},
				},
			},
			Verified: true,
		},
		{
			Creator: &domain.Creator{
				Username:      "encaixada",
				FollowerCount: 50000,
				Metrics: &domain.CreatorMetrics{
					Credibility:    floatPtr(80),
					EngagementRate: floatPtr(0.06),
					GeoCountries:   map[string]float64{"ES": 60},
				},
			},
			Verified: true,
		},
		{
			Creator:  &domain.Creator{Username: "incognita"},
			Verified: false,
		},
	}

	results := service.RankCandidates(candidates, query, weights)

	assert.Len(t, results, 3)

	// A conta dentro da faixa supera a celebridade punida pelo multiplicador
	assert.Equal(t, "encaixada", results[0].Creator.Username)
	assert.Equal(t, "celebridade", results[1].Creator.Username)
	assert.Equal(t, "incognita", results[2].Creator.Username)

	for i, result := range results {
		assert.Equal(t, i+1, result.Position)
		assert.GreaterOrEqual(t, result.RelevanceScore, 0.0)
		assert.LessOrEqual(t, result.RelevanceScore, 1.0)
	}

	assert.InDelta(t, 1.0, results[0].SizeMultiplier, 1e-9)
	assert.InDelta(t, 0.3, results[1].SizeMultiplier, 1e-9)
	assert.InDelta(t, 0.35, results[2].SizeMultiplier, 1e-9)
	assert.True(t, results[0].Verified)
	assert.False(t, results[2].Verified)
}
