package domain

import (
	"sort"
	"strings"
)

// SubScores são os oito fatores normalizados em [0,1] que compõem o score final
type SubScores struct {
	Engagement    float64 `json:"engagement"`
	Credibility   float64 `json:"credibility"`
	AudienceMatch float64 `json:"audience_match"`
	BrandAffinity float64 `json:"brand_affinity"`
	CreativeFit   float64 `json:"creative_fit"`
	Geography     float64 `json:"geography"`
	Growth        float64 `json:"growth"`
	NicheMatch    float64 `json:"niche_match"`
}

// Weighted aplica os pesos informados e retorna a soma ponderada
func (s SubScores) Weighted(w RankingWeights) float64 {
	return s.Engagement*w.Engagement +
		s.Credibility*w.Credibility +
		s.AudienceMatch*w.AudienceMatch +
		s.BrandAffinity*w.BrandAffinity +
		s.CreativeFit*w.CreativeFit +
		s.Geography*w.Geography +
		s.Growth*w.Growth +
		s.NicheMatch*w.NicheMatch
}

// RankedResult é um criador pontuado pela engine de ranking
type RankedResult struct {
	Creator        *Creator  `json:"creator"`
	SubScores      SubScores `json:"sub_scores"`
	SizeMultiplier float64   `json:"size_multiplier"`
	RelevanceScore float64   `json:"relevance_score"`
	Position       int       `json:"position"`
	Verified       bool      `json:"verified"`
}

// SortRankedResults ordena por score decrescente com desempate determinístico:
// seguidores decrescentes e, por fim, username crescente. Atualiza Position
func SortRankedResults(results []*RankedResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].RelevanceScore != results[j].RelevanceScore {
			return results[i].RelevanceScore > results[j].RelevanceScore
		}
		if results[i].Creator.FollowerCount != results[j].Creator.FollowerCount {
			return results[i].Creator.FollowerCount > results[j].Creator.FollowerCount
		}
		return strings.ToLower(results[i].Creator.Username) < strings.ToLower(results[j].Creator.Username)
	})

	for i, r := range results {
		r.Position = i + 1
	}
}

// SearchResponse é o retorno completo de uma busca
type SearchResponse struct {
	RunID   string             `json:"run_id"`
	Results []*RankedResult    `json:"results"`
	Stats   *VerificationStats `json:"stats"`
}
