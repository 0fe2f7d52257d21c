// Package ranking calcula o score de relevância de cada candidato
// sobrevivente: oito fatores normalizados, ponderados pelos pesos da
// campanha e ajustados pelo multiplicador de tamanho
package ranking

import (
	"github.com/sirupsen/logrus"

	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/filtering"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/intelligence"
	"github.com/Jrogbaaa/Project-X-sub000/pkg/utils"
)

// Multiplicadores de tamanho fora da faixa preferida. O teto inferior de
// quem está acima da faixa é mais agressivo de propósito: viés
// anti-celebridade
const (
	belowRangeFloor = 0.5
	aboveRangeFloor = 0.3

	// unknownSizeMultiplier pune contagem de seguidores desconhecida o
	// bastante para que um perfil verificado sempre supere um inverificável
	// de score bruto parecido
	unknownSizeMultiplier = 0.35
)

type Config struct {
	CelebrityFollowerThreshold int
}

// Ranker é o contrato da engine de ranking
type Ranker interface {
	RankCandidates(candidates []filtering.Candidate, query *domain.CampaignQuery, weights domain.RankingWeights) []*domain.RankedResult
}

type Service struct {
	intel  intelligence.Intelligence
	config Config
}

func NewService(intel intelligence.Intelligence, config Config) *Service {
	if config.CelebrityFollowerThreshold <= 0 {
		config.CelebrityFollowerThreshold = 1_000_000
	}

	return &Service{
		intel:  intel,
		config: config,
	}
}

// RankCandidates pontua todos os candidatos e devolve a lista ordenada por
// relevância com desempate determinístico
func (s *Service) RankCandidates(candidates []filtering.Candidate, query *domain.CampaignQuery, weights domain.RankingWeights) []*domain.RankedResult {
	results := make([]*domain.RankedResult, 0, len(candidates))

	for _, candidate := range candidates {
		subScores := s.ScoreCandidate(candidate.Creator, query)
		multiplier := s.SizeMultiplier(candidate.Creator.FollowerCount, query)

		result := &domain.RankedResult{
			Creator:        candidate.Creator,
			SubScores:      subScores,
			SizeMultiplier: multiplier,
			RelevanceScore: utils.RoundWithFourDecimalPlace(subScores.Weighted(weights) * multiplier),
			Verified:       candidate.Verified,
		}

		results = append(results, result)

		logrus.WithFields(logrus.Fields{
			"username":        candidate.Creator.Username,
			"relevance_score": result.RelevanceScore,
			"size_multiplier": multiplier,
			"verified":        candidate.Verified,
		}).Debug("ranking: candidate scored")
	}

	domain.SortRankedResults(results)

	return results
}

// SizeMultiplier calcula o ajuste pelo tamanho do criador em relação à faixa
// preferida da campanha:
//   - dentro da faixa: 1.0
//   - abaixo: proporcional, com piso em 0.5
//   - acima: inversamente proporcional, com piso em 0.3 (anti-celebridade)
//   - desconhecido: fixo em 0.35
func (s *Service) SizeMultiplier(followerCount int, query *domain.CampaignQuery) float64 {
	if followerCount <= 0 {
		return unknownSizeMultiplier
	}

	if query.MinFollowers > 0 && followerCount < query.MinFollowers {
		ratio := float64(followerCount) / float64(query.MinFollowers)
		if ratio < belowRangeFloor {
			return belowRangeFloor
		}
		return ratio
	}

	if query.MaxFollowers > 0 && followerCount > query.MaxFollowers {
		ratio := float64(query.MaxFollowers) / float64(followerCount)
		if ratio < aboveRangeFloor {
			return aboveRangeFloor
		}
		return ratio
	}

	return 1.0
}
