// Package prefiltering pontua o pool de candidatos usando apenas dados já
// conhecidos localmente, escolhendo quem merece gastar orçamento de API.
// Função pura: nenhuma entrada/saída de rede
package prefiltering

import (
	"sort"
	"strings"

	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
)

// Pesos da heurística. Calibrados manualmente: o objetivo não é precisão e
// sim separar "vale verificar" de "não vale" de forma barata e determinística
const (
	bonusMetricsPass    = 3.0  // métricas em cache já passam em todos os limiares
	bonusMetricsMissing = 1.5  // sem métricas: candidato desconhecido vale verificação
	bonusNicheMatch     = 2.0  // tags batem com nicho/termos da campanha
	bonusNicheExact     = 1.0  // nicho primário igual ao da campanha
	penaltyExcluded     = -4.0 // tags batem com nichos excluídos
)

// DefaultSelectionSize é o K padrão de candidatos promovidos à verificação
const DefaultSelectionSize = 15

type scoredCandidate struct {
	creator *domain.Creator
	score   float64
}

// SelectCandidates ordena o pool pela heurística local e retorna os K
// melhores, limitando o custo de API das etapas seguintes independentemente
// do tamanho do pool
func SelectCandidates(pool []*domain.Creator, query *domain.CampaignQuery, k int) []*domain.Creator {
	if k <= 0 {
		k = DefaultSelectionSize
	}

	scored := make([]scoredCandidate, 0, len(pool))
	for _, creator := range pool {
		scored = append(scored, scoredCandidate{
			creator: creator,
			score:   Score(creator, query),
		})
	}

	// Desempate determinístico por username para que buscas repetidas
	// promovam sempre os mesmos candidatos
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return strings.ToLower(scored[i].creator.Username) < strings.ToLower(scored[j].creator.Username)
	})

	if len(scored) > k {
		scored = scored[:k]
	}

	selected := make([]*domain.Creator, 0, len(scored))
	for _, candidate := range scored {
		selected = append(selected, candidate.creator)
	}

	return selected
}

// Score calcula a pontuação heurística de um candidato
func Score(creator *domain.Creator, query *domain.CampaignQuery) float64 {
	score := 0.0

	if creator.Metrics == nil {
		score += bonusMetricsMissing
	} else if clearsThresholds(creator, query) {
		score += bonusMetricsPass
	}

	if creator.HasAnyInterest(query.SearchTerms()) {
		score += bonusNicheMatch
	}

	if query.CampaignNiche != "" && creator.NicheName() == strings.ToLower(strings.TrimSpace(query.CampaignNiche)) {
		score += bonusNicheExact
	}

	if creator.HasAnyInterest(query.ExcludeNiches) {
		score += penaltyExcluded
	}

	return score
}

// clearsThresholds verifica se as métricas em cache já atendem os limiares da
// campanha. Campos ausentes reprovam aqui: o bônus integral é só para quem
// comprovadamente passa
func clearsThresholds(creator *domain.Creator, query *domain.CampaignQuery) bool {
	metrics := creator.Metrics
	if metrics == nil {
		return false
	}

	if metrics.Credibility == nil || *metrics.Credibility < query.Thresholds.MinCredibility {
		return false
	}

	if query.Thresholds.MinSpainAudience > 0 {
		spain := creator.SpainAudience()
		if spain == nil || *spain < query.Thresholds.MinSpainAudience {
			return false
		}
	}

	if query.Thresholds.MinEngagement != nil {
		if metrics.EngagementRate == nil || *metrics.EngagementRate < *query.Thresholds.MinEngagement {
			return false
		}
	}

	return true
}
