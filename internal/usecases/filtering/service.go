// Package filtering aplica as regras de corte sobre os candidatos: limiares
// estritos para verificados, lenientes para não verificados e exclusões
// duras independentes do modo
package filtering

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/intelligence"
)

// Tolerância (em pontos percentuais) entre a distribuição de gênero da
// audiência e a distribuição alvo da campanha
const audienceGenderTolerance = 30.0

// Candidate é um criador com o estado de verificação decidido pelo gate
type Candidate struct {
	Creator  *domain.Creator
	Verified bool
}

// Filterer é o contrato da engine de filtros
type Filterer interface {
	Apply(candidates []Candidate, query *domain.CampaignQuery, stats *domain.VerificationStats) []Candidate
}

type Service struct {
	intel intelligence.Intelligence
}

func NewService(intel intelligence.Intelligence) *Service {
	return &Service{intel: intel}
}

// Apply filtra os candidatos preservando a ordem de entrada. O modo estrito
// rejeita campo obrigatório ausente; o leniente deixa passar o desconhecido
// e delega a despriorização ao ranking
func (s *Service) Apply(candidates []Candidate, query *domain.CampaignQuery, stats *domain.VerificationStats) []Candidate {
	survivors := make([]Candidate, 0, len(candidates))

	for _, candidate := range candidates {
		reason := s.rejectionReason(candidate, query)
		if reason != "" {
			stats.AddRejection(reason)
			logrus.WithFields(logrus.Fields{
				"username": candidate.Creator.Username,
				"verified": candidate.Verified,
				"reason":   reason,
			}).Debug("filter: candidate rejected")
			continue
		}
		survivors = append(survivors, candidate)
	}

	return s.applyFollowerRange(survivors, query, stats)
}

// rejectionReason devolve o motivo da rejeição ou vazio quando o candidato
// passa. Exclusões duras vêm antes dos limiares
func (s *Service) rejectionReason(candidate Candidate, query *domain.CampaignQuery) string {
	creator := candidate.Creator

	// Nicho excluído é rejeição incondicional, distinta da penalidade
	// branda de conflito taxonômico aplicada no ranking
	if len(query.ExcludeNiches) > 0 {
		if creator.HasAnyInterest(query.ExcludeNiches) || nicheInList(creator.NicheName(), query.ExcludeNiches) {
			return domain.RejectionExcludedNiche
		}
	}

	if query.ExcludeRivals && query.Brand != nil {
		if _, conflicted := s.intel.CompetitorConflict(query.Brand.Name, creator.Username); conflicted {
			return domain.RejectionCompetitorRelation
		}
	}

	if reason := s.checkCreatorGender(creator, query); reason != "" {
		return reason
	}

	return s.checkThresholds(candidate, query)
}

// checkThresholds aplica os limiares de qualidade no modo do candidato
func (s *Service) checkThresholds(candidate Candidate, query *domain.CampaignQuery) string {
	creator := candidate.Creator
	strict := candidate.Verified

	metrics := creator.Metrics

	if query.Thresholds.MinCredibility > 0 {
		if metrics == nil || metrics.Credibility == nil {
			if strict {
				return domain.RejectionMissingData
			}
		} else if *metrics.Credibility < query.Thresholds.MinCredibility {
			return domain.RejectionCredibility
		}
	}

	if query.Thresholds.MinSpainAudience > 0 {
		spain := creator.SpainAudience()
		if spain != nil {
			if *spain < query.Thresholds.MinSpainAudience {
				return domain.RejectionSpainAudience
			}
		} else if creator.Country != nil && *creator.Country != "" {
			// Fallback grosseiro: sem breakdown geográfico, usa o país
			// declarado do criador
			if *creator.Country != "ES" {
				return domain.RejectionSpainAudience
			}
		} else if strict {
			return domain.RejectionMissingData
		}
	}

	if query.Thresholds.MinEngagement != nil {
		if metrics == nil || metrics.EngagementRate == nil {
			if strict {
				return domain.RejectionMissingData
			}
		} else if *metrics.EngagementRate < *query.Thresholds.MinEngagement {
			return domain.RejectionEngagement
		}
	}

	if query.GenderTarget != nil {
		if metrics == nil || len(metrics.GenderSplit) == 0 {
			if strict {
				return domain.RejectionMissingData
			}
		} else if !audienceGenderMatches(metrics.GenderSplit, query.GenderTarget) {
			return domain.RejectionAudienceGender
		}
	}

	return ""
}

// applyFollowerRange rejeita quem está fora da faixa preferida, a menos que
// isso esvazie o resultado — nesse caso a faixa é relaxada e o multiplicador
// de tamanho do ranking assume a despriorização
func (s *Service) applyFollowerRange(candidates []Candidate, query *domain.CampaignQuery, stats *domain.VerificationStats) []Candidate {
	if query.MinFollowers <= 0 && query.MaxFollowers <= 0 {
		return candidates
	}

	inRange := make([]Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if followerCountInRange(candidate.Creator.FollowerCount, query) {
			inRange = append(inRange, candidate)
		}
	}

	if len(inRange) == 0 && len(candidates) > 0 {
		logrus.WithFields(logrus.Fields{
			"min_followers": query.MinFollowers,
			"max_followers": query.MaxFollowers,
			"candidates":    len(candidates),
		}).Warn("filter: follower range would empty the result set, relaxing")
		return candidates
	}

	for i := 0; i < len(candidates)-len(inRange); i++ {
		stats.AddRejection(domain.RejectionFollowerRange)
	}

	return inRange
}

func followerCountInRange(count int, query *domain.CampaignQuery) bool {
	// Contagem desconhecida não reprova aqui: o multiplicador de tamanho
	// do ranking é quem pune a incerteza
	if count <= 0 {
		return true
	}
	if query.MinFollowers > 0 && count < query.MinFollowers {
		return false
	}
	if query.MaxFollowers > 0 && count > query.MaxFollowers {
		return false
	}
	return true
}

func audienceGenderMatches(split map[string]float64, target *domain.GenderSplitTarget) bool {
	female, ok := split["female"]
	if !ok {
		if male, hasMale := split["male"]; hasMale {
			female = 100 - male
		} else {
			return true
		}
	}

	return math.Abs(female-target.FemalePct) <= audienceGenderTolerance
}

func nicheInList(niche string, list []string) bool {
	if niche == "" {
		return false
	}
	for _, item := range list {
		if niche == normalize(item) {
			return true
		}
	}
	return false
}
