// Package discovering monta o pool inicial de candidatos a partir do
// catálogo local, sem nenhuma chamada de rede
package discovering

import (
	"github.com/sirupsen/logrus"

	"github.com/Jrogbaaa/Project-X-sub000/infrastructure/repository"
	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
)

// Discoverer obtém o pool de candidatos de uma busca
type Discoverer interface {
	DiscoverPool(query *domain.CampaignQuery, poolSize int) ([]*domain.Creator, error)
}

type Service struct {
	creatorRepo repository.CreatorRepository
}

func NewService(creatorRepo repository.CreatorRepository) *Service {
	return &Service{creatorRepo: creatorRepo}
}

// DiscoverPool consulta o catálogo em três passadas — nicho da campanha,
// palavras-chave e fallback genérico — até preencher o pool, removendo
// duplicados por identidade (plataforma + username)
func (s *Service) DiscoverPool(query *domain.CampaignQuery, poolSize int) ([]*domain.Creator, error) {
	pool := make([]*domain.Creator, 0, poolSize)
	seen := make(map[string]bool, poolSize)

	appendUnique := func(creators []*domain.Creator) {
		for _, creator := range creators {
			if len(pool) >= poolSize {
				return
			}
			if seen[creator.Key()] {
				continue
			}
			seen[creator.Key()] = true
			pool = append(pool, creator)
		}
	}

	if query.CampaignNiche != "" {
		byNiche, err := s.creatorRepo.ListByNiche(query.CampaignNiche, poolSize)
		if err != nil {
			logrus.WithError(err).Error("discovery: failed to list creators by niche")
			return nil, err
		}
		appendUnique(byNiche)
	}

	if len(pool) < poolSize && len(query.SearchTerms()) > 0 {
		byKeywords, err := s.creatorRepo.ListByKeywords(query.SearchTerms(), poolSize)
		if err != nil {
			logrus.WithError(err).Error("discovery: failed to list creators by keywords")
			return nil, err
		}
		appendUnique(byKeywords)
	}

	if len(pool) < poolSize {
		generic, err := s.creatorRepo.ListActive(poolSize)
		if err != nil {
			logrus.WithError(err).Error("discovery: failed to list active creators")
			return nil, err
		}
		appendUnique(generic)
	}

	logrus.WithFields(logrus.Fields{
		"pool_size": len(pool),
		"niche":     query.CampaignNiche,
	}).Debug("discovery: candidate pool assembled")

	return pool, nil
}
