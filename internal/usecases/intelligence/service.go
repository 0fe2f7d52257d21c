// Package intelligence mantém em memória os dados de referência de nichos e
// marcas, carregados uma única vez na inicialização do processo
package intelligence

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Jrogbaaa/Project-X-sub000/infrastructure/repository"
	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
)

// NicheAffinity é o resultado da consulta taxonômica entre dois nichos
type NicheAffinity int

const (
	AffinityUnknown NicheAffinity = iota
	AffinityExact
	AffinityRelated
	AffinityConflicting
)

// Intelligence expõe consultas de leitura sobre a taxonomia de nichos e o
// grafo de marcas. Implementações devem ser seguras para uso concorrente
// após Load
type Intelligence interface {
	NicheRelation(niche string) (*domain.NicheRelation, bool)
	Affinity(campaignNiche, creatorNiche string) NicheAffinity
	BrandIntel(brand string) (*domain.BrandIntel, bool)
	CompetitorConflict(brand, creatorUsername string) (*domain.CompetitorBrand, bool)
	IsBrandAmbassador(brand, creatorUsername string) bool
}

type Service struct {
	taxonomyRepo repository.NicheTaxonomyRepository
	brandRepo    repository.BrandGraphRepository

	niches map[string]*domain.NicheRelation
	brands map[string]*domain.BrandIntel
}

func NewService(taxonomyRepo repository.NicheTaxonomyRepository, brandRepo repository.BrandGraphRepository) *Service {
	return &Service{
		taxonomyRepo: taxonomyRepo,
		brandRepo:    brandRepo,
		niches:       make(map[string]*domain.NicheRelation),
		brands:       make(map[string]*domain.BrandIntel),
	}
}

// Load carrega a taxonomia e o grafo de marcas para memória. Deve ser chamado
// uma vez antes do servidor aceitar buscas; depois disso os mapas são
// somente leitura
func (s *Service) Load() error {
	relations, err := s.taxonomyRepo.ListAll()
	if err != nil {
		return err
	}

	for _, relation := range relations {
		s.niches[normalizeKey(relation.Niche)] = relation
	}

	brands, err := s.brandRepo.ListAll()
	if err != nil {
		return err
	}

	for _, brand := range brands {
		s.brands[normalizeKey(brand.Brand)] = brand
	}

	logrus.WithFields(logrus.Fields{
		"niches": len(s.niches),
		"brands": len(s.brands),
	}).Info("intelligence: reference data loaded")

	return nil
}

func (s *Service) NicheRelation(niche string) (*domain.NicheRelation, bool) {
	relation, ok := s.niches[normalizeKey(niche)]
	return relation, ok
}

// Affinity classifica a relação taxonômica entre o nicho da campanha e o
// nicho do criador. Nicho desconhecido na taxonomia resulta em Unknown, que
// o ranking trata como neutro
func (s *Service) Affinity(campaignNiche, creatorNiche string) NicheAffinity {
	campaign := normalizeKey(campaignNiche)
	creator := normalizeKey(creatorNiche)

	if campaign == "" || creator == "" {
		return AffinityUnknown
	}

	if campaign == creator {
		return AffinityExact
	}

	relation, ok := s.niches[campaign]
	if !ok {
		return AffinityUnknown
	}

	for _, related := range relation.Related {
		if normalizeKey(related) == creator {
			return AffinityRelated
		}
	}

	for _, conflicting := range relation.Conflicting {
		if normalizeKey(conflicting) == creator {
			return AffinityConflicting
		}
	}

	return AffinityUnknown
}

func (s *Service) BrandIntel(brand string) (*domain.BrandIntel, bool) {
	intel, ok := s.brands[normalizeKey(brand)]
	return intel, ok
}

// CompetitorConflict verifica se o criador é embaixador confirmado de alguma
// concorrente da marca da campanha, retornando a concorrente (com severidade)
func (s *Service) CompetitorConflict(brand, creatorUsername string) (*domain.CompetitorBrand, bool) {
	intel, ok := s.brands[normalizeKey(brand)]
	if !ok {
		return nil, false
	}

	for i := range intel.Competitors {
		competitor := &intel.Competitors[i]

		competitorIntel, ok := s.brands[normalizeKey(competitor.Name)]
		if !ok {
			continue
		}

		for _, ambassador := range competitorIntel.Ambassadors {
			if ambassador.Status != domain.AmbassadorConfirmed {
				continue
			}
			if strings.EqualFold(ambassador.Username, creatorUsername) {
				return competitor, true
			}
		}
	}

	return nil, false
}

// IsBrandAmbassador verifica se o criador já é embaixador confirmado da
// própria marca da campanha (caso de saturação no ranking)
func (s *Service) IsBrandAmbassador(brand, creatorUsername string) bool {
	intel, ok := s.brands[normalizeKey(brand)]
	if !ok {
		return false
	}

	for _, ambassador := range intel.Ambassadors {
		if ambassador.Status != domain.AmbassadorConfirmed {
			continue
		}
		if strings.EqualFold(ambassador.Username, creatorUsername) {
			return true
		}
	}

	return false
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
