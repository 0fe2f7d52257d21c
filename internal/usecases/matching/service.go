// Package matching orquestra o pipeline completo de uma busca: brief →
// descoberta → pré-filtro → verificação → filtro → ranking
package matching

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/briefing"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/discovering"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/filtering"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/prefiltering"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/ranking"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/verifying"
	"github.com/Jrogbaaa/Project-X-sub000/pkg/utils"
)

type Config struct {
	PoolSize      int
	SelectionSize int
	SearchTimeout time.Duration
}

// Matcher é o contrato da busca exposto ao handler HTTP
type Matcher interface {
	RunSearch(ctx context.Context, rawBrief string) (*domain.SearchResponse, error)
	RunSearchWithQuery(ctx context.Context, query *domain.CampaignQuery) (*domain.SearchResponse, error)
}

type Service struct {
	briefer    briefing.Resolver
	discoverer discovering.Discoverer
	verifier   verifying.Verifier
	filterer   filtering.Filterer
	ranker     ranking.Ranker
	config     Config
}

func NewService(
	briefer briefing.Resolver,
	discoverer discovering.Discoverer,
	verifier verifying.Verifier,
	filterer filtering.Filterer,
	ranker ranking.Ranker,
	config Config,
) *Service {
	if config.PoolSize <= 0 {
		config.PoolSize = 200
	}
	if config.SelectionSize <= 0 {
		config.SelectionSize = prefiltering.DefaultSelectionSize
	}

	return &Service{
		briefer:    briefer,
		discoverer: discoverer,
		verifier:   verifier,
		filterer:   filterer,
		ranker:     ranker,
		config:     config,
	}
}

// RunSearch executa o pipeline de ponta a ponta a partir do texto livre de um
// briefing. Nunca aborta por falha de verificação externa: degrada para o
// modo leniente e sinaliza nos stats. Só retorna erro quando o catálogo local
// está inacessível
func (s *Service) RunSearch(ctx context.Context, rawBrief string) (*domain.SearchResponse, error) {
	if s.config.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.SearchTimeout)
		defer cancel()
	}

	query := s.briefer.Resolve(ctx, rawBrief)
	return s.run(ctx, query)
}

// RunSearchWithQuery executa o pipeline com uma consulta já estruturada,
// pulando a resolução do briefing
func (s *Service) RunSearchWithQuery(ctx context.Context, query *domain.CampaignQuery) (*domain.SearchResponse, error) {
	if s.config.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.SearchTimeout)
		defer cancel()
	}

	if query.TargetCount <= 0 {
		query.TargetCount = 10
	}

	return s.run(ctx, query)
}

func (s *Service) run(ctx context.Context, query *domain.CampaignQuery) (*domain.SearchResponse, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	log := logrus.WithField("run_id", runID)

	weights := domain.DefaultRankingWeights().MergeSuggestion(query.Weights)

	stats := domain.NewVerificationStats()

	pool, err := s.discoverer.DiscoverPool(query, s.config.PoolSize)
	if err != nil {
		log.WithError(err).Error("matching: failed to discover candidate pool")
		return nil, err
	}
	stats.TotalCandidates = len(pool)

	preselected := prefiltering.SelectCandidates(pool, query, s.config.SelectionSize)
	stats.Preselected = len(preselected)

	log.WithFields(logrus.Fields{
		"pool":        len(pool),
		"preselected": len(preselected),
	}).Info("matching: candidate pool assembled")

	verification := s.verifier.VerifyCandidates(ctx, preselected, stats)
	if verification.Degraded {
		log.Warn("matching: verification degraded, ranking on cached data only")
	}

	candidates := make([]filtering.Candidate, 0, len(preselected))
	for _, creator := range verification.Verified {
		candidates = append(candidates, filtering.Candidate{Creator: creator, Verified: true})
	}
	for _, creator := range verification.Unverified {
		candidates = append(candidates, filtering.Candidate{Creator: creator, Verified: false})
	}

	accepted := s.filterer.Apply(candidates, query, stats)
	stats.PassedFilters = len(accepted)

	ranked := s.ranker.RankCandidates(accepted, query, weights)
	if query.TargetCount > 0 && len(ranked) > query.TargetCount {
		ranked = ranked[:query.TargetCount]
	}

	log.WithFields(logrus.Fields{
		"passed_filters": stats.PassedFilters,
		"returned":       len(ranked),
		"external_calls": stats.ExternalCalls,
	}).Info("matching: search completed")

	return &domain.SearchResponse{
		RunID:   runID,
		Results: ranked,
		Stats:   stats,
	}, nil
}
