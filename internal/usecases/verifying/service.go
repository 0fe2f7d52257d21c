// Package verifying é o gate de verificação: decide quem dispensa chamada
// externa por ter métricas frescas em cache e verifica o restante com
// concorrência limitada, sem nunca estourar o orçamento de chamadas da busca
package verifying

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Jrogbaaa/Project-X-sub000/infrastructure/integrator/hypeaudit"
	"github.com/Jrogbaaa/Project-X-sub000/infrastructure/repository"
	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
)

// Custo em chamadas externas de cada caminho de verificação
const (
	costDirectFetch = 1 // token lembrado: só o relatório
	costFullLookup  = 2 // busca textual + relatório
)

type Config struct {
	FreshnessWindow time.Duration
	MaxWorkers      int
	CallBudget      int // teto absoluto de chamadas externas por busca
}

// Result é a saída do gate. A ordem dos candidatos de entrada é preservada
// nas duas fatias; só o ranking reordena
type Result struct {
	Verified   []*domain.Creator
	Unverified []*domain.Creator

	// Degraded indica que todas as tentativas de verificação falharam
	// (credencial expirada, indisponibilidade). O pipeline segue em modo
	// leniente em vez de abortar
	Degraded bool
}

// Verifier é o contrato do gate visto pelo orquestrador
type Verifier interface {
	VerifyCandidates(ctx context.Context, candidates []*domain.Creator, stats *domain.VerificationStats) *Result
}

type Service struct {
	integrator  hypeaudit.AudienceIntegrator
	creatorRepo repository.CreatorRepository
	config      Config

	now func() time.Time // injetável em testes
}

func NewService(integrator hypeaudit.AudienceIntegrator, creatorRepo repository.CreatorRepository, config Config) *Service {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = 5
	}

	return &Service{
		integrator:  integrator,
		creatorRepo: creatorRepo,
		config:      config,
		now:         time.Now,
	}
}

type verifyOutcome struct {
	verified bool
}

// VerifyCandidates particiona os candidatos entre já-frescos e pendentes,
// verifica os pendentes com workers limitados e devolve os dois conjuntos.
// Falha de verificação nunca é erro da busca: o candidato cai no conjunto
// não verificado e o filtro leniente decide
func (s *Service) VerifyCandidates(ctx context.Context, candidates []*domain.Creator, stats *domain.VerificationStats) *Result {
	now := s.now()

	// Deduplicação por identidade antes do despacho: garante que nenhum
	// candidato tenha métricas atualizadas por dois workers
	unique := make([]*domain.Creator, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, candidate := range candidates {
		if seen[candidate.Key()] {
			continue
		}
		seen[candidate.Key()] = true
		unique = append(unique, candidate)
	}

	pending := make([]*domain.Creator, 0, len(unique))
	fresh := make(map[string]bool, len(unique))
	for _, candidate := range unique {
		if candidate.IsVerified(s.config.FreshnessWindow, now) {
			fresh[candidate.Key()] = true
			stats.AlreadyFresh++
			continue
		}
		pending = append(pending, candidate)
	}

	outcomes := s.verifyPending(ctx, pending, stats)

	result := &Result{
		Verified:   make([]*domain.Creator, 0, len(unique)),
		Unverified: make([]*domain.Creator, 0, len(unique)),
	}

	attempted, succeeded := 0, 0
	for _, candidate := range unique {
		if fresh[candidate.Key()] {
			result.Verified = append(result.Verified, candidate)
			continue
		}

		outcome, ok := outcomes[candidate.Key()]
		if ok {
			attempted++
		}
		if ok && outcome.verified {
			succeeded++
			result.Verified = append(result.Verified, candidate)
			continue
		}

		result.Unverified = append(result.Unverified, candidate)
	}

	// Salvaguarda de disponibilidade: upstream totalmente fora do ar não
	// derruba a busca — todos os pré-filtrados seguem como não verificados
	if attempted > 0 && succeeded == 0 && len(fresh) == 0 {
		logrus.WithFields(logrus.Fields{
			"attempted": attempted,
		}).Warn("verify: all verification attempts failed, continuing in lenient mode")
		result.Degraded = true
	}

	logrus.WithFields(logrus.Fields{
		"candidates":     len(unique),
		"already_fresh":  len(fresh),
		"attempted":      attempted,
		"verified":       succeeded,
		"external_calls": stats.ExternalCalls,
	}).Info("verify: verification gate completed")

	return result
}

// verifyPending despacha as verificações com um semáforo do tamanho do pool
// de workers. O orçamento de chamadas é reservado antes do despacho, então o
// teto vale mesmo com K maior que o esperado
func (s *Service) verifyPending(ctx context.Context, pending []*domain.Creator, stats *domain.VerificationStats) map[string]verifyOutcome {
	outcomes := make(map[string]verifyOutcome, len(pending))
	if len(pending) == 0 {
		return outcomes
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, s.config.MaxWorkers)

	budget := s.config.CallBudget

	for _, candidate := range pending {
		cost := costFullLookup
		if candidate.ExternalID != nil && *candidate.ExternalID != "" {
			cost = costDirectFetch
		}

		// Sem orçamento para este caminho: o candidato segue não
		// verificado, sem contar como falha
		if budget < cost {
			logrus.WithField("username", candidate.Username).Debug("verify: call budget exhausted, skipping candidate")
			continue
		}
		budget -= cost

		if ctx.Err() != nil {
			// Deadline da busca estourado: candidatos restantes são
			// tratados como falha de verificação
			mu.Lock()
			outcomes[candidate.Key()] = verifyOutcome{verified: false}
			mu.Unlock()
			stats.AddFailed(0)
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(creator *domain.Creator, calls int) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			verified := s.verifyOne(ctx, creator, calls)

			mu.Lock()
			outcomes[creator.Key()] = verifyOutcome{verified: verified}
			mu.Unlock()

			if verified {
				stats.AddVerified(calls)
			} else {
				stats.AddFailed(calls)
			}
		}(candidate, cost)
	}

	wg.Wait()

	return outcomes
}

// verifyOne executa o caminho de verificação de um candidato e, em caso de
// sucesso, atualiza o registro em memória e no catálogo
func (s *Service) verifyOne(ctx context.Context, creator *domain.Creator, calls int) bool {
	externalID := ""
	followers := creator.FollowerCount

	if calls == costDirectFetch {
		externalID = *creator.ExternalID
	} else {
		summary, err := s.integrator.LookupProfile(ctx, creator.Platform, creator.Username)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"platform": creator.Platform,
				"username": creator.Username,
				"error":    err.Error(),
			}).Warn("verify: profile lookup failed")
			return false
		}
		externalID = summary.ID
		if summary.Followers > 0 {
			followers = summary.Followers
		}
	}

	profile, err := s.integrator.FetchMetricsByID(ctx, externalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"username":    creator.Username,
			"external_id": externalID,
			"error":       err.Error(),
		}).Warn("verify: metrics fetch failed")
		return false
	}

	if profile.Followers > 0 {
		followers = profile.Followers
	}

	now := s.now()
	creator.Metrics = profile.Metrics
	creator.FollowerCount = followers
	creator.ExternalID = &profile.ExternalID
	creator.VerifiedAt = &now
	creator.MetricsComplete = profile.IsComplete()

	// A escrita no catálogo é melhor esforço: se falhar, a verificação
	// continua válida para esta busca
	if err := s.creatorRepo.UpdateMetrics(creator); err != nil {
		logrus.WithFields(logrus.Fields{
			"username": creator.Username,
			"error":    err.Error(),
		}).Error("verify: failed to persist verified metrics")
	}

	// Relatório incompleto ainda conta como verificado: o filtro estrito é
	// quem rejeita campo obrigatório ausente
	return true
}
