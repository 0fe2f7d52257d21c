// Package scheduler agenda os jobs de manutenção do catálogo
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Jrogbaaa/Project-X-sub000/infrastructure/integrator/hypeaudit"
	"github.com/Jrogbaaa/Project-X-sub000/infrastructure/repository"
	"github.com/Jrogbaaa/Project-X-sub000/internal/config"
	"github.com/Jrogbaaa/Project-X-sub000/internal/domain"
)

// MetricsRefreshConfig representa a configuração do agendador de atualização
// de métricas
type MetricsRefreshConfig struct {
	CronSchedule        string
	BatchSize           int
	RequestDelaySeconds int
	FreshnessWindow     time.Duration
	Enabled             bool
}

// MetricsRefreshService reverifica periodicamente os criadores cujas métricas
// saíram da janela de frescor, para que as próximas buscas encontrem mais
// candidatos em cache e gastem menos orçamento de chamadas
type MetricsRefreshService struct {
	scheduler   *gocron.Scheduler
	config      MetricsRefreshConfig
	creatorRepo repository.CreatorRepository
	integrator  hypeaudit.AudienceIntegrator

	refreshRunning        bool
	refreshMutex          sync.Mutex
	lastRefreshStartedAt  time.Time
	lastRefreshFinishedAt time.Time
}

func NewMetricsRefreshService(
	creatorRepo repository.CreatorRepository,
	integrator hypeaudit.AudienceIntegrator,
	appConfig *config.Config,
) *MetricsRefreshService {
	refreshConfig := MetricsRefreshConfig{
		CronSchedule:        appConfig.MetricsRefresh.CronSchedule,
		BatchSize:           appConfig.MetricsRefresh.BatchSize,
		RequestDelaySeconds: appConfig.MetricsRefresh.DelaySeconds,
		FreshnessWindow:     appConfig.Matching.FreshnessWindow,
		Enabled:             appConfig.MetricsRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         refreshConfig.CronSchedule,
		"batch_size":            refreshConfig.BatchSize,
		"request_delay_seconds": refreshConfig.RequestDelaySeconds,
		"enabled":               refreshConfig.Enabled,
	}).Info("Configuração do agendador de atualização de métricas carregada")

	return &MetricsRefreshService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      refreshConfig,
		creatorRepo: creatorRepo,
		integrator:  integrator,
	}
}

// Start inicia o agendador
func (s *MetricsRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização periódica de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RefreshStaleMetrics(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshStaleMetrics reverifica um lote de criadores com métricas vencidas.
// Também é acionável sob demanda pela rota de cron
func (s *MetricsRefreshService) RefreshStaleMetrics(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização de métricas já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.refreshMutex.Unlock()

	startTime := time.Now()
	s.lastRefreshStartedAt = startTime

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRefreshFinishedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	olderThan := startTime.Add(-s.config.FreshnessWindow)

	stale, err := s.creatorRepo.ListStaleVerified(olderThan, s.config.BatchSize)
	if err != nil {
		logrus.WithError(err).Error("metrics refresh: failed to list stale creators")
		return
	}

	if len(stale) == 0 {
		logrus.Info("Nenhum criador com métricas vencidas")
		return
	}

	refreshed, failed := 0, 0
	for _, creator := range stale {
		if ctx.Err() != nil {
			logrus.Info("Atualização de métricas interrompida pelo contexto")
			break
		}

		if s.refreshOne(ctx, creator) {
			refreshed++
		} else {
			failed++
		}

		// Espaça as chamadas para não disputar o rate limit com buscas ativas
		if s.config.RequestDelaySeconds > 0 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"stale":     len(stale),
		"refreshed": refreshed,
		"failed":    failed,
	}).Info("Atualização de métricas concluída")
}

// refreshOne reverifica um único criador. Sem ExternalID não há caminho
// barato: o criador fica para a próxima busca que o verificar por completo
func (s *MetricsRefreshService) refreshOne(ctx context.Context, creator *domain.Creator) bool {
	if creator.ExternalID == nil || *creator.ExternalID == "" {
		return false
	}

	profile, err := s.integrator.FetchMetricsByID(ctx, *creator.ExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"creator": creator.Key(),
		}).WithError(err).Warn("metrics refresh: failed to fetch profile report")
		return false
	}

	now := time.Now()
	creator.Metrics = profile.Metrics
	creator.MetricsComplete = profile.IsComplete()
	creator.VerifiedAt = &now
	if profile.Followers > 0 {
		creator.FollowerCount = profile.Followers
	}

	if err := s.creatorRepo.UpdateMetrics(creator); err != nil {
		logrus.WithFields(logrus.Fields{
			"creator": creator.Key(),
		}).WithError(err).Error("metrics refresh: failed to persist metrics")
		return false
	}

	return true
}

// Status expõe o estado corrente do job para a rota de cron
func (s *MetricsRefreshService) Status() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	status := map[string]any{
		"enabled": s.config.Enabled,
		"cron":    s.config.CronSchedule,
		"running": s.refreshRunning,
		"batch":   s.config.BatchSize,
	}

	if !s.lastRefreshStartedAt.IsZero() {
		status["last_started_at"] = s.lastRefreshStartedAt.Format(time.RFC3339)
	}
	if !s.lastRefreshFinishedAt.IsZero() {
		status["last_finished_at"] = s.lastRefreshFinishedAt.Format(time.RFC3339)
	}

	return status
}
