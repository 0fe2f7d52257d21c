package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Jrogbaaa/Project-X-sub000/infrastructure/database/postgres"
	"github.com/Jrogbaaa/Project-X-sub000/infrastructure/integrator/hypeaudit"
	"github.com/Jrogbaaa/Project-X-sub000/infrastructure/integrator/hypeaudit/hypeclient"
	"github.com/Jrogbaaa/Project-X-sub000/infrastructure/repository"
	"github.com/Jrogbaaa/Project-X-sub000/internal/api"
	"github.com/Jrogbaaa/Project-X-sub000/internal/config"
	"github.com/Jrogbaaa/Project-X-sub000/internal/scheduler"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/authenticating"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/briefing"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/discovering"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/filtering"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/intelligence"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/matching"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/ranking"
	"github.com/Jrogbaaa/Project-X-sub000/internal/usecases/verifying"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	creatorRepo := repository.NewCreatorRepository(pgConn)
	taxonomyRepo := repository.NewNicheTaxonomyRepository(pgConn)
	brandGraphRepo := repository.NewBrandGraphRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	hypeClient := hypeclient.NewClient(cfg)
	audienceIntegrator := hypeaudit.New(cfg, hypeClient)

	intelService := intelligence.NewService(taxonomyRepo, brandGraphRepo)
	if err := intelService.Load(); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar taxonomia de nichos e grafo de marcas")
	}

	// O parser de briefings é um colaborador externo opcional. Sem ele, toda
	// busca por texto livre usa a consulta de fallback
	briefingService := briefing.NewService(nil)

	discoveryService := discovering.NewService(creatorRepo)

	verifyService := verifying.NewService(audienceIntegrator, creatorRepo, verifying.Config{
		FreshnessWindow: cfg.Matching.FreshnessWindow,
		MaxWorkers:      cfg.Matching.VerifyWorkers,
		CallBudget:      cfg.Matching.VerifyCap,
	})

	filterService := filtering.NewService(intelService)

	rankingService := ranking.NewService(intelService, ranking.Config{
		CelebrityFollowerThreshold: cfg.Matching.CelebrityFollowerThreshold,
	})

	matchingService := matching.NewService(
		briefingService,
		discoveryService,
		verifyService,
		filterService,
		rankingService,
		matching.Config{
			PoolSize:      cfg.Matching.PoolSize,
			SearchTimeout: cfg.Matching.SearchTimeout,
		},
	)

	metricsRefreshService := scheduler.NewMetricsRefreshService(creatorRepo, audienceIntegrator, cfg)

	if err := metricsRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de métricas")
	} else {
		logrus.Info("Agendador de atualização de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		matchingService,
		authenticator,
		metricsRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
