package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sourcegraph/conc"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/kwdash/soccer-analytics/internal/config"
	"github.com/kwdash/soccer-analytics/internal/domain/match"
	"github.com/kwdash/soccer-analytics/internal/domain/teamgroup"
	"github.com/kwdash/soccer-analytics/internal/infrastructure/importer"
	"github.com/kwdash/soccer-analytics/internal/infrastructure/repository/memory"
	"github.com/kwdash/soccer-analytics/internal/infrastructure/repository/postgres"
	"github.com/kwdash/soccer-analytics/internal/infrastructure/repository/sqlite"
	"github.com/kwdash/soccer-analytics/internal/interfaces/httpapi"
	"github.com/kwdash/soccer-analytics/internal/platform/cache"
	"github.com/kwdash/soccer-analytics/internal/platform/logging"
	"github.com/kwdash/soccer-analytics/internal/usecase"
)

// NewHTTPServer wires repositories, services, and the HTTP surface from
// config. The returned cleanup closes any database handles it opened.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	cleanups := make([]func(), 0, 2)
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	matchRepo, closeMatches, err := newMatchRepository(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if closeMatches != nil {
		cleanups = append(cleanups, closeMatches)
	}

	groupRepo, closeGroups, err := newTeamGroupRepository(cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if closeGroups != nil {
		cleanups = append(cleanups, closeGroups)
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	competitivenessSvc := usecase.NewCompetitivenessService(logger)
	selectionSvc := usecase.NewSelectionService(matchRepo, logger)
	opponentFilterSvc := usecase.NewOpponentFilterService(competitivenessSvc, logger)
	metricsSvc := usecase.NewMetricsService()
	dayStatsSvc := usecase.NewDayStatsService()
	dashboardSvc := usecase.NewDashboardService(
		selectionSvc,
		opponentFilterSvc,
		metricsSvc,
		dayStatsSvc,
		groupRepo,
		logger,
	)
	comparisonSvc := usecase.NewComparisonService(dashboardSvc, logger)
	teamSvc := usecase.NewTeamService(matchRepo, store)
	groupSvc := usecase.NewGroupService(groupRepo)

	if store != nil {
		go warmCaches(teamSvc, logger)
	}

	handler := httpapi.NewHandler(dashboardSvc, comparisonSvc, teamSvc, groupSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func newMatchRepository(cfg config.Config, logger *logging.Logger) (match.Repository, func(), error) {
	if cfg.DBURL != "" {
		db, err := openPostgres(cfg.DBURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		logger.Info("match corpus backed by postgres")
		return postgres.NewMatchRepository(db), func() { _ = db.Close() }, nil
	}

	if cfg.CorpusCSVPath != "" {
		matches, err := importer.ReadCSVFile(cfg.CorpusCSVPath)
		if err != nil {
			return nil, nil, fmt.Errorf("import corpus csv: %w", err)
		}
		logger.Info("match corpus loaded from csv", "path", cfg.CorpusCSVPath, "matches", len(matches))
		return memory.NewMatchRepository(matches), nil, nil
	}

	logger.Info("match corpus backed by seed data")
	return memory.NewMatchRepository(memory.SeedMatches()), nil, nil
}

func newTeamGroupRepository(cfg config.Config, logger *logging.Logger) (teamgroup.Repository, func(), error) {
	if cfg.TeamGroupsDBPath != "" {
		repo, err := sqlite.NewTeamGroupRepository(cfg.TeamGroupsDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open team groups db: %w", err)
		}
		logger.Info("team groups backed by sqlite", "path", cfg.TeamGroupsDBPath)
		return repo, func() { _ = repo.Close() }, nil
	}

	logger.Info("team groups backed by seed data")
	return memory.NewTeamGroupRepository(memory.SeedTeamGroups()), nil, nil
}

func openPostgres(dbURL string) (*sqlx.DB, error) {
	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName("soccer_analytics"),
	)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// warmCaches primes the team list and date bounds caches so the first
// dashboard request does not pay the corpus scan.
func warmCaches(teamSvc *usecase.TeamService, logger *logging.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg conc.WaitGroup
	wg.Go(func() {
		if _, err := teamSvc.ListTeams(ctx); err != nil {
			logger.Warn("team list cache warmup failed", "error", err)
		}
	})
	wg.Go(func() {
		if _, _, _, err := teamSvc.DateBounds(ctx); err != nil {
			logger.Warn("date bounds cache warmup failed", "error", err)
		}
	})
	wg.Wait()
}
