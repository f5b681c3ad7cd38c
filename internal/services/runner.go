package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/parlay-optimizer/internal/models"
	"github.com/jstittsworth/parlay-optimizer/internal/optimizer"
	"github.com/jstittsworth/parlay-optimizer/internal/report"
	"github.com/jstittsworth/parlay-optimizer/pkg/database"
)

// RunnerService executes the optimization engine over a stored pool and
// persists, caches and broadcasts the resulting report run.
type RunnerService struct {
	db          *database.DB
	cache       *CacheService
	hub         *ReportHub
	logger      *logrus.Logger
	cacheExpiry time.Duration
}

func NewRunnerService(db *database.DB, cache *CacheService, hub *ReportHub, logger *logrus.Logger, cacheExpiry time.Duration) *RunnerService {
	return &RunnerService{
		db:          db,
		cache:       cache,
		hub:         hub,
		logger:      logger,
		cacheExpiry: cacheExpiry,
	}
}

// RunResult pairs the persisted run with the in-memory engine result, so
// callers can serve both the structured rows and the Markdown document
// without a second database read.
type RunResult struct {
	Run    models.ReportRun  `json:"run"`
	Result *optimizer.Result `json:"result"`
}

// RunPool loads the pool, runs the engine and stores the report. Cached
// results for the same pool and config are returned without recomputing.
func (s *RunnerService) RunPool(ctx context.Context, poolID string, cfg optimizer.Config) (*RunResult, error) {
	cacheKey := ReportCacheKey(poolID, HashConfig(cfg))
	var cached RunResult
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		s.logger.Debugf("Report cache hit for pool %s", poolID)
		return &cached, nil
	}

	var pool models.Pool
	if err := s.db.Preload("Candidates").First(&pool, "id = ?", poolID).Error; err != nil {
		return nil, fmt.Errorf("failed to load pool %s: %w", poolID, err)
	}

	result, err := optimizer.Optimize(pool.Candidates, cfg)
	if err != nil {
		return nil, err
	}

	run, err := s.persist(&pool, result)
	if err != nil {
		return nil, err
	}

	runResult := &RunResult{Run: *run, Result: result}
	if err := s.cache.Set(ctx, cacheKey, runResult, s.cacheExpiry); err != nil {
		s.logger.Warnf("Failed to cache report %s: %v", run.ID, err)
	}

	s.hub.BroadcastReportCompleted(run.ID, pool.ID)
	s.logger.Infof("Report run %s completed for pool %s: %d combinations in %dms",
		run.ID, pool.ID, result.EnumeratedCombos, result.OptimizationTimeMs)

	return runResult, nil
}

func (s *RunnerService) persist(pool *models.Pool, result *optimizer.Result) (*models.ReportRun, error) {
	rows, err := report.Rows(result)
	if err != nil {
		return nil, err
	}
	notices, err := report.NoticesJSON(result)
	if err != nil {
		return nil, err
	}

	run := models.ReportRun{
		ID:       uuid.New().String(),
		PoolID:   pool.ID,
		Book:     pool.Book,
		Notices:  notices,
		Markdown: report.Markdown(result),
	}
	for i := range rows {
		rows[i].RunID = run.ID
	}
	run.Rows = rows

	if err := s.db.Create(&run).Error; err != nil {
		return nil, fmt.Errorf("failed to store report run: %w", err)
	}
	return &run, nil
}

// LatestPoolID returns the most recently ingested pool, if any.
func (s *RunnerService) LatestPoolID() (string, error) {
	var pool models.Pool
	err := s.db.Order("created_at DESC").First(&pool).Error
	if err != nil {
		return "", err
	}
	return pool.ID, nil
}
