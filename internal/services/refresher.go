package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jstittsworth/parlay-optimizer/internal/optimizer"
)

// RefresherService re-runs the optimizer for the most recent pool on a
// schedule, keeping the stored report and cache warm between ingests.
type RefresherService struct {
	runner    *RunnerService
	logger    *logrus.Logger
	cron      *cron.Cron
	config    optimizer.Config
	interval  time.Duration
	mu        sync.Mutex
	isRunning bool
}

func NewRefresherService(runner *RunnerService, logger *logrus.Logger, engineConfig optimizer.Config, interval time.Duration) *RefresherService {
	return &RefresherService{
		runner:   runner,
		logger:   logger,
		cron:     cron.New(),
		config:   engineConfig,
		interval: interval,
	}
}

// Start begins the scheduled refresh.
func (s *RefresherService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("refresher is already running")
	}

	schedule := fmt.Sprintf("@every %s", s.interval.String())
	_, err := s.cron.AddFunc(schedule, s.refreshLatest)
	if err != nil {
		return fmt.Errorf("failed to schedule refresher: %w", err)
	}

	s.cron.Start()
	s.isRunning = true

	s.logger.Info("Report refresher service started")
	return nil
}

// Stop halts the scheduled refresh and waits for an in-flight run.
func (s *RefresherService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.logger.Info("Report refresher service stopped")
}

func (s *RefresherService) refreshLatest() {
	poolID, err := s.runner.LatestPoolID()
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			s.logger.Debug("No pool ingested yet, skipping refresh")
			return
		}
		s.logger.Errorf("Failed to find latest pool: %v", err)
		return
	}

	s.logger.Infof("Refreshing report for pool %s", poolID)
	if _, err := s.runner.RunPool(context.Background(), poolID, s.config); err != nil {
		s.logger.Errorf("Scheduled refresh failed for pool %s: %v", poolID, err)
	}
}
