package worker

import (
	"fmt"

	"highrange-backend/models"
	"highrange-backend/services"
	"highrange-backend/utils/logger"

	"github.com/robfig/cron"
)

// Service logs a periodic digest of the pipeline counters. Counters are
// process-local; the digest is an operator convenience, not persistence.
type Service struct {
	cron     *cron.Cron
	metrics  *services.Metrics
	schedule string
	logger   logger.Logger
}

// NewService creates the stats digest worker
func NewService(cfg *models.Config, metrics *services.Metrics, log logger.Logger) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if metrics == nil {
		return nil, fmt.Errorf("metrics cannot be nil")
	}

	schedule := cfg.StatsDigestSchedule
	if schedule == "" {
		schedule = "0 0 * * * *" // hourly
	}

	// Schedules use second precision, same parser cron.AddFunc applies
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(schedule); err != nil {
		return nil, fmt.Errorf("invalid stats digest schedule %q: %w", schedule, err)
	}

	return &Service{
		cron:     cron.New(),
		metrics:  metrics,
		schedule: schedule,
		logger:   log,
	}, nil
}

// Start registers the digest job and starts the scheduler in the background
func (s *Service) Start() error {
	if err := s.cron.AddFunc(s.schedule, s.logDigest); err != nil {
		return fmt.Errorf("failed to schedule stats digest: %w", err)
	}

	s.cron.Start()
	s.logger.Infof("Stats digest worker started (schedule %q)", s.schedule)
	return nil
}

// StartInBackground starts the worker without blocking the caller
func (s *Service) StartInBackground() error {
	return s.Start()
}

// Stop halts the scheduler
func (s *Service) Stop() {
	s.cron.Stop()
	s.logger.Info("Stats digest worker stopped")
}

func (s *Service) logDigest() {
	s.logger.Infof("Pipeline stats: %+v", s.metrics.Snapshot())
}
