package scheduler

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/hal9000/warehouse/internal/config"
	"github.com/hal9000/warehouse/internal/service/catalogue"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron         *cron.Cron
	catalogueSvc *catalogue.Service
	cfg          config.Config
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, catalogueSvc *catalogue.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:         cron.New(),
		catalogueSvc: catalogueSvc,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the availability report job and starts the cron loop.
func (s *Scheduler) Start() {
	if !s.cfg.Reporting.Enabled {
		s.logger.Info("availability reporting disabled")
		return
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Reporting.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.Reporting.CronSchedule, s.logAvailabilityReport); err != nil {
		s.logger.Error("failed to schedule availability report", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) logAvailabilityReport() {
	available := s.catalogueSvc.AvailableProducts()
	if len(available) == 0 {
		s.logger.Info("availability report: nothing sellable")
		return
	}

	parts := make([]string, 0, len(available))
	for _, product := range available {
		parts = append(parts, fmt.Sprintf("%s=%d", product.Name, product.Quantity))
	}

	s.logger.Info("availability report",
		zap.Int("products", len(available)),
		zap.String("sellable", strings.Join(parts, " ")))
}
