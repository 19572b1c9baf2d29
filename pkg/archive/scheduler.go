package archive

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// Scheduler runs archive pruning on a cron schedule.
type Scheduler struct {
	archive *SQLiteArchive
	cron    *cron.Cron
	logger  *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewScheduler creates a scheduler for the archive's retention policy.
func NewScheduler(archive *SQLiteArchive) *Scheduler {
	return &Scheduler{
		archive: archive,
		cron:    cron.New(),
		logger:  slog.Default().With("component", "archive.scheduler"),
	}
}

// Start begins scheduled pruning based on the archive's PruneSchedule cron
// expression. An empty schedule makes Start a no-op. The scheduler stops
// when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedule := s.archive.config.PruneSchedule
	if schedule == "" {
		s.logger.Info("prune schedule not configured, skipping scheduler")
		return nil
	}

	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}

	_, err := s.cron.AddFunc(schedule, func() {
		deleted, err := s.archive.Prune(ctx)
		if err != nil {
			s.logger.Error("scheduled archive pruning failed", "error", err)
			return
		}
		s.logger.Info("scheduled archive pruning completed", "deleted", deleted)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule pruning: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("archive retention scheduler started",
		"schedule", schedule,
		"retention_days", s.archive.config.RetentionDays,
	)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop halts scheduled pruning. In-flight prunes complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.cron.Stop()
	s.running = false
	s.logger.Info("archive retention scheduler stopped")
}
