// Package scheduler runs the recurring notifier jobs on gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/lingo-hub/lingo/internal/application/deadline/dto"
	"github.com/lingo-hub/lingo/internal/shared/biztime"
	"github.com/lingo-hub/lingo/internal/shared/logger"
)

const deadlineJobName = "deadline-notifications"

// DeadlineRunner is one pass of the deadline notifier for a calendar date.
type DeadlineRunner interface {
	Execute(ctx context.Context, today time.Time) (*dto.RunResult, error)
}

// SchedulerManager owns the gocron scheduler. Cron expressions are read in
// the business timezone.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterDeadlineJob runs the notifier on cronExpr. A run still in progress
// when the next tick arrives makes that tick skip. With runNow the first pass
// starts as soon as the scheduler does.
func (m *SchedulerManager) RegisterDeadlineJob(runner DeadlineRunner, cronExpr string, timeout time.Duration, runNow bool) error {
	opts := []gocron.JobOption{
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("deadline", "notification"),
		gocron.WithName(deadlineJobName),
	}
	if runNow {
		opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	_, err := m.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			m.runDeadlineJob(ctx, runner, biztime.Today())
		}),
		opts...,
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered deadline notification job",
		"cron", cronExpr,
		"timezone", biztime.Location().String(),
		"timeout", timeout,
	)
	return nil
}

func (m *SchedulerManager) runDeadlineJob(ctx context.Context, runner DeadlineRunner, today time.Time) {
	m.logger.Debugw("deadline notification job started", "date", biztime.FormatDate(today))

	startTime := biztime.NowUTC()
	result, err := runner.Execute(ctx, today)
	if err != nil {
		if ctx.Err() != nil {
			m.logger.Warnw("deadline notification job cancelled",
				"error", err,
				"duration", time.Since(startTime),
			)
			return
		}
		m.logger.Errorw("deadline notification job failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	m.logger.Infow("deadline notification job completed",
		"run_id", result.RunID,
		"projects_matched", result.ProjectsMatched,
		"notifications_sent", result.NotificationsSent,
		"duration", time.Since(startTime),
	)
}

func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs to finish.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
