package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lingo-hub/lingo/internal/application/deadline/dto"
	"github.com/lingo-hub/lingo/internal/domain/project"
	"github.com/lingo-hub/lingo/internal/shared/biztime"
	"github.com/lingo-hub/lingo/internal/shared/logger"
)

// DefaultReminderDays are the days-before-deadline that trigger a reminder.
var DefaultReminderDays = []int{7, 2}

// DeadlineVerb is the notification verb for a reminder daysLeft days before
// the deadline.
func DeadlineVerb(daysLeft int) string {
	return fmt.Sprintf("due in %d days", daysLeft)
}

type Option func(*SendDeadlineNotificationsUseCase)

// WithReminderDays replaces the reminder days. An empty list keeps the
// current set.
func WithReminderDays(days []int) Option {
	return func(uc *SendDeadlineNotificationsUseCase) {
		if len(days) == 0 {
			return
		}
		uc.reminderDays = make(map[int]bool, len(days))
		for _, d := range days {
			uc.reminderDays[d] = true
		}
	}
}

func WithSendGuard(guard SendGuard) Option {
	return func(uc *SendDeadlineNotificationsUseCase) {
		uc.guard = guard
	}
}

func WithRunRecorder(recorder RunRecorder) Option {
	return func(uc *SendDeadlineNotificationsUseCase) {
		uc.recorder = recorder
	}
}

// SendDeadlineNotificationsUseCase reminds contributors of incomplete locales
// that a project deadline is near. Without a SendGuard a second run on the
// same day sends every reminder again.
type SendDeadlineNotificationsUseCase struct {
	repo         DeadlineRepository
	sender       NotificationSender
	guard        SendGuard
	recorder     RunRecorder
	reminderDays map[int]bool
	logger       logger.Interface
}

func NewSendDeadlineNotificationsUseCase(
	repo DeadlineRepository,
	sender NotificationSender,
	logger logger.Interface,
	opts ...Option,
) *SendDeadlineNotificationsUseCase {
	uc := &SendDeadlineNotificationsUseCase{
		repo:   repo,
		sender: sender,
		logger: logger,
	}
	WithReminderDays(DefaultReminderDays)(uc)
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs one pass for the calendar date of today. The first error from
// the repository, guard or sender aborts the pass; notifications already sent
// stay sent.
func (uc *SendDeadlineNotificationsUseCase) Execute(ctx context.Context, today time.Time) (*dto.RunResult, error) {
	result := &dto.RunResult{
		RunID:     uuid.NewString(),
		Date:      biztime.FormatDate(today),
		StartedAt: biztime.NowUTC(),
	}

	err := uc.run(ctx, biztime.DateOf(today), result, uc.logger.With("run_id", result.RunID))
	result.FinishedAt = biztime.NowUTC()

	if uc.recorder != nil {
		uc.recorder.RecordRun(result, err)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *SendDeadlineNotificationsUseCase) run(ctx context.Context, today time.Time, result *dto.RunResult, log logger.Interface) error {
	projects, err := uc.repo.ListAvailableProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list available projects: %w", err)
	}
	result.ProjectsScanned = len(projects)

	for _, p := range projects {
		daysLeft, ok := p.DaysUntilDeadline(today)
		if !ok || !uc.reminderDays[daysLeft] {
			continue
		}
		result.ProjectsMatched++

		log.Infow("sending deadline notifications for project",
			"project", p.Slug(),
			"days_left", daysLeft,
		)

		pr, err := uc.notifyProject(ctx, p, daysLeft, today, result, log)
		if err != nil {
			return err
		}
		result.Projects = append(result.Projects, pr)

		log.Infow("deadline notifications for project sent",
			"project", p.Slug(),
			"days_left", daysLeft,
			"incomplete_locales", pr.IncompleteLocales,
			"notifications", pr.Sent,
		)
	}

	return nil
}

func (uc *SendDeadlineNotificationsUseCase) notifyProject(
	ctx context.Context,
	p *project.Project,
	daysLeft int,
	today time.Time,
	result *dto.RunResult,
	log logger.Interface,
) (dto.ProjectResult, error) {
	pr := dto.ProjectResult{Slug: p.Slug(), DaysLeft: daysLeft}

	locales, err := uc.repo.ListIncompleteLocales(ctx, p)
	if err != nil {
		return pr, fmt.Errorf("failed to list incomplete locales for project %s: %w", p.Slug(), err)
	}
	pr.IncompleteLocales = len(locales)

	contributors, err := uc.repo.ListEligibleContributors(ctx, p, locales)
	if err != nil {
		return pr, fmt.Errorf("failed to list contributors for project %s: %w", p.Slug(), err)
	}
	pr.Contributors = len(contributors)

	verb := DeadlineVerb(daysLeft)

	for _, c := range contributors {
		if !project.CanReceiveDeadlineNotification(p, c) {
			result.SkippedByPolicy++
			continue
		}

		if uc.guard != nil {
			acquired, err := uc.guard.TryAcquire(ctx, p.ID(), c.ID(), today)
			if err != nil {
				return pr, fmt.Errorf("failed to check send guard for %s/%s: %w", p.Slug(), c.Username(), err)
			}
			if !acquired {
				result.SkippedDuplicates++
				log.Debugw("deadline notification already sent today",
					"project", p.Slug(),
					"contributor", c.Username(),
				)
				continue
			}
		}

		if err := uc.sender.Send(ctx, p, c, verb); err != nil {
			if uc.guard != nil {
				if relErr := uc.guard.Release(ctx, p.ID(), c.ID(), today); relErr != nil {
					log.Warnw("failed to release send guard",
						"project", p.Slug(),
						"contributor", c.Username(),
						"error", relErr,
					)
				}
			}
			return pr, fmt.Errorf("failed to send deadline notification to %s for project %s: %w", c.Username(), p.Slug(), err)
		}

		pr.Sent++
		result.NotificationsSent++
	}

	return pr, nil
}
