package usecases

import (
	"context"
	"time"

	"github.com/lingo-hub/lingo/internal/application/deadline/dto"
	"github.com/lingo-hub/lingo/internal/domain/project"
	"github.com/lingo-hub/lingo/internal/domain/user"
)

// DeadlineRepository is the read side the notifier needs.
type DeadlineRepository interface {
	ListAvailableProjects(ctx context.Context) ([]*project.Project, error)
	ListIncompleteLocales(ctx context.Context, p *project.Project) ([]*project.Locale, error)
	ListEligibleContributors(ctx context.Context, p *project.Project, locales []*project.Locale) ([]*user.Contributor, error)
}

// NotificationSender emits one notification with the project as its source.
type NotificationSender interface {
	Send(ctx context.Context, source *project.Project, recipient *user.Contributor, verb string) error
}

// SendGuard suppresses repeat sends of the same reminder on the same day.
// TryAcquire returns false when the reminder was already claimed.
type SendGuard interface {
	TryAcquire(ctx context.Context, projectID, contributorID uint, day time.Time) (bool, error)
	Release(ctx context.Context, projectID, contributorID uint, day time.Time) error
}

// RunRecorder receives the outcome of every run, failed ones included.
type RunRecorder interface {
	RecordRun(result *dto.RunResult, runErr error)
}
