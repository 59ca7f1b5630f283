package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/lingo-hub/lingo/internal/domain/notification"
	"github.com/lingo-hub/lingo/internal/domain/project"
	"github.com/lingo-hub/lingo/internal/domain/user"
	"github.com/lingo-hub/lingo/internal/shared/biztime"
	"github.com/lingo-hub/lingo/internal/shared/constants"
	"github.com/lingo-hub/lingo/internal/shared/logger"
)

// Channel delivers a stored notification outside the application, e.g. by
// email. Delivery failures never fail the send.
type Channel interface {
	Name() string
	Deliver(ctx context.Context, n *notification.Notification, recipient *user.Contributor, source *project.Project) error
}

// Dispatcher stores project notifications and fans them out to channels.
type Dispatcher struct {
	repo     notification.Repository
	channels []Channel
	baseURL  string
	logger   logger.Interface
}

func NewDispatcher(repo notification.Repository, baseURL string, logger logger.Interface, channels ...Channel) *Dispatcher {
	return &Dispatcher{
		repo:     repo,
		channels: channels,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}
}

// Send persists one notification from source to recipient. Only the
// persistence error is returned.
func (d *Dispatcher) Send(ctx context.Context, source *project.Project, recipient *user.Contributor, verb string) error {
	data := map[string]any{
		"project_slug": source.Slug(),
		"project_name": source.Name(),
	}
	if deadline, ok := source.Deadline(); ok {
		data["deadline"] = biztime.FormatDate(deadline)
	}

	n, err := notification.NewNotification(
		recipient.ID(),
		constants.ActorTypeProject,
		source.ID(),
		verb,
		d.describe(source, verb),
		data,
	)
	if err != nil {
		return fmt.Errorf("failed to build notification: %w", err)
	}

	if err := d.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	for _, ch := range d.channels {
		if err := ch.Deliver(ctx, n, recipient, source); err != nil {
			d.logger.Warnw("notification delivery failed",
				"channel", ch.Name(),
				"notification_id", n.ID(),
				"recipient", recipient.Username(),
				"error", err,
			)
		}
	}

	return nil
}

// describe renders the markdown body shared by every channel.
func (d *Dispatcher) describe(source *project.Project, verb string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s](%s) is %s", source.Name(), d.projectURL(source), verb)
	if deadline, ok := source.Deadline(); ok {
		fmt.Fprintf(&b, " (deadline %s)", biztime.FormatDate(deadline))
	}
	b.WriteString(".\n\nSome of the locales you contribute to are not fully translated yet.")

	return b.String()
}

func (d *Dispatcher) projectURL(source *project.Project) string {
	return fmt.Sprintf("%s/projects/%s/", d.baseURL, source.Slug())
}
