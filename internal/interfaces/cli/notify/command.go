package notify

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lingo-hub/lingo/internal/interfaces/cli/bootstrap"
	"github.com/lingo-hub/lingo/internal/shared/biztime"
)

func NewCommand() *cobra.Command {
	var flags bootstrap.Flags

	cmd := &cobra.Command{
		Use:   "send-deadline-notifications",
		Short: "Remind contributors of upcoming project deadlines",
		Long: `Notify contributors of incomplete locales that a project deadline is 7 or 2 days away.
Intended to run once a day; running it twice on the same day sends the reminders twice
unless notifier.dedup is enabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags)
		},
	}

	flags.Register(cmd)
	return cmd
}

func run(cmd *cobra.Command, flags bootstrap.Flags) error {
	app, err := bootstrap.Init(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()

	notifier, err := app.NewDeadlineNotifier(ctx)
	if err != nil {
		return fmt.Errorf("failed to build deadline notifier: %w", err)
	}

	result, err := notifier.Execute(ctx, biztime.Today())
	if err != nil {
		app.Logger.Errorw("deadline notifications failed", "error", err)
		return err
	}

	app.Logger.Infow("deadline notifications finished",
		"run_id", result.RunID,
		"date", result.Date,
		"projects_matched", result.ProjectsMatched,
		"notifications_sent", result.NotificationsSent,
		"duration", result.Duration(),
	)
	return nil
}
