package schedule

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lingo-hub/lingo/internal/infrastructure/scheduler"
	"github.com/lingo-hub/lingo/internal/interfaces/cli/bootstrap"
)

func NewCommand() *cobra.Command {
	var (
		flags  bootstrap.Flags
		runNow bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run the deadline notifier on its daily schedule",
		Long:  `Keep running and trigger deadline notifications on scheduler.cron in the business timezone.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, runNow)
		},
	}

	flags.Register(cmd)
	cmd.Flags().BoolVar(&runNow, "run-now", false, "Also run once immediately on startup")
	return cmd
}

func run(cmd *cobra.Command, flags bootstrap.Flags, runNow bool) error {
	app, err := bootstrap.Init(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifier, err := app.NewDeadlineNotifier(ctx)
	if err != nil {
		return fmt.Errorf("failed to build deadline notifier: %w", err)
	}

	manager, err := scheduler.NewSchedulerManager(app.Logger.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	cfg := app.Config.Scheduler
	if err := manager.RegisterDeadlineJob(notifier, cfg.Cron, cfg.Timeout(), runNow); err != nil {
		return fmt.Errorf("failed to register deadline job: %w", err)
	}

	manager.Start()
	<-ctx.Done()

	app.Logger.Infow("shutdown signal received")
	return manager.Stop()
}
