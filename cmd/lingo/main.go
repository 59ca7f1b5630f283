package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/lingo-hub/lingo/internal/interfaces/cli/migrate"
	"github.com/lingo-hub/lingo/internal/interfaces/cli/notify"
	"github.com/lingo-hub/lingo/internal/interfaces/cli/schedule"
	"github.com/lingo-hub/lingo/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "lingo",
		Short:        "Lingo - translation project maintenance jobs",
		Long:         `Lingo runs the periodic jobs of a translation platform: deadline reminders, schema migrations and demo fixtures.`,
		Version:      version.String(),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		notify.NewCommand(),
		schedule.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
