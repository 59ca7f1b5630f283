package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lingo-hub/lingo/internal/infrastructure/migration"
	"github.com/lingo-hub/lingo/internal/infrastructure/seed"
	"github.com/lingo-hub/lingo/internal/interfaces/cli/bootstrap"
	"github.com/lingo-hub/lingo/internal/shared/biztime"
	"github.com/lingo-hub/lingo/internal/shared/constants"
)

func NewCommand() *cobra.Command {
	var flags bootstrap.Flags

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the database schema and load demo fixtures.`,
	}

	flags.Register(cmd)

	cmd.AddCommand(
		newUpCommand(&flags),
		newStatusCommand(&flags),
		newAutoCommand(&flags),
		newSeedCommand(&flags),
	)

	return cmd
}

func newUpCommand(flags *bootstrap.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Long:  `Apply embedded SQL migrations on MySQL, or derive the schema from the models on sqlite.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.Init(*flags)
			if err != nil {
				return err
			}
			defer app.Close()

			manager := migration.NewManager(app.Config.Database.Driver, app.Logger)
			if err := manager.Migrate(app.DB); err != nil {
				app.Logger.Errorw("migration failed", "error", err)
				return err
			}

			app.Logger.Infow("migrations completed successfully", "strategy", manager.Strategy().GetName())
			return nil
		},
	}
}

func newStatusCommand(flags *bootstrap.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.Init(*flags)
			if err != nil {
				return err
			}
			defer app.Close()

			if app.Config.Database.Driver == constants.DriverSQLite {
				return fmt.Errorf("status is only tracked for versioned migrations; sqlite uses auto migration")
			}

			strategy := migration.NewGooseStrategy(migration.Scripts(), "mysql", app.Logger)
			version, err := strategy.GetVersion(app.DB)
			if err != nil {
				return err
			}
			app.Logger.Infow("current migration version", "version", version)

			return strategy.Status(app.DB)
		},
	}
}

func newAutoCommand(flags *bootstrap.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Derive the schema from the models",
		Long:  `Run gorm AutoMigrate on any driver. Meant for development databases.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.Init(*flags)
			if err != nil {
				return err
			}
			defer app.Close()

			manager := migration.NewManagerWithStrategy(migration.NewAutoMigrateStrategy(app.Logger), app.Logger)
			return manager.Migrate(app.DB)
		},
	}
}

func newSeedCommand(flags *bootstrap.Flags) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo fixtures from YAML",
		Long:  `Insert the locales, users, projects and translations described in a YAML fixtures file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fh, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open fixtures: %w", err)
			}
			defer fh.Close()

			fixtures, err := seed.Parse(fh)
			if err != nil {
				return err
			}

			app, err := bootstrap.Init(*flags)
			if err != nil {
				return err
			}
			defer app.Close()

			_, err = seed.NewLoader(app.DB, app.Logger).Load(cmd.Context(), fixtures, biztime.Today())
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Fixtures file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
