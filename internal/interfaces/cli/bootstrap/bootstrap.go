// Package bootstrap wires configuration, logging and storage for the CLI
// commands.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/lingo-hub/lingo/internal/application/deadline/usecases"
	notificationApp "github.com/lingo-hub/lingo/internal/application/notification"
	"github.com/lingo-hub/lingo/internal/infrastructure/cache"
	"github.com/lingo-hub/lingo/internal/infrastructure/config"
	"github.com/lingo-hub/lingo/internal/infrastructure/database"
	"github.com/lingo-hub/lingo/internal/infrastructure/email"
	"github.com/lingo-hub/lingo/internal/infrastructure/metrics"
	"github.com/lingo-hub/lingo/internal/infrastructure/repository"
	"github.com/lingo-hub/lingo/internal/shared/biztime"
	"github.com/lingo-hub/lingo/internal/shared/logger"
	"github.com/lingo-hub/lingo/internal/shared/services/markdown"
)

// Flags are the options every command accepts.
type Flags struct {
	Env        string
	ConfigPath string
}

func (f *Flags) Register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&f.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&f.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
}

// App holds the initialized process-wide dependencies of a command.
type App struct {
	Config *config.Config
	Logger logger.Interface
	DB     *gorm.DB

	closers []func() error
}

// Init loads configuration and opens the database. Callers must Close.
func Init(flags Flags) (*App, error) {
	cfg, err := config.Load(flags.Env, flags.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.IsDebug()); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &App{
		Config: cfg,
		Logger: logger.NewLogger(),
		DB:     database.Get(),
	}
	app.closers = append(app.closers, database.Close)
	return app, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.Logger.Warnw("failed to release resource", "error", err)
		}
	}
	a.closers = nil
}

// NewDeadlineNotifier assembles the notifier with the channels, guard and
// metrics enabled in configuration.
func (a *App) NewDeadlineNotifier(ctx context.Context) (*usecases.SendDeadlineNotificationsUseCase, error) {
	cfg := a.Config
	log := a.Logger.Named("deadline")

	var channels []notificationApp.Channel
	if cfg.Email.Enabled {
		channels = append(channels, email.NewSMTPChannel(cfg.Email, markdown.NewRenderer(), log.Named("email")))
	}

	dispatcher := notificationApp.NewDispatcher(
		repository.NewNotificationRepository(a.DB),
		cfg.Server.BaseURL,
		log,
		channels...,
	)

	opts := []usecases.Option{
		usecases.WithReminderDays(cfg.Notifier.ReminderDays),
		usecases.WithRunRecorder(metrics.NewDeadlineRecorder(cfg.Metrics.TextfilePath, log)),
	}

	if cfg.Notifier.Dedup.Enabled {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		opts = append(opts, usecases.WithSendGuard(cache.NewDeadlineNoticeGuard(client, cfg.Notifier.Dedup.TTL())))
		a.Logger.Infow("deadline notice dedup enabled",
			"redis", cfg.Redis.GetAddr(),
			"ttl", cfg.Notifier.Dedup.TTL(),
		)
	}

	return usecases.NewSendDeadlineNotificationsUseCase(
		repository.NewDeadlineRepository(a.DB),
		dispatcher,
		log,
		opts...,
	), nil
}
