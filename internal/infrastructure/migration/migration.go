package migration

import (
	"embed"
	"fmt"
	"io/fs"

	"gorm.io/gorm"

	"github.com/lingo-hub/lingo/internal/shared/constants"
	"github.com/lingo-hub/lingo/internal/shared/logger"
)

//go:embed scripts/*.sql
var embedded embed.FS

// Scripts returns the embedded MySQL migration scripts.
func Scripts() fs.FS {
	sub, err := fs.Sub(embedded, "scripts")
	if err != nil {
		panic(fmt.Sprintf("migration: embedded scripts missing: %v", err))
	}
	return sub
}

type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks versioned scripts for MySQL and AutoMigrate for sqlite,
// whose dialect the scripts are not written for.
func NewManager(driver string, log logger.Interface) *Manager {
	var strategy Strategy
	switch driver {
	case constants.DriverSQLite:
		strategy = NewAutoMigrateStrategy(log)
	default:
		strategy = NewGooseStrategy(Scripts(), "mysql", log)
	}
	return NewManagerWithStrategy(strategy, log)
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}
	return nil
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}
