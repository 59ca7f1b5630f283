package seed

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lingo-hub/lingo/internal/infrastructure/persistence/models"
	"github.com/lingo-hub/lingo/internal/infrastructure/repository"
	"github.com/lingo-hub/lingo/internal/shared/logger"
)

const demoFixtures = `
locales:
  - code: de
    name: German
  - code: fr
    name: French
users:
  - username: alice
    email: alice@example.com
    deadline_notifications: true
  - username: root
    superuser: true
    deadline_notifications: true
  - username: quiet
projects:
  - slug: firefox
    name: Firefox
    visibility: public
    deadline_in_days: 7
    locales:
      - {code: de, approved: 1, total: 3}
      - {code: fr, approved: 3, total: 3}
    translations:
      - {user: alice, locale: de, count: 2}
      - {user: quiet, locale: de}
  - slug: archive
    deadline: 2020-01-01
`

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(demoFixtures))
	require.NoError(t, err)

	assert.Len(t, f.Locales, 2)
	assert.Len(t, f.Users, 3)
	require.Len(t, f.Projects, 2)
	require.NotNil(t, f.Projects[0].DeadlineInDays)
	assert.Equal(t, 7, *f.Projects[0].DeadlineInDays)
	assert.Nil(t, f.Users[2].DeadlineNotifications)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown key", "locales:\n  - code: de\n    colour: red\n", "colour"},
		{"bad locale", "locales:\n  - code: \"!!\"\n", "invalid locale code"},
		{"bad visibility", "projects:\n  - slug: x\n    visibility: secret\n", "invalid project visibility"},
		{"bad date", "projects:\n  - slug: x\n    deadline: 17/03/2024\n", "invalid date format"},
		{"unknown locale", "projects:\n  - slug: x\n    locales:\n      - {code: de, total: 1}\n", "unknown locale"},
		{"unknown user", "locales:\n  - code: de\nprojects:\n  - slug: x\n    translations:\n      - {user: bob, locale: de}\n", "unknown user"},
		{"approved above total", "locales:\n  - code: de\nprojects:\n  - slug: x\n    locales:\n      - {code: de, approved: 5, total: 1}\n", "approved 5 of 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoader_Load(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	f, err := Parse(strings.NewReader(demoFixtures))
	require.NoError(t, err)

	summary, err := NewLoader(db, logger.Discard()).Load(ctx, f, today)
	require.NoError(t, err)
	assert.Equal(t, &Summary{Locales: 2, Users: 3, Projects: 2, Translations: 3}, summary)

	repo := repository.NewDeadlineRepository(db)
	projects, err := repo.ListAvailableProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	firefox := projects[0]
	assert.Equal(t, "firefox", firefox.Slug())
	days, ok := firefox.DaysUntilDeadline(today)
	require.True(t, ok)
	assert.Equal(t, 7, days)
	assert.True(t, firefox.IsPublic())

	locales, err := repo.ListIncompleteLocales(ctx, firefox)
	require.NoError(t, err)
	require.Len(t, locales, 1)
	assert.Equal(t, "de", locales[0].Code())

	contributors, err := repo.ListEligibleContributors(ctx, firefox, locales)
	require.NoError(t, err)
	require.Len(t, contributors, 1)
	assert.Equal(t, "alice", contributors[0].Username())

	assert.False(t, projects[1].IsPublic(), "visibility defaults to private")
}

func TestLoader_RollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	f := &Fixtures{
		Locales: []LocaleFixture{{Code: "de"}},
		Users:   []UserFixture{{Username: "alice"}, {Username: "alice"}},
	}

	_, err := NewLoader(db, logger.Discard()).Load(ctx, f, time.Now())
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.LocaleModel{}).Count(&count).Error)
	assert.Zero(t, count)
}
