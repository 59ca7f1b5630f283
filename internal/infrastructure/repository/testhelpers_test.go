package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lingo-hub/lingo/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection would otherwise get its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))

	return db
}

type fixture struct {
	t  *testing.T
	db *gorm.DB
}

func newFixture(t *testing.T, db *gorm.DB) *fixture {
	return &fixture{t: t, db: db}
}

func (f *fixture) locale(code string) *models.LocaleModel {
	m := &models.LocaleModel{Code: code, Name: code}
	require.NoError(f.t, f.db.Create(m).Error)
	return m
}

func (f *fixture) project(slug, visibility string, deadline *time.Time) *models.ProjectModel {
	m := &models.ProjectModel{Slug: slug, Name: slug, Visibility: visibility, Deadline: deadline}
	require.NoError(f.t, f.db.Create(m).Error)
	return m
}

func (f *fixture) resource(p *models.ProjectModel) *models.ResourceModel {
	m := &models.ResourceModel{ProjectID: p.ID, Path: p.Slug + "/main.ftl", Format: "ftl"}
	require.NoError(f.t, f.db.Create(m).Error)
	return m
}

func (f *fixture) entity(r *models.ResourceModel, key string) *models.EntityModel {
	m := &models.EntityModel{ResourceID: r.ID, Key: key, Content: "Source " + key}
	require.NoError(f.t, f.db.Create(m).Error)
	return m
}

func (f *fixture) stats(p *models.ProjectModel, l *models.LocaleModel, approved, total int) {
	m := &models.ProjectLocaleModel{ProjectID: p.ID, LocaleID: l.ID, ApprovedStrings: approved, TotalStrings: total}
	require.NoError(f.t, f.db.Create(m).Error)
}

// user creates a user; a nil optedIn means no profile row at all.
func (f *fixture) user(username string, superuser bool, optedIn *bool) *models.UserModel {
	m := &models.UserModel{Username: username, Email: username + "@example.com", IsSuperuser: superuser, IsActive: true}
	require.NoError(f.t, f.db.Create(m).Error)
	if optedIn != nil {
		profile := &models.UserProfileModel{UserID: m.ID, ProjectDeadlineNotifications: *optedIn}
		require.NoError(f.t, f.db.Create(profile).Error)
	}
	return m
}

func (f *fixture) translate(u *models.UserModel, e *models.EntityModel, l *models.LocaleModel) {
	uid := u.ID
	m := &models.TranslationModel{EntityID: e.ID, LocaleID: l.ID, UserID: &uid, Content: "translated"}
	require.NoError(f.t, f.db.Create(m).Error)
}

func boolPtr(b bool) *bool {
	return &b
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
