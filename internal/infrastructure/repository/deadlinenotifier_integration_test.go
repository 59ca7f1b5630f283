package repository

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingo-hub/lingo/internal/application/deadline/usecases"
	notificationApp "github.com/lingo-hub/lingo/internal/application/notification"
	"github.com/lingo-hub/lingo/internal/infrastructure/persistence/models"
	"github.com/lingo-hub/lingo/internal/shared/logger"
)

type received struct {
	Username string
	Verb     string
	Project  uint
}

func listReceived(t *testing.T, f *fixture) []received {
	var rows []received
	err := f.db.Table("notifications").
		Select("users.username AS username, notifications.verb AS verb, notifications.actor_id AS project").
		Joins("JOIN users ON users.id = notifications.recipient_id").
		Order("notifications.id").
		Scan(&rows).Error
	require.NoError(t, err)
	return rows
}

func usernamesOf(rows []received) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Username)
	}
	sort.Strings(out)
	return out
}

// seedDeadlineScenario builds:
//
//	firefox (public, today+7): de incomplete, fr complete
//	secret  (private, today+2): de incomplete
//	later   (public, today+5): de incomplete
func seedDeadlineScenario(t *testing.T, f *fixture, today time.Time) (*models.ProjectModel, *models.ProjectModel) {
	day := func(n int) *time.Time {
		d := time.Date(today.Year(), today.Month(), today.Day()+n, 0, 0, 0, 0, time.UTC)
		return &d
	}

	de := f.locale("de")
	fr := f.locale("fr")

	firefox := f.project("firefox", "public", day(7))
	secret := f.project("secret", "private", day(2))
	later := f.project("later", "public", day(5))

	alice := f.user("alice", false, boolPtr(true))
	bob := f.user("bob", false, boolPtr(true))
	carol := f.user("carol", false, boolPtr(false))
	root := f.user("root", true, boolPtr(true))

	for _, p := range []*models.ProjectModel{firefox, secret, later} {
		r := f.resource(p)
		e := f.entity(r, "greeting")
		e2 := f.entity(r, "farewell")
		f.stats(p, de, 1, 2)

		f.translate(alice, e, de)
		f.translate(alice, e2, de)
		f.translate(carol, e, de)
		f.translate(root, e, de)
		if p == firefox {
			f.stats(p, fr, 2, 2)
			f.translate(bob, e, fr)
		}
	}

	return firefox, secret
}

func newNotifier(f *fixture) *usecases.SendDeadlineNotificationsUseCase {
	dispatcher := notificationApp.NewDispatcher(NewNotificationRepository(f.db), "https://lingo.test", logger.Discard())
	return usecases.NewSendDeadlineNotificationsUseCase(NewDeadlineRepository(f.db), dispatcher, logger.Discard())
}

func TestDeadlineNotifier_EndToEnd(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	today := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	firefox, secret := seedDeadlineScenario(t, f, today)

	result, err := newNotifier(f).Execute(context.Background(), today)
	require.NoError(t, err)

	rows := listReceived(t, f)

	var firefoxRows, secretRows []received
	for _, r := range rows {
		switch r.Project {
		case firefox.ID:
			firefoxRows = append(firefoxRows, r)
			assert.Equal(t, "due in 7 days", r.Verb)
		case secret.ID:
			secretRows = append(secretRows, r)
			assert.Equal(t, "due in 2 days", r.Verb)
		default:
			t.Errorf("unexpected notification for project %d", r.Project)
		}
	}

	// alice once despite two translations; bob only translated a complete
	// locale; carol opted out
	assert.Equal(t, []string{"alice", "root"}, usernamesOf(firefoxRows))
	// private project: superusers only
	assert.Equal(t, []string{"root"}, usernamesOf(secretRows))

	assert.Equal(t, 3, result.ProjectsScanned)
	assert.Equal(t, 2, result.ProjectsMatched)
	assert.Equal(t, 3, result.NotificationsSent)
	assert.Equal(t, 1, result.SkippedByPolicy)
}

func TestDeadlineNotifier_RerunSameDaySendsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	today := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	seedDeadlineScenario(t, f, today)

	notifier := newNotifier(f)
	_, err := notifier.Execute(context.Background(), today)
	require.NoError(t, err)
	_, err = notifier.Execute(context.Background(), today)
	require.NoError(t, err)

	assert.Equal(t, []string{"alice", "alice", "root", "root", "root", "root"}, usernamesOf(listReceived(t, f)))
}
