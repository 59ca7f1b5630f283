package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/lingo-hub/lingo/internal/domain/project/valueobjects"
	"github.com/lingo-hub/lingo/internal/domain/user"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestProject(t *testing.T, deadline *time.Time, visibility vo.Visibility) *Project {
	p, err := ReconstructProject(1, "firefox", "Firefox", deadline, visibility, false, false)
	require.NoError(t, err)
	return p
}

func TestReconstructProject_Validation(t *testing.T) {
	tests := []struct {
		name       string
		id         uint
		slug       string
		visibility vo.Visibility
		wantErr    string
	}{
		{"zero id", 0, "firefox", vo.VisibilityPublic, "project ID cannot be zero"},
		{"blank slug", 1, "  ", vo.VisibilityPublic, "project slug is required"},
		{"unknown visibility", 1, "firefox", vo.Visibility("hidden"), "invalid project visibility"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ReconstructProject(tt.id, tt.slug, "", nil, tt.visibility, false, false)
			assert.Nil(t, p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProject_DaysUntilDeadline(t *testing.T) {
	today := date(2024, 3, 10)

	t.Run("no deadline", func(t *testing.T) {
		p := newTestProject(t, nil, vo.VisibilityPublic)
		_, ok := p.DaysUntilDeadline(today)
		assert.False(t, ok)
	})

	t.Run("deadline with clock component", func(t *testing.T) {
		d := time.Date(2024, 3, 17, 22, 15, 0, 0, time.UTC)
		p := newTestProject(t, &d, vo.VisibilityPublic)

		days, ok := p.DaysUntilDeadline(today)
		require.True(t, ok)
		assert.Equal(t, 7, days)

		stored, _ := p.Deadline()
		assert.Equal(t, date(2024, 3, 17), stored)
	})

	t.Run("past deadline is negative", func(t *testing.T) {
		d := date(2024, 3, 1)
		p := newTestProject(t, &d, vo.VisibilityPublic)

		days, ok := p.DaysUntilDeadline(today)
		require.True(t, ok)
		assert.Equal(t, -9, days)
	})
}

func TestProject_NameFallsBackToSlug(t *testing.T) {
	p, err := ReconstructProject(3, "thunderbird", "", nil, vo.VisibilityPrivate, false, false)
	require.NoError(t, err)
	assert.Equal(t, "thunderbird", p.Name())
	assert.Equal(t, "thunderbird", p.String())
	assert.False(t, p.IsPublic())
}

func TestCanReceiveDeadlineNotification(t *testing.T) {
	regular, err := user.ReconstructContributor(10, "alice", "alice@example.com", false, true)
	require.NoError(t, err)
	superuser, err := user.ReconstructContributor(11, "root", "root@example.com", true, true)
	require.NoError(t, err)

	public := newTestProject(t, nil, vo.VisibilityPublic)
	private := newTestProject(t, nil, vo.VisibilityPrivate)

	tests := []struct {
		name        string
		project     *Project
		contributor *user.Contributor
		want        bool
	}{
		{"public project, regular user", public, regular, true},
		{"public project, superuser", public, superuser, true},
		{"private project, regular user", private, regular, false},
		{"private project, superuser", private, superuser, true},
		{"nil contributor", public, nil, false},
		{"nil project", nil, superuser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanReceiveDeadlineNotification(tt.project, tt.contributor))
		})
	}
}
