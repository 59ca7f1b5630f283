package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingo-hub/lingo/internal/domain/notification"
	"github.com/lingo-hub/lingo/internal/shared/db"
)

func TestNotificationRepository_CreateAndList(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewNotificationRepository(gdb)
	ctx := context.Background()

	t.Run("create assigns id and keeps payload", func(t *testing.T) {
		n, err := notification.NewNotification(3, "project", 1, "due in 7 days", "**Firefox**", map[string]any{
			"project_slug": "firefox",
			"days_left":    7,
		})
		require.NoError(t, err)

		require.NoError(t, repo.Create(ctx, n))
		assert.NotZero(t, n.ID())

		stored, err := repo.ListByRecipient(ctx, 3)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "due in 7 days", stored[0].Verb())
		assert.Equal(t, "project", stored[0].ActorType())
		assert.True(t, stored[0].IsUnread())
		assert.Equal(t, "firefox", stored[0].Data()["project_slug"])
		assert.EqualValues(t, 7, stored[0].Data()["days_left"])
	})

	t.Run("same notification twice is stored twice", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			n, err := notification.NewNotification(4, "project", 1, "due in 2 days", "", nil)
			require.NoError(t, err)
			require.NoError(t, repo.Create(ctx, n))
		}

		stored, err := repo.ListByRecipient(ctx, 4)
		require.NoError(t, err)
		assert.Len(t, stored, 2)
	})

	t.Run("rolled back transaction leaves nothing", func(t *testing.T) {
		tm := db.NewTransactionManager(gdb)
		err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			n, err := notification.NewNotification(5, "project", 1, "due in 2 days", "", nil)
			require.NoError(t, err)
			require.NoError(t, repo.Create(txCtx, n))
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		stored, err := repo.ListByRecipient(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})
}
