package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	n, err := NewNotification(5, "project", 2, "due in 7 days", "**Firefox** is due soon", map[string]any{"days_left": 7})
	require.NoError(t, err)

	assert.Zero(t, n.ID())
	assert.Equal(t, uint(5), n.RecipientID())
	assert.Equal(t, "project", n.ActorType())
	assert.Equal(t, uint(2), n.ActorID())
	assert.Equal(t, "due in 7 days", n.Verb())
	assert.True(t, n.IsUnread())
	assert.False(t, n.CreatedAt().IsZero())
}

func TestNewNotification_Validation(t *testing.T) {
	tests := []struct {
		name        string
		recipientID uint
		actorType   string
		actorID     uint
		verb        string
		wantErr     string
	}{
		{"missing recipient", 0, "project", 1, "due in 2 days", "recipient ID is required"},
		{"missing actor type", 1, "", 1, "due in 2 days", "actor is required"},
		{"missing actor id", 1, "project", 0, "due in 2 days", "actor is required"},
		{"blank verb", 1, "project", 1, " ", "verb is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewNotification(tt.recipientID, tt.actorType, tt.actorID, tt.verb, "", nil)
			assert.Nil(t, n)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNotification_SetID(t *testing.T) {
	n, err := NewNotification(5, "project", 2, "due in 2 days", "", nil)
	require.NoError(t, err)

	assert.Error(t, n.SetID(0))
	require.NoError(t, n.SetID(9))
	assert.Equal(t, uint(9), n.ID())
	assert.Error(t, n.SetID(10))
}
