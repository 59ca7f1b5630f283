package notification

import (
	"fmt"
	"strings"
	"time"
)

const maxVerbLength = 255

// Notification is an in-app notification addressed to one user. The actor
// identifies what the notification is about (e.g. a project).
type Notification struct {
	id          uint
	recipientID uint
	actorType   string
	actorID     uint
	verb        string
	description string
	data        map[string]any
	unread      bool
	createdAt   time.Time
}

func NewNotification(
	recipientID uint,
	actorType string,
	actorID uint,
	verb string,
	description string,
	data map[string]any,
) (*Notification, error) {
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if strings.TrimSpace(actorType) == "" || actorID == 0 {
		return nil, fmt.Errorf("actor is required")
	}
	if strings.TrimSpace(verb) == "" {
		return nil, fmt.Errorf("verb is required")
	}
	if len(verb) > maxVerbLength {
		return nil, fmt.Errorf("verb exceeds maximum length of %d characters", maxVerbLength)
	}

	return &Notification{
		recipientID: recipientID,
		actorType:   actorType,
		actorID:     actorID,
		verb:        verb,
		description: description,
		data:        data,
		unread:      true,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructNotification(
	id uint,
	recipientID uint,
	actorType string,
	actorID uint,
	verb string,
	description string,
	data map[string]any,
	unread bool,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}

	return &Notification{
		id:          id,
		recipientID: recipientID,
		actorType:   actorType,
		actorID:     actorID,
		verb:        verb,
		description: description,
		data:        data,
		unread:      unread,
		createdAt:   createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

// SetID is called by the repository after insert.
func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Notification) RecipientID() uint {
	return n.recipientID
}

func (n *Notification) ActorType() string {
	return n.actorType
}

func (n *Notification) ActorID() uint {
	return n.actorID
}

func (n *Notification) Verb() string {
	return n.verb
}

// Description is markdown.
func (n *Notification) Description() string {
	return n.description
}

func (n *Notification) Data() map[string]any {
	return n.data
}

func (n *Notification) IsUnread() bool {
	return n.unread
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}
