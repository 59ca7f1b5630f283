package user

import (
	"fmt"
	"strings"
)

// Contributor is a user who has submitted at least one translation, as seen
// by notification jobs. It carries only what delivery and policy checks need.
type Contributor struct {
	id                    uint
	username              string
	email                 string
	superuser             bool
	deadlineNotifications bool
}

// ReconstructContributor rebuilds a contributor from persistence.
func ReconstructContributor(id uint, username, email string, superuser, deadlineNotifications bool) (*Contributor, error) {
	if id == 0 {
		return nil, fmt.Errorf("contributor ID cannot be zero")
	}
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username is required")
	}

	return &Contributor{
		id:                    id,
		username:              username,
		email:                 email,
		superuser:             superuser,
		deadlineNotifications: deadlineNotifications,
	}, nil
}

func (c *Contributor) ID() uint {
	return c.id
}

func (c *Contributor) Username() string {
	return c.username
}

// Email may be empty; delivery channels that need it skip the contributor.
func (c *Contributor) Email() string {
	return c.email
}

// IsSuperuser reports the privileged flag that bypasses project visibility.
func (c *Contributor) IsSuperuser() bool {
	return c.superuser
}

// WantsDeadlineNotifications is the per-user opt-in preference.
func (c *Contributor) WantsDeadlineNotifications() bool {
	return c.deadlineNotifications
}

// DisplayName returns a name suitable for greetings.
func (c *Contributor) DisplayName() string {
	return c.username
}
