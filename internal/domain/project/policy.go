package project

import "github.com/lingo-hub/lingo/internal/domain/user"

// CanReceiveDeadlineNotification decides whether a contributor may be told
// about a project's deadline: the project is public or the contributor is a
// superuser. Opt-in and locale progress are checked by the caller's query.
func CanReceiveDeadlineNotification(p *Project, c *user.Contributor) bool {
	if p == nil || c == nil {
		return false
	}
	return p.IsPublic() || c.IsSuperuser()
}
