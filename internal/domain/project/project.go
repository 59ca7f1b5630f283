package project

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/lingo-hub/lingo/internal/domain/project/valueobjects"
	"github.com/lingo-hub/lingo/internal/shared/biztime"
)

// Project is a localization project as read by notification jobs.
type Project struct {
	id            uint
	slug          string
	name          string
	deadline      *time.Time
	visibility    vo.Visibility
	disabled      bool
	systemProject bool
}

// ReconstructProject rebuilds a project from persistence. The deadline, when
// present, is reduced to its calendar date.
func ReconstructProject(
	id uint,
	slug string,
	name string,
	deadline *time.Time,
	visibility vo.Visibility,
	disabled bool,
	systemProject bool,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("project slug is required")
	}
	if !visibility.IsValid() {
		return nil, fmt.Errorf("invalid project visibility: %q", visibility)
	}

	var d *time.Time
	if deadline != nil {
		date := biztime.DateOf(*deadline)
		d = &date
	}

	return &Project{
		id:            id,
		slug:          slug,
		name:          name,
		deadline:      d,
		visibility:    visibility,
		disabled:      disabled,
		systemProject: systemProject,
	}, nil
}

func (p *Project) ID() uint {
	return p.id
}

func (p *Project) Slug() string {
	return p.slug
}

// Name falls back to the slug for projects without a display name.
func (p *Project) Name() string {
	if p.name == "" {
		return p.slug
	}
	return p.name
}

func (p *Project) Visibility() vo.Visibility {
	return p.visibility
}

func (p *Project) IsPublic() bool {
	return p.visibility.IsPublic()
}

func (p *Project) IsDisabled() bool {
	return p.disabled
}

func (p *Project) IsSystemProject() bool {
	return p.systemProject
}

// Deadline returns the deadline date and whether one is set.
func (p *Project) Deadline() (time.Time, bool) {
	if p.deadline == nil {
		return time.Time{}, false
	}
	return *p.deadline, true
}

// DaysUntilDeadline returns deadline minus today in calendar days. ok is
// false when the project has no deadline.
func (p *Project) DaysUntilDeadline(today time.Time) (days int, ok bool) {
	if p.deadline == nil {
		return 0, false
	}
	return biztime.DaysBetween(today, *p.deadline), true
}

func (p *Project) String() string {
	return p.Name()
}
