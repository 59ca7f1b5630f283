// Package seed loads demo data from YAML fixtures.
package seed

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lingo-hub/lingo/internal/domain/project"
	vo "github.com/lingo-hub/lingo/internal/domain/project/valueobjects"
	"github.com/lingo-hub/lingo/internal/shared/biztime"
)

type Fixtures struct {
	Locales  []LocaleFixture  `yaml:"locales"`
	Users    []UserFixture    `yaml:"users"`
	Projects []ProjectFixture `yaml:"projects"`
}

type LocaleFixture struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type UserFixture struct {
	Username              string `yaml:"username"`
	Email                 string `yaml:"email"`
	Superuser             bool   `yaml:"superuser"`
	DeadlineNotifications *bool  `yaml:"deadline_notifications"`
}

type ProjectFixture struct {
	Slug       string `yaml:"slug"`
	Name       string `yaml:"name"`
	Visibility string `yaml:"visibility"`
	Disabled   bool   `yaml:"disabled"`
	// Deadline is YYYY-MM-DD; DeadlineInDays is relative to the load date
	// and wins when both are set.
	Deadline       string                 `yaml:"deadline"`
	DeadlineInDays *int                   `yaml:"deadline_in_days"`
	Locales        []ProjectLocaleFixture `yaml:"locales"`
	Translations   []TranslationFixture   `yaml:"translations"`
}

type ProjectLocaleFixture struct {
	Code     string `yaml:"code"`
	Approved int    `yaml:"approved"`
	Total    int    `yaml:"total"`
}

type TranslationFixture struct {
	User   string `yaml:"user"`
	Locale string `yaml:"locale"`
	Count  int    `yaml:"count"`
}

// Parse decodes fixtures and rejects unknown keys.
func Parse(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixtures) validate() error {
	locales := make(map[string]bool, len(f.Locales))
	for _, l := range f.Locales {
		if _, err := project.NewLocale(l.Code, l.Name); err != nil {
			return fmt.Errorf("locale %q: %w", l.Code, err)
		}
		locales[l.Code] = true
	}

	users := make(map[string]bool, len(f.Users))
	for _, u := range f.Users {
		if u.Username == "" {
			return fmt.Errorf("user without username")
		}
		users[u.Username] = true
	}

	for _, p := range f.Projects {
		if p.Slug == "" {
			return fmt.Errorf("project without slug")
		}
		if p.Visibility != "" {
			if _, err := vo.NewVisibility(p.Visibility); err != nil {
				return fmt.Errorf("project %s: %w", p.Slug, err)
			}
		}
		if p.Deadline != "" {
			if _, err := biztime.ParseDate(p.Deadline); err != nil {
				return fmt.Errorf("project %s: %w", p.Slug, err)
			}
		}
		for _, pl := range p.Locales {
			if !locales[pl.Code] {
				return fmt.Errorf("project %s: unknown locale %q", p.Slug, pl.Code)
			}
			if pl.Approved < 0 || pl.Total < pl.Approved {
				return fmt.Errorf("project %s: locale %s has approved %d of %d", p.Slug, pl.Code, pl.Approved, pl.Total)
			}
		}
		for _, tr := range p.Translations {
			if !users[tr.User] {
				return fmt.Errorf("project %s: unknown user %q", p.Slug, tr.User)
			}
			if !locales[tr.Locale] {
				return fmt.Errorf("project %s: unknown locale %q", p.Slug, tr.Locale)
			}
		}
	}
	return nil
}

func (p ProjectFixture) deadline(today time.Time) (*time.Time, error) {
	if p.DeadlineInDays != nil {
		d := today.AddDate(0, 0, *p.DeadlineInDays)
		return &d, nil
	}
	if p.Deadline == "" {
		return nil, nil
	}
	d, err := biztime.ParseDate(p.Deadline)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
