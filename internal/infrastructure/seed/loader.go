package seed

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lingo-hub/lingo/internal/domain/project"
	vo "github.com/lingo-hub/lingo/internal/domain/project/valueobjects"
	"github.com/lingo-hub/lingo/internal/infrastructure/persistence/models"
	"github.com/lingo-hub/lingo/internal/shared/db"
	"github.com/lingo-hub/lingo/internal/shared/logger"
)

// Summary counts the rows a load created.
type Summary struct {
	Locales      int
	Users        int
	Projects     int
	Translations int
}

type Loader struct {
	db     *gorm.DB
	tm     *db.TransactionManager
	logger logger.Interface
}

func NewLoader(gdb *gorm.DB, log logger.Interface) *Loader {
	return &Loader{
		db:     gdb,
		tm:     db.NewTransactionManager(gdb),
		logger: log,
	}
}

// Load inserts the fixtures in one transaction; relative deadlines are
// resolved against today.
func (l *Loader) Load(ctx context.Context, f *Fixtures, today time.Time) (*Summary, error) {
	summary := &Summary{}

	err := l.tm.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, l.db)

		localeIDs := make(map[string]uint, len(f.Locales))
		for _, lf := range f.Locales {
			locale, err := project.NewLocale(lf.Code, lf.Name)
			if err != nil {
				return err
			}
			m := &models.LocaleModel{Code: locale.Code(), Name: locale.Name()}
			if err := tx.Create(m).Error; err != nil {
				return fmt.Errorf("failed to create locale %s: %w", lf.Code, err)
			}
			localeIDs[lf.Code] = m.ID
			summary.Locales++
		}

		userIDs := make(map[string]uint, len(f.Users))
		for _, uf := range f.Users {
			m := &models.UserModel{
				Username:    uf.Username,
				Email:       uf.Email,
				IsSuperuser: uf.Superuser,
				IsActive:    true,
			}
			if err := tx.Create(m).Error; err != nil {
				return fmt.Errorf("failed to create user %s: %w", uf.Username, err)
			}
			if uf.DeadlineNotifications != nil {
				profile := &models.UserProfileModel{UserID: m.ID, ProjectDeadlineNotifications: *uf.DeadlineNotifications}
				if err := tx.Create(profile).Error; err != nil {
					return fmt.Errorf("failed to create profile for %s: %w", uf.Username, err)
				}
			}
			userIDs[uf.Username] = m.ID
			summary.Users++
		}

		for _, pf := range f.Projects {
			n, err := l.loadProject(tx, pf, today, localeIDs, userIDs)
			if err != nil {
				return err
			}
			summary.Projects++
			summary.Translations += n
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}

	l.logger.Infow("fixtures loaded",
		"locales", summary.Locales,
		"users", summary.Users,
		"projects", summary.Projects,
		"translations", summary.Translations,
	)
	return summary, nil
}

func (l *Loader) loadProject(tx *gorm.DB, pf ProjectFixture, today time.Time, localeIDs, userIDs map[string]uint) (int, error) {
	deadline, err := pf.deadline(today)
	if err != nil {
		return 0, fmt.Errorf("project %s: %w", pf.Slug, err)
	}

	visibility := vo.VisibilityPrivate
	if pf.Visibility != "" {
		visibility = vo.Visibility(pf.Visibility)
	}

	p := &models.ProjectModel{
		Slug:       pf.Slug,
		Name:       pf.Name,
		Deadline:   deadline,
		Visibility: visibility.String(),
		Disabled:   pf.Disabled,
	}
	if p.Name == "" {
		p.Name = pf.Slug
	}
	if err := tx.Create(p).Error; err != nil {
		return 0, fmt.Errorf("failed to create project %s: %w", pf.Slug, err)
	}

	resource := &models.ResourceModel{ProjectID: p.ID, Path: "main.ftl", Format: "ftl"}
	if err := tx.Create(resource).Error; err != nil {
		return 0, fmt.Errorf("failed to create resource for %s: %w", pf.Slug, err)
	}

	for _, pl := range pf.Locales {
		stats := &models.ProjectLocaleModel{
			ProjectID:       p.ID,
			LocaleID:        localeIDs[pl.Code],
			ApprovedStrings: pl.Approved,
			TotalStrings:    pl.Total,
		}
		if err := tx.Create(stats).Error; err != nil {
			return 0, fmt.Errorf("failed to create stats for %s/%s: %w", pf.Slug, pl.Code, err)
		}
	}

	// one entity per translated string, keyed by position
	var entities []*models.EntityModel
	entity := func(i int) (*models.EntityModel, error) {
		for len(entities) <= i {
			e := &models.EntityModel{
				ResourceID: resource.ID,
				Key:        fmt.Sprintf("string-%d", len(entities)+1),
				Content:    fmt.Sprintf("Source string %d", len(entities)+1),
			}
			if err := tx.Create(e).Error; err != nil {
				return nil, fmt.Errorf("failed to create entity for %s: %w", pf.Slug, err)
			}
			entities = append(entities, e)
		}
		return entities[i], nil
	}

	count := 0
	for _, tf := range pf.Translations {
		uid := userIDs[tf.User]
		n := tf.Count
		if n <= 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			e, err := entity(i)
			if err != nil {
				return 0, err
			}
			t := &models.TranslationModel{
				EntityID: e.ID,
				LocaleID: localeIDs[tf.Locale],
				UserID:   &uid,
				Content:  fmt.Sprintf("%s translation %d", tf.Locale, i+1),
			}
			if err := tx.Create(t).Error; err != nil {
				return 0, fmt.Errorf("failed to create translation for %s: %w", pf.Slug, err)
			}
			count++
		}
	}

	return count, nil
}
