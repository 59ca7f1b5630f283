package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lingo-hub/lingo/internal/domain/project"
	"github.com/lingo-hub/lingo/internal/domain/user"
	"github.com/lingo-hub/lingo/internal/infrastructure/persistence/mappers"
	"github.com/lingo-hub/lingo/internal/infrastructure/persistence/models"
	"github.com/lingo-hub/lingo/internal/shared/constants"
	"github.com/lingo-hub/lingo/internal/shared/db"
	"github.com/lingo-hub/lingo/internal/shared/mapper"
)

// DeadlineRepositoryImpl answers the three questions the deadline notifier
// asks about projects, locales and contributors.
type DeadlineRepositoryImpl struct {
	db                *gorm.DB
	projectMapper     mappers.ProjectMapper
	contributorMapper mappers.ContributorMapper
}

func NewDeadlineRepository(gdb *gorm.DB) *DeadlineRepositoryImpl {
	return &DeadlineRepositoryImpl{
		db:                gdb,
		projectMapper:     mappers.NewProjectMapper(),
		contributorMapper: mappers.NewContributorMapper(),
	}
}

// ListAvailableProjects returns projects that are enabled, not system
// projects, not deleted and have at least one resource.
func (r *DeadlineRepositoryImpl) ListAvailableProjects(ctx context.Context) ([]*project.Project, error) {
	var rows []*models.ProjectModel

	err := db.GetTxFromContext(ctx, r.db).
		Table(constants.TableProjects).
		Scopes(db.NotDeleted()).
		Where("disabled = ? AND system_project = ?", false, false).
		Where("EXISTS (SELECT 1 FROM " + constants.TableResources + " WHERE " + constants.TableResources + ".project_id = " + constants.TableProjects + ".id)").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list available projects: %w", err)
	}

	projects, err := r.projectMapper.ToEntities(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to map project models to entities: %w", err)
	}

	return projects, nil
}

// ListIncompleteLocales returns locales of the project with fewer approved
// strings than total strings.
func (r *DeadlineRepositoryImpl) ListIncompleteLocales(ctx context.Context, p *project.Project) ([]*project.Locale, error) {
	var rows []*models.ProjectLocaleModel

	err := db.GetTxFromContext(ctx, r.db).
		Preload("Locale").
		Where("project_id = ? AND approved_strings < total_strings", p.ID()).
		Order("locale_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list incomplete locales for project %s: %w", p.Slug(), err)
	}

	projectLocales, err := r.projectMapper.ToProjectLocales(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to map project locale models: %w", err)
	}

	locales := make([]*project.Locale, 0, len(projectLocales))
	for _, pl := range projectLocales {
		if pl.IsIncomplete() {
			locales = append(locales, pl.Locale())
		}
	}

	return locales, nil
}

// ListEligibleContributors returns distinct users who translated an entity of
// the project into one of the given locales and opted into deadline
// notifications. An empty locale set still runs the query and matches nobody.
func (r *DeadlineRepositoryImpl) ListEligibleContributors(ctx context.Context, p *project.Project, locales []*project.Locale) ([]*user.Contributor, error) {
	localeIDs := mapper.Pluck(locales, (*project.Locale).ID)

	var rows []*mappers.ContributorRow

	err := db.GetTxFromContext(ctx, r.db).
		Table(constants.TableUsers).
		Select("DISTINCT users.id, users.username, users.email, users.is_superuser, user_profiles.project_deadline_notifications").
		Joins("JOIN translations ON translations.user_id = users.id").
		Joins("JOIN entities ON entities.id = translations.entity_id").
		Joins("JOIN resources ON resources.id = entities.resource_id").
		Joins("JOIN user_profiles ON user_profiles.user_id = users.id").
		Where("resources.project_id = ?", p.ID()).
		Where("translations.locale_id IN ?", localeIDs).
		Where("user_profiles.project_deadline_notifications = ?", true).
		Order("users.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible contributors for project %s: %w", p.Slug(), err)
	}

	contributors, err := r.contributorMapper.ToEntities(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to map contributor rows: %w", err)
	}

	return contributors, nil
}
