package mappers

import (
	"fmt"

	"github.com/lingo-hub/lingo/internal/domain/project"
	vo "github.com/lingo-hub/lingo/internal/domain/project/valueobjects"
	"github.com/lingo-hub/lingo/internal/infrastructure/persistence/models"
	"github.com/lingo-hub/lingo/internal/shared/mapper"
)

type ProjectMapper interface {
	ToEntity(model *models.ProjectModel) (*project.Project, error)
	ToEntities(items []*models.ProjectModel) ([]*project.Project, error)
	ToProjectLocale(model *models.ProjectLocaleModel) (*project.ProjectLocale, error)
	ToProjectLocales(items []*models.ProjectLocaleModel) ([]*project.ProjectLocale, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToEntity(model *models.ProjectModel) (*project.Project, error) {
	if model == nil {
		return nil, nil
	}

	visibility, err := vo.NewVisibility(model.Visibility)
	if err != nil {
		return nil, fmt.Errorf("failed to create visibility: %w", err)
	}

	entity, err := project.ReconstructProject(
		model.ID,
		model.Slug,
		model.Name,
		model.Deadline,
		visibility,
		model.Disabled,
		model.SystemProject,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct project entity: %w", err)
	}

	return entity, nil
}

func (m *ProjectMapperImpl) ToEntities(items []*models.ProjectModel) ([]*project.Project, error) {
	return mapper.MapSlicePtrWithID(items, m.ToEntity, func(pm *models.ProjectModel) uint { return pm.ID })
}

func (m *ProjectMapperImpl) ToProjectLocale(model *models.ProjectLocaleModel) (*project.ProjectLocale, error) {
	if model == nil {
		return nil, nil
	}

	locale, err := project.ReconstructLocale(model.Locale.ID, model.Locale.Code, model.Locale.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct locale: %w", err)
	}

	return project.ReconstructProjectLocale(model.ProjectID, locale, model.ApprovedStrings, model.TotalStrings)
}

func (m *ProjectMapperImpl) ToProjectLocales(items []*models.ProjectLocaleModel) ([]*project.ProjectLocale, error) {
	return mapper.MapSlicePtrWithID(items, m.ToProjectLocale, func(pl *models.ProjectLocaleModel) uint { return pl.ID })
}
