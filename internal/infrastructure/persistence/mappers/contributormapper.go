package mappers

import (
	"github.com/lingo-hub/lingo/internal/domain/user"
	"github.com/lingo-hub/lingo/internal/shared/mapper"
)

// ContributorRow is the projection selected by contributor queries.
type ContributorRow struct {
	ID                           uint
	Username                     string
	Email                        string
	IsSuperuser                  bool
	ProjectDeadlineNotifications bool
}

type ContributorMapper interface {
	ToEntity(row *ContributorRow) (*user.Contributor, error)
	ToEntities(rows []*ContributorRow) ([]*user.Contributor, error)
}

type ContributorMapperImpl struct{}

func NewContributorMapper() ContributorMapper {
	return &ContributorMapperImpl{}
}

func (m *ContributorMapperImpl) ToEntity(row *ContributorRow) (*user.Contributor, error) {
	if row == nil {
		return nil, nil
	}
	return user.ReconstructContributor(row.ID, row.Username, row.Email, row.IsSuperuser, row.ProjectDeadlineNotifications)
}

func (m *ContributorMapperImpl) ToEntities(rows []*ContributorRow) ([]*user.Contributor, error) {
	return mapper.MapSlicePtrWithID(rows, m.ToEntity, func(r *ContributorRow) uint { return r.ID })
}
