package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/lingo-hub/lingo/internal/shared/constants"
)

type ProjectModel struct {
	ID            uint       `gorm:"primaryKey"`
	Slug          string     `gorm:"size:255;not null;uniqueIndex"`
	Name          string     `gorm:"size:128;not null"`
	Deadline      *time.Time `gorm:"type:date"`
	Visibility    string     `gorm:"size:20;not null;default:'private'"`
	Disabled      bool       `gorm:"not null;default:false;index"`
	SystemProject bool       `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (ProjectModel) TableName() string {
	return constants.TableProjects
}

type ResourceModel struct {
	ID        uint   `gorm:"primaryKey"`
	ProjectID uint   `gorm:"not null;index"`
	Path      string `gorm:"size:255;not null"`
	Format    string `gorm:"size:20"`
	CreatedAt time.Time
}

func (ResourceModel) TableName() string {
	return constants.TableResources
}

type EntityModel struct {
	ID         uint   `gorm:"primaryKey"`
	ResourceID uint   `gorm:"not null;index"`
	Key        string `gorm:"size:255"`
	Content    string `gorm:"type:text;not null"`
	Obsolete   bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

func (EntityModel) TableName() string {
	return constants.TableEntities
}
