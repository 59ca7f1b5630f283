package models

import (
	"time"

	"github.com/lingo-hub/lingo/internal/shared/constants"
)

type LocaleModel struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"size:20;not null;uniqueIndex"`
	Name      string `gorm:"size:128;not null"`
	CreatedAt time.Time
}

func (LocaleModel) TableName() string {
	return constants.TableLocales
}

// ProjectLocaleModel carries the denormalized translation stats of a locale
// within a project.
type ProjectLocaleModel struct {
	ID              uint `gorm:"primaryKey"`
	ProjectID       uint `gorm:"not null;uniqueIndex:idx_project_locale"`
	LocaleID        uint `gorm:"not null;uniqueIndex:idx_project_locale"`
	ApprovedStrings int  `gorm:"not null;default:0"`
	TotalStrings    int  `gorm:"not null;default:0"`
	UpdatedAt       time.Time

	Locale LocaleModel `gorm:"foreignKey:LocaleID"`
}

func (ProjectLocaleModel) TableName() string {
	return constants.TableProjectLocales
}

type TranslationModel struct {
	ID        uint   `gorm:"primaryKey"`
	EntityID  uint   `gorm:"not null;index"`
	LocaleID  uint   `gorm:"not null;index"`
	UserID    *uint  `gorm:"index"`
	Content   string `gorm:"type:text;not null"`
	Approved  bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

func (TranslationModel) TableName() string {
	return constants.TableTranslations
}
