package models

import (
	"time"

	"github.com/lingo-hub/lingo/internal/shared/constants"
)

type UserModel struct {
	ID          uint   `gorm:"primaryKey"`
	Username    string `gorm:"size:150;not null;uniqueIndex"`
	Email       string `gorm:"size:254"`
	IsSuperuser bool   `gorm:"not null;default:false"`
	IsActive    bool   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Profile *UserProfileModel `gorm:"foreignKey:UserID"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

type UserProfileModel struct {
	ID                           uint `gorm:"primaryKey"`
	UserID                       uint `gorm:"not null;uniqueIndex"`
	ProjectDeadlineNotifications bool `gorm:"not null"`
	UpdatedAt                    time.Time
}

func (UserProfileModel) TableName() string {
	return constants.TableUserProfiles
}
