package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/lingo-hub/lingo/internal/shared/constants"
)

type NotificationModel struct {
	ID          uint           `gorm:"primaryKey"`
	RecipientID uint           `gorm:"not null;index:idx_recipient_unread"`
	ActorType   string         `gorm:"size:50;not null"`
	ActorID     uint           `gorm:"not null"`
	Verb        string         `gorm:"size:255;not null"`
	Description string         `gorm:"type:text"`
	Data        datatypes.JSON `gorm:"type:json"`
	Unread      bool           `gorm:"not null;index:idx_recipient_unread"`
	CreatedAt   time.Time      `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
