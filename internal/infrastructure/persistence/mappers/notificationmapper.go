package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/lingo-hub/lingo/internal/domain/notification"
	"github.com/lingo-hub/lingo/internal/infrastructure/persistence/models"
	"github.com/lingo-hub/lingo/internal/shared/mapper"
)

type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) (*models.NotificationModel, error)
	ToEntities(items []*models.NotificationModel) ([]*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	var data map[string]any
	if len(model.Data) > 0 {
		if err := json.Unmarshal(model.Data, &data); err != nil {
			return nil, fmt.Errorf("failed to decode notification data: %w", err)
		}
	}

	entity, err := notification.ReconstructNotification(
		model.ID,
		model.RecipientID,
		model.ActorType,
		model.ActorID,
		model.Verb,
		model.Description,
		data,
		model.Unread,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification entity: %w", err)
	}

	return entity, nil
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) (*models.NotificationModel, error) {
	if entity == nil {
		return nil, nil
	}

	var data datatypes.JSON
	if entity.Data() != nil {
		raw, err := json.Marshal(entity.Data())
		if err != nil {
			return nil, fmt.Errorf("failed to encode notification data: %w", err)
		}
		data = datatypes.JSON(raw)
	}

	return &models.NotificationModel{
		ID:          entity.ID(),
		RecipientID: entity.RecipientID(),
		ActorType:   entity.ActorType(),
		ActorID:     entity.ActorID(),
		Verb:        entity.Verb(),
		Description: entity.Description(),
		Data:        data,
		Unread:      entity.IsUnread(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}

func (m *NotificationMapperImpl) ToEntities(items []*models.NotificationModel) ([]*notification.Notification, error) {
	return mapper.MapSlicePtrWithID(items, m.ToEntity, func(nm *models.NotificationModel) uint { return nm.ID })
}
