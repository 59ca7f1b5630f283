package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lingo-hub/lingo/internal/domain/notification"
	"github.com/lingo-hub/lingo/internal/infrastructure/persistence/mappers"
	"github.com/lingo-hub/lingo/internal/infrastructure/persistence/models"
	"github.com/lingo-hub/lingo/internal/shared/db"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(gdb *gorm.DB) notification.Repository {
	return &NotificationRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notif *notification.Notification) error {
	model, err := r.mapper.ToModel(notif)
	if err != nil {
		return fmt.Errorf("failed to map notification entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if err := notif.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set notification ID: %w", err)
	}

	return nil
}

func (r *NotificationRepositoryImpl) ListByRecipient(ctx context.Context, recipientID uint) ([]*notification.Notification, error) {
	var rows []*models.NotificationModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("recipient_id = ?", recipientID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	entities, err := r.mapper.ToEntities(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to map notification models to entities: %w", err)
	}

	return entities, nil
}
