// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pawpost/internal/domain/entity"
	domainerrors "pawpost/internal/domain/errors"
	"pawpost/internal/domain/repository"
	"pawpost/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateNotification inserts a notification row; the database assigns its ID.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if rejectedRow(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid notification fields")
		}

		return domainerrors.StoreFailure(err, "create notification")
	}

	notification.ID = notificationM.ID.String()
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id string) (*entity.Notification, error) {
	notificationID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.WithStack(repository.ErrNotificationNotFound)
	}

	var notificationM model.NotificationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", notificationID).First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrNotificationNotFound)
		}

		return nil, domainerrors.StoreFailure(err, "find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindNotificationsByUser retrieves the newest notifications of a user.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, domainerrors.StoreFailure(err, "find notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, m := range notificationModels {
		notifications = append(notifications, toNotificationDomain(m))
	}

	return notifications, nil
}

// MarkAsRead sets the read flag and its timestamp.
func (repo *notificationRepository) MarkAsRead(ctx context.Context, id string, readAt time.Time) error {
	notificationID, err := uuid.Parse(id)
	if err != nil {
		return errors.WithStack(repository.ErrNotificationNotFound)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", notificationID).
		Updates(map[string]any{
			"read":    true,
			"read_at": readAt,
		})
	if result.Error != nil {
		if malformedKey(result.Error) {
			return errors.WithStack(repository.ErrNotificationNotFound)
		}

		return domainerrors.StoreFailure(result.Error, "mark notification as read")
	}

	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrNotificationNotFound)
	}

	return nil
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	m := &model.NotificationModel{
		UserID:    data.UserID,
		Title:     data.Title,
		Body:      data.Body,
		Type:      string(data.Type),
		Data:      data.Data,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
		ReadAt:    data.ReadAt,
	}
	if id, err := uuid.Parse(data.ID); err == nil {
		m.ID = id
	}

	return m
}

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:        data.ID.String(),
		UserID:    data.UserID,
		Title:     data.Title,
		Body:      data.Body,
		Type:      entity.NotificationType(data.Type),
		Data:      data.Data,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
		ReadAt:    data.ReadAt,
	}
}
