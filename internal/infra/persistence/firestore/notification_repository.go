package firestore

import (
	"context"
	"time"

	"pawpost/internal/domain/entity"
	domainerrors "pawpost/internal/domain/errors"
	"pawpost/internal/domain/repository"
	"pawpost/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type notificationRepository struct {
	client *firestore.Client
}

// NewNotificationRepository creates a notification repository on the notifications collection
func NewNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

// CreateNotification adds a document with an auto-generated ID
func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	ref, _, err := r.client.Collection(notificationsCollection).Add(ctx, fromNotificationDomain(notification))
	if err != nil {
		return domainerrors.Firebase("add notification document", err)
	}

	notification.ID = ref.ID

	return nil
}

func (r *notificationRepository) FindNotificationByID(ctx context.Context, id string) (*entity.Notification, error) {
	snap, err := r.client.Collection(notificationsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.WithStack(repository.ErrNotificationNotFound)
		}

		return nil, domainerrors.Firebase("get notification document", err)
	}

	return decodeNotification(snap)
}

// FindNotificationsByUser needs the composite index (userId ASC, createdAt DESC)
func (r *notificationRepository) FindNotificationsByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	query := r.client.Collection(notificationsCollection).
		Where(fieldUserID, "==", userID).
		OrderBy(fieldCreatedAt, firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.Firebase("query user notifications", err)
	}

	notifications := make([]*entity.Notification, 0, len(snaps))
	for _, snap := range snaps {
		n, err := decodeNotification(snap)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id string, readAt time.Time) error {
	_, err := r.client.Collection(notificationsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: fieldRead, Value: true},
		{Path: fieldReadAt, Value: readAt},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.WithStack(repository.ErrNotificationNotFound)
		}

		return domainerrors.Firebase("mark notification read", err)
	}

	return nil
}

func decodeNotification(snap *firestore.DocumentSnapshot) (*entity.Notification, error) {
	var doc notificationDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, domainerrors.Firebase("decode notification document", err)
	}

	return toNotificationDomain(snap.Ref.ID, &doc), nil
}
