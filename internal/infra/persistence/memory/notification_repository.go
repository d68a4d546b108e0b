package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"pawpost/internal/domain/entity"
	"pawpost/internal/domain/repository"
	"pawpost/internal/errors"

	"github.com/google/uuid"
)

type notificationRepository struct {
	mu            sync.RWMutex
	notifications map[string]*entity.Notification
}

// NewNotificationRepository creates an in-memory notification repository
func NewNotificationRepository() repository.NotificationRepository {
	return &notificationRepository{notifications: make(map[string]*entity.Notification)}
}

func (r *notificationRepository) CreateNotification(_ context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	notification.ID = uuid.New().String()
	r.notifications[notification.ID] = cloneNotification(notification)

	return nil
}

func (r *notificationRepository) FindNotificationByID(_ context.Context, id string) (*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notification, ok := r.notifications[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrNotificationNotFound)
	}

	return cloneNotification(notification), nil
}

func (r *notificationRepository) FindNotificationsByUser(_ context.Context, userID string, limit int) ([]*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Notification, 0)
	for _, n := range r.notifications {
		if n.UserID == userID {
			result = append(result, cloneNotification(n))
		}
	}

	slices.SortFunc(result, func(a, b *entity.Notification) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

func (r *notificationRepository) MarkAsRead(_ context.Context, id string, readAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	notification, ok := r.notifications[id]
	if !ok {
		return errors.WithStack(repository.ErrNotificationNotFound)
	}

	notification.Read = true
	notification.ReadAt = &readAt

	return nil
}

func cloneNotification(n *entity.Notification) *entity.Notification {
	c := *n
	c.Data = maps.Clone(n.Data)
	if n.ReadAt != nil {
		at := *n.ReadAt
		c.ReadAt = &at
	}

	return &c
}
