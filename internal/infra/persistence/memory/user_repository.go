// Package memory provides process-local repositories used for development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"pawpost/internal/domain/entity"
	"pawpost/internal/domain/repository"
	"pawpost/internal/errors"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

// NewUserRepository creates an in-memory user repository
func NewUserRepository() repository.UserRepository {
	return &userRepository{users: make(map[string]*entity.User)}
}

// Seed stores users as-is, replacing existing documents with the same ID
func Seed(repo repository.UserRepository, users ...*entity.User) {
	r, ok := repo.(*userRepository)
	if !ok {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range users {
		r.users[u.ID] = cloneUser(u)
	}
}

func (r *userRepository) FindUserByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	return cloneUser(user), nil
}

func (r *userRepository) SetFCMToken(_ context.Context, userID, token string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		user = &entity.User{ID: userID}
		r.users[userID] = user
	}

	user.FCMToken = &token
	user.LastTokenUpdate = &updatedAt

	return nil
}

func (r *userRepository) RemoveFCMToken(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return errors.WithStack(repository.ErrUserNotFound)
	}

	user.FCMToken = nil
	user.LastTokenUpdate = nil

	return nil
}

func cloneUser(u *entity.User) *entity.User {
	c := &entity.User{ID: u.ID}
	if u.FCMToken != nil {
		token := *u.FCMToken
		c.FCMToken = &token
	}
	if u.LastTokenUpdate != nil {
		at := *u.LastTokenUpdate
		c.LastTokenUpdate = &at
	}

	return c
}
