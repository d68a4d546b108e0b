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

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates a user repository on the users collection
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, domainerrors.Firebase("get user document", err)
	}

	var doc userDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, domainerrors.Firebase("decode user document", err)
	}

	return toUserDomain(snap.Ref.ID, &doc), nil
}

// SetFCMToken merges the token fields into the user document, creating it when absent
func (r *userRepository) SetFCMToken(ctx context.Context, userID, token string, updatedAt time.Time) error {
	_, err := r.client.Collection(usersCollection).Doc(userID).Set(ctx, map[string]any{
		fieldFCMToken:        token,
		fieldLastTokenUpdate: updatedAt,
	}, firestore.MergeAll)
	if err != nil {
		return domainerrors.Firebase("set device token", err)
	}

	return nil
}

// RemoveFCMToken deletes the token fields; blanking them would leave a stale token on file
func (r *userRepository) RemoveFCMToken(ctx context.Context, userID string) error {
	_, err := r.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: fieldFCMToken, Value: firestore.Delete},
		{Path: fieldLastTokenUpdate, Value: firestore.Delete},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.WithStack(repository.ErrUserNotFound)
		}

		return domainerrors.Firebase("remove device token", err)
	}

	return nil
}
