package postgres

import (
	"context"
	"time"

	"pawpost/internal/domain/entity"
	domainerrors "pawpost/internal/domain/errors"
	"pawpost/internal/domain/repository"
	"pawpost/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindUserByID retrieves a user row by ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, domainerrors.StoreFailure(err, "find user by ID")
	}

	return toUserDomain(&userM), nil
}

// SetFCMToken upserts the token columns, creating the row when the user is new to this store.
func (repo *userRepository) SetFCMToken(ctx context.Context, userID, token string, updatedAt time.Time) error {
	userM := &model.UserModel{
		ID:              userID,
		FCMToken:        &token,
		LastTokenUpdate: &updatedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "last_token_update", "updated_at"}),
		}).
		Create(userM).Error
	if err != nil {
		return domainerrors.StoreFailure(err, "store device token")
	}

	return nil
}

// RemoveFCMToken clears both token columns.
func (repo *userRepository) RemoveFCMToken(ctx context.Context, userID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"fcm_token":         nil,
			"last_token_update": nil,
		})
	if result.Error != nil {
		return domainerrors.StoreFailure(result.Error, "remove device token")
	}

	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrUserNotFound)
	}

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		FCMToken:        data.FCMToken,
		LastTokenUpdate: data.LastTokenUpdate,
	}
}
