// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/repository"
	"wishlist/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// wishRepository implements the domain.WishRepository interface using GORM.
// Every query filters on user_id so one tenant can never see another's rows.
type wishRepository struct {
	db *gorm.DB
}

// NewWishRepository is the constructor for wishRepository.
func NewWishRepository(db *gorm.DB) repository.WishRepository {
	return &wishRepository{db: db}
}

// Create persists a new wish.
func (repo *wishRepository) Create(ctx context.Context, wish *entity.Wish) error {
	wishM := model.WishModelFromEntity(wish)

	if err := repo.db.WithContext(ctx).Create(wishM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create wish")
	}

	wish.ID = wishM.ID
	wish.CreatedAt = wishM.CreatedAt
	wish.UpdatedAt = wishM.UpdatedAt

	return nil
}

// FindByUserAndID retrieves a single wish owned by the given user.
func (repo *wishRepository) FindByUserAndID(ctx context.Context, userID, wishID int64) (*entity.Wish, error) {
	var wishM model.WishModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, wishID).
		First(&wishM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishNotFound
		}

		return nil, errors.Wrap(err, "failed to find wish")
	}

	return wishM.ToEntity(), nil
}

// ListByUser returns a page of the user's wishes, newest first.
func (repo *wishRepository) ListByUser(ctx context.Context, userID int64, skip, limit int) ([]*entity.Wish, error) {
	var wishMs []model.WishModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&wishMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishes")
	}

	return toWishEntities(wishMs), nil
}

// CountByUser returns the total number of wishes owned by the user.
func (repo *wishRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.WishModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count wishes")
	}

	return count, nil
}

// SearchByTitle returns a page of the user's wishes whose title contains the
// term, along with the total match count. The term arrives LIKE-escaped, so
// wildcard characters typed by the user match literally.
func (repo *wishRepository) SearchByTitle(ctx context.Context, userID int64, term string, skip, limit int) ([]*entity.Wish, int64, error) {
	pattern := "%" + term + "%"
	base := repo.db.WithContext(ctx).
		Model(&model.WishModel{}).
		Where("user_id = ?", userID).
		Where(`title ILIKE ? ESCAPE '\'`, pattern)

	var count int64
	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count wish search results")
	}

	var wishMs []model.WishModel
	err := base.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&wishMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to search wishes")
	}

	return toWishEntities(wishMs), count, nil
}

// Update modifies an existing wish owned by the given user.
func (repo *wishRepository) Update(ctx context.Context, wish *entity.Wish) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.WishModel{}).
		Where("user_id = ? AND id = ?", wish.UserID, wish.ID).
		Updates(map[string]any{
			"title":       wish.Title,
			"description": wish.Description,
			"price":       wish.Price,
			"updated_at":  now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update wish")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishNotFound
	}

	wish.UpdatedAt = now

	return nil
}

// DeleteByUserAndID removes a wish owned by the given user.
func (repo *wishRepository) DeleteByUserAndID(ctx context.Context, userID, wishID int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, wishID).
		Delete(&model.WishModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete wish")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishNotFound
	}

	return nil
}

func toWishEntities(wishMs []model.WishModel) []*entity.Wish {
	wishes := make([]*entity.Wish, 0, len(wishMs))
	for i := range wishMs {
		wishes = append(wishes, wishMs[i].ToEntity())
	}

	return wishes
}
