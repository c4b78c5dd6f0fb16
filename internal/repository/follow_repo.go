package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shivamraghav1010/Player/internal/model"
	"gorm.io/gorm"
)

type FollowRepository interface {
	// Toggle flips the follower → followee edge inside one transaction and
	// reports whether the edge exists afterwards.
	Toggle(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	FollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Toggle(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var followed bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Find with a slice avoids "record not found" log noise from First().
		var existing []model.Follow
		if err := tx.
			Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
			Limit(1).
			Find(&existing).Error; err != nil {
			return err
		}

		if len(existing) > 0 {
			followed = false
			return tx.Delete(&existing[0]).Error
		}

		followed = true
		return tx.Create(&model.Follow{
			FollowerID: followerID,
			FolloweeID: followeeID,
		}).Error
	})

	if err != nil {
		return false, err
	}
	return followed, nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) FollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("followee_id = ?", userID).
		Pluck("follower_id", &ids).Error
	return ids, err
}

func (r *followRepository) FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error
	return ids, err
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("followee_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}
