package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shivamraghav1010/Player/internal/model"
	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Video, error)
	FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*model.Video, error)
	FindAll(ctx context.Context) ([]model.Video, error)
	FindBySport(ctx context.Context, sport string) ([]model.Video, error)
	FindByUploader(ctx context.Context, uploaderID uuid.UUID) ([]model.Video, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)

	ToggleLike(ctx context.Context, videoID, userID uuid.UUID) (bool, error)
	CountLikes(ctx context.Context, videoID uuid.UUID) (int64, error)
	IsLikedBy(ctx context.Context, videoID, userID uuid.UUID) (bool, error)

	AddComment(ctx context.Context, comment *model.Comment) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *model.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	var video model.Video
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	var video model.Video
	if err := r.db.WithContext(ctx).
		Preload("Uploader", selectUserSubset).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Preload("Comments.User", selectUserSubset).
		Where("id = ?", id).
		First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) FindAll(ctx context.Context) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.WithContext(ctx).
		Preload("Uploader", selectUserSubset).
		Order("created_at desc").
		Find(&videos).Error
	return videos, err
}

func (r *videoRepository) FindBySport(ctx context.Context, sport string) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.WithContext(ctx).
		Preload("Uploader", selectUserSubset).
		Where("sport = ?", sport).
		Order("created_at desc").
		Find(&videos).Error
	return videos, err
}

func (r *videoRepository) FindByUploader(ctx context.Context, uploaderID uuid.UUID) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.WithContext(ctx).
		Where("uploader_id = ?", uploaderID).
		Order("created_at desc").
		Find(&videos).Error
	return videos, err
}

func (r *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Comment{}, "video_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.VideoLike{}, "video_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Video{}, "id = ?", id).Error
	})
}

func (r *videoRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Video{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var views int64
	err := r.db.WithContext(ctx).
		Model(&model.Video{}).
		Where("id = ?", id).
		Pluck("views", &views).Error
	return views, err
}

func (r *videoRepository) ToggleLike(ctx context.Context, videoID, userID uuid.UUID) (bool, error) {
	var liked bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []model.VideoLike
		if err := tx.
			Where("video_id = ? AND user_id = ?", videoID, userID).
			Limit(1).
			Find(&existing).Error; err != nil {
			return err
		}

		if len(existing) > 0 {
			liked = false
			return tx.Delete(&existing[0]).Error
		}

		liked = true
		return tx.Create(&model.VideoLike{VideoID: videoID, UserID: userID}).Error
	})

	if err != nil {
		return false, err
	}
	return liked, nil
}

func (r *videoRepository) CountLikes(ctx context.Context, videoID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.VideoLike{}).
		Where("video_id = ?", videoID).
		Count(&count).Error
	return count, err
}

func (r *videoRepository) IsLikedBy(ctx context.Context, videoID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.VideoLike{}).
		Where("video_id = ? AND user_id = ?", videoID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *videoRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func selectUserSubset(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username", "profile_pic")
}
