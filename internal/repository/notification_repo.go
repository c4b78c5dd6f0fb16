package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shivamraghav1010/Player/internal/model"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	Update(ctx context.Context, notification *model.Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindVisibleTo returns every notification the viewer is entitled to see,
	// newest first. The WHERE clause is the SQL twin of Notification.VisibleTo.
	FindVisibleTo(ctx context.Context, userID uuid.UUID, role string) ([]model.Notification, error)
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	var notification model.Notification
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) Update(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

func (r *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Notification{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *notificationRepository) FindVisibleTo(ctx context.Context, userID uuid.UUID, role string) ([]model.Notification, error) {
	db := r.db.WithContext(ctx)

	// Direct branch: addressed to the viewer, regardless of audience.
	visible := db.Where("recipient_id = ?", userID)

	// Broadcast branch: audience match, follow events excluded (they are
	// personal and only ever surface via the direct branch).
	visible = visible.Or(
		db.Where("recipient_id IS NULL").
			Where("type <> ?", model.NotificationTypeFollow).
			Where("target_audience IN ?", []string{model.AudienceAll, model.AudienceForRole(role)}),
	)

	// Authorial exception: admins also see the broadcasts they sent. Rows with
	// a recipient stay exclusive to that recipient, author included.
	if role == model.RoleAdmin {
		visible = visible.Or(
			db.Where("recipient_id IS NULL").
				Where("created_by_id = ?", userID),
		)
	}

	var notifications []model.Notification
	err := db.
		Where("is_active = ?", true).
		Where(visible).
		Order("created_at desc").
		Preload("CreatedBy", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "profile_pic")
		}).
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("recipient_id = ? AND is_read = ? AND is_active = ?", recipientID, false, true).
		Count(&count).Error
	return count, err
}
