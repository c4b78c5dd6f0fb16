package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxVideoDuration caps practice clips at 30 seconds.
const MaxVideoDuration = 30

type Video struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	VideoURL     string    `gorm:"type:text;not null" json:"video_url"`
	ThumbnailURL string    `gorm:"type:text" json:"thumbnail_url"`
	Sport        string    `gorm:"size:100;not null;index" json:"sport"`
	Duration     int       `gorm:"not null" json:"duration"` // seconds
	UploaderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"uploader_id"`
	Views        int64     `gorm:"not null;default:0" json:"views"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Uploader *User     `gorm:"foreignKey:UploaderID" json:"uploader,omitempty"`
	Comments []Comment `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;index" json:"video_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// VideoLike follows the same single-row-per-edge shape as Follow.
type VideoLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_video_user_like" json:"video_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_video_user_like" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (l *VideoLike) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
