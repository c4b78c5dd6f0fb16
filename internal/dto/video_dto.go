package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shivamraghav1010/Player/internal/model"
)

type UploadVideoInput struct {
	Title       string `form:"title" binding:"required,max=255"`
	Description string `form:"description"`
	Sport       string `form:"sport" binding:"required"`
}

type AddCommentInput struct {
	Text string `json:"text" binding:"required"`
}

type AuthorResponse struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	ProfilePic string    `json:"profile_pic"`
}

type VideoResponse struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	VideoURL     string          `json:"video_url"`
	ThumbnailURL string          `json:"thumbnail_url"`
	Sport        string          `json:"sport"`
	Duration     int             `json:"duration"`
	Views        int64           `json:"views"`
	Likes        int64           `json:"likes"`
	LikedByMe    bool            `json:"liked_by_me"`
	Uploader     *AuthorResponse `json:"uploader,omitempty"`
	Comments     []model.Comment `json:"comments,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type LikeToggleResponse struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}
