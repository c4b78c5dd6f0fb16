package dto

import "github.com/google/uuid"

type CreateBroadcastInput struct {
	Title          string `json:"title" binding:"required,max=255"`
	Message        string `json:"message" binding:"required"`
	Type           string `json:"type" binding:"required"`
	TargetAudience string `json:"target_audience" binding:"omitempty,oneof=all athletes admins"`
}

type CreateDirectInput struct {
	RecipientID uuid.UUID `json:"recipient_id" binding:"required"`
	Title       string    `json:"title" binding:"required,max=255"`
	Message     string    `json:"message" binding:"required"`
	Type        string    `json:"type"` // defaults to "general"
}

// UpdateNotificationInput patches any subset of the mutable fields; nil means
// "leave as is".
type UpdateNotificationInput struct {
	Title          *string `json:"title"`
	Message        *string `json:"message"`
	Type           *string `json:"type"`
	TargetAudience *string `json:"target_audience"`
	IsActive       *bool   `json:"is_active"`
}
