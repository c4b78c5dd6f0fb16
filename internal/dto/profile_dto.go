package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpdateProfileInput uses pointers so absent fields are left untouched.
type UpdateProfileInput struct {
	Bio        *string  `json:"bio" form:"bio"`
	ProfilePic *string  `json:"profile_pic" form:"profile_pic"`
	State      *string  `json:"state" form:"state"`
	Country    *string  `json:"country" form:"country"`
	Sports     []string `json:"sports" form:"sports"`
}

type ProfileResponse struct {
	ID             uuid.UUID   `json:"id"`
	Username       string      `json:"username"`
	Role           string      `json:"role"`
	ProfilePic     string      `json:"profile_pic"`
	Bio            string      `json:"bio"`
	State          string      `json:"state"`
	Country        string      `json:"country"`
	Sports         []string    `json:"sports"`
	Followers      []uuid.UUID `json:"followers"`
	Following      []uuid.UUID `json:"following"`
	FollowerCount  int64       `json:"follower_count"`
	FollowingCount int64       `json:"following_count"`
	CreatedAt      time.Time   `json:"created_at"`
}

type FollowToggleResponse struct {
	State string `json:"state"` // "followed" or "unfollowed"
}
