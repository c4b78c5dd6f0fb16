package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follow is the directed edge follower → followee. A user's "following" list is
// the set of edges where they are the follower, their "followers" list the set
// where they are the followee: both views come from the same row, so the two
// sides can never disagree. The composite unique index rejects duplicate edges
// even under concurrent toggles.
type Follow struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FollowerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_follower_followee" json:"follower_id"`
	FolloweeID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_follower_followee" json:"followee_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// PairKey identifies the unordered (follower, followee) pair, used to serialize
// concurrent toggles on the same pair.
func PairKey(a, b uuid.UUID) string {
	if a.String() < b.String() {
		return a.String() + ":" + b.String()
	}
	return b.String() + ":" + a.String()
}
