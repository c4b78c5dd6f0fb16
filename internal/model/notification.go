package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationTypeTournament   = "tournament"
	NotificationTypeGeneral      = "general"
	NotificationTypeAnnouncement = "announcement"
	NotificationTypeFollow       = "follow"
)

const (
	AudienceAll      = "all"
	AudienceAthletes = "athletes"
	AudienceAdmins   = "admins"
)

type Notification struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string     `gorm:"size:255;not null" json:"title"`
	Message        string     `gorm:"type:text;not null" json:"message"`
	Type           string     `gorm:"size:50;not null;default:general;index" json:"type"`
	TargetAudience string     `gorm:"size:50;not null;default:all" json:"target_audience"`
	RecipientID    *uuid.UUID `gorm:"type:uuid;index" json:"recipient_id,omitempty"`
	CreatedByID    uuid.UUID  `gorm:"type:uuid;not null" json:"created_by_id"`
	// No column default: gorm would omit a zero-value false on insert and the
	// default would silently resurrect the row as active.
	IsActive  bool      `gorm:"not null" json:"is_active"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations - pointers to avoid recursion in JSON output
	Recipient *User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	CreatedBy *User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// BroadcastTypes are the types an admin may author for an audience. Follow
// notifications are system-generated and always carry a recipient, so they are
// deliberately absent.
var BroadcastTypes = []string{
	NotificationTypeTournament,
	NotificationTypeGeneral,
	NotificationTypeAnnouncement,
}

func IsBroadcastType(t string) bool {
	for _, bt := range BroadcastTypes {
		if t == bt {
			return true
		}
	}
	return false
}

// AudienceForRole maps a user role to the audience segment it belongs to.
func AudienceForRole(role string) string {
	if role == RoleAdmin {
		return AudienceAdmins
	}
	return AudienceAthletes
}

// VisibleTo reports whether the notification should surface for the given
// viewer. Direct notifications go to their recipient only; broadcast
// notifications go to their audience but never include follow events, which
// are personal. Admins additionally see everything they authored, so they can
// review what they sent regardless of audience.
func (n *Notification) VisibleTo(userID uuid.UUID, role string) bool {
	if !n.IsActive {
		return false
	}

	if n.RecipientID != nil {
		return *n.RecipientID == userID
	}

	if role == RoleAdmin && n.CreatedByID == userID {
		return true
	}

	if n.Type == NotificationTypeFollow {
		return false
	}

	return n.TargetAudience == AudienceAll || n.TargetAudience == AudienceForRole(role)
}
