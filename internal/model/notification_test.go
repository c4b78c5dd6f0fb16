package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVisibleToDirect(t *testing.T) {
	recipient := uuid.New()
	admin := uuid.New()
	stranger := uuid.New()

	n := &Notification{
		Type:        NotificationTypeGeneral,
		RecipientID: &recipient,
		CreatedByID: admin,
		IsActive:    true,
		// The recipient wins over any audience left on the row, even one that
		// would exclude their role.
		TargetAudience: AudienceAdmins,
	}

	assert.True(t, n.VisibleTo(recipient, RoleAthlete),
		"recipient should see their direct notification despite a mismatched audience")
	assert.False(t, n.VisibleTo(stranger, RoleAthlete),
		"direct notification must not leak to a non-recipient")
	assert.False(t, n.VisibleTo(stranger, RoleAdmin),
		"direct notification must not leak to an unrelated admin")

	n.TargetAudience = AudienceAll
	assert.True(t, n.VisibleTo(recipient, RoleAthlete))
	assert.False(t, n.VisibleTo(stranger, RoleAthlete),
		"an audience of all must not turn a direct notification into a broadcast")
}

func TestVisibleToBroadcastAudiences(t *testing.T) {
	author := uuid.New()
	viewer := uuid.New()

	cases := []struct {
		audience string
		role     string
		want     bool
	}{
		{AudienceAll, RoleAthlete, true},
		{AudienceAll, RoleAdmin, true},
		{AudienceAthletes, RoleAthlete, true},
		{AudienceAthletes, RoleAdmin, false},
		{AudienceAdmins, RoleAdmin, true},
		{AudienceAdmins, RoleAthlete, false},
	}

	for _, tc := range cases {
		n := &Notification{
			Type:           NotificationTypeAnnouncement,
			TargetAudience: tc.audience,
			CreatedByID:    author,
			IsActive:       true,
		}
		assert.Equal(t, tc.want, n.VisibleTo(viewer, tc.role),
			"audience %q, role %q", tc.audience, tc.role)
	}
}

func TestVisibleToAuthorException(t *testing.T) {
	author := uuid.New()

	n := &Notification{
		Type:           NotificationTypeAnnouncement,
		TargetAudience: AudienceAthletes,
		CreatedByID:    author,
		IsActive:       true,
	}

	assert.True(t, n.VisibleTo(author, RoleAdmin),
		"admin author should see their own broadcast regardless of audience")

	// The exception is tied to the admin role; a demoted author does not keep
	// visibility into admin-audience broadcasts they once sent.
	n.TargetAudience = AudienceAdmins
	assert.False(t, n.VisibleTo(author, RoleAthlete),
		"non-admin author should not bypass the audience filter")
}

func TestVisibleToInactive(t *testing.T) {
	author := uuid.New()
	recipient := uuid.New()

	broadcast := &Notification{
		Type:           NotificationTypeGeneral,
		TargetAudience: AudienceAll,
		CreatedByID:    author,
	}
	assert.False(t, broadcast.VisibleTo(recipient, RoleAthlete), "inactive broadcast should be hidden")
	assert.False(t, broadcast.VisibleTo(author, RoleAdmin), "inactive broadcast should be hidden from its author too")

	direct := &Notification{
		Type:        NotificationTypeGeneral,
		RecipientID: &recipient,
		CreatedByID: author,
	}
	assert.False(t, direct.VisibleTo(recipient, RoleAthlete), "inactive direct notification should be hidden")
}

func TestVisibleToFollowEventsArePersonal(t *testing.T) {
	follower := uuid.New()
	followee := uuid.New()
	other := uuid.New()

	n := &Notification{
		Type:        NotificationTypeFollow,
		RecipientID: &followee,
		CreatedByID: follower,
		IsActive:    true,
	}

	assert.True(t, n.VisibleTo(followee, RoleAthlete), "followee should see their follow notification")
	assert.False(t, n.VisibleTo(other, RoleAthlete), "follow notification must not leak beyond the followee")
	assert.False(t, n.VisibleTo(other, RoleAdmin), "follow notification must not leak to admins either")

	// A follow row with its recipient stripped must never surface as a
	// broadcast, whatever the audience column says.
	n.RecipientID = nil
	n.TargetAudience = AudienceAll
	assert.False(t, n.VisibleTo(other, RoleAthlete), "recipient-less follow notification must not broadcast")
}

func TestIsBroadcastType(t *testing.T) {
	for _, valid := range BroadcastTypes {
		assert.True(t, IsBroadcastType(valid), "%q should be a broadcast type", valid)
	}
	for _, invalid := range []string{NotificationTypeFollow, "", "like"} {
		assert.False(t, IsBroadcastType(invalid), "%q should not be a broadcast type", invalid)
	}
}
