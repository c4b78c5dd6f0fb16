package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shivamraghav1010/Player/internal/model"
	"github.com/shivamraghav1010/Player/internal/repository"
	"github.com/shivamraghav1010/Player/pkg/apperror"
)

func setupFollowService(t *testing.T) (FollowService, *gorm.DB) {
	t.Helper()

	db := setupDB(t)
	userRepo := repository.NewUserRepository(db)
	notificationService := NewNotificationService(repository.NewNotificationRepository(db), userRepo, nil)
	followService := NewFollowService(repository.NewFollowRepository(db), userRepo, notificationService, nil)
	return followService, db
}

func TestToggleFollowCreatesEdge(t *testing.T) {
	svc, db := setupFollowService(t)
	actor := newUser(t, db, "rohit", model.RoleAthlete)
	target := newUser(t, db, "virat", model.RoleAthlete)

	state, err := svc.Toggle(ctx(), actor.ID, target.ID)
	require.NoError(t, err)
	assert.Equal(t, StateFollowed, state)

	following, err := svc.Following(ctx(), actor.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, target.ID, following[0])

	followers, err := svc.Followers(ctx(), target.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, actor.ID, followers[0])
}

func TestToggleFollowTwiceRemovesEdge(t *testing.T) {
	svc, db := setupFollowService(t)
	actor := newUser(t, db, "rohit", model.RoleAthlete)
	target := newUser(t, db, "virat", model.RoleAthlete)

	_, err := svc.Toggle(ctx(), actor.ID, target.ID)
	require.NoError(t, err)

	state, err := svc.Toggle(ctx(), actor.ID, target.ID)
	require.NoError(t, err)
	assert.Equal(t, StateUnfollowed, state)

	following, err := svc.Following(ctx(), actor.ID)
	require.NoError(t, err)
	assert.Empty(t, following)

	followers, err := svc.Followers(ctx(), target.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)
}

func TestToggleFollowSelfRejected(t *testing.T) {
	svc, db := setupFollowService(t)
	actor := newUser(t, db, "rohit", model.RoleAthlete)

	_, err := svc.Toggle(ctx(), actor.ID, actor.ID)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestToggleFollowUnknownTarget(t *testing.T) {
	svc, db := setupFollowService(t)
	actor := newUser(t, db, "rohit", model.RoleAthlete)

	_, err := svc.Toggle(ctx(), actor.ID, uuid.New())
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	// A failed toggle must not leave a dangling edge behind.
	following, err := svc.Following(ctx(), actor.ID)
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestToggleFollowUnknownActor(t *testing.T) {
	svc, db := setupFollowService(t)
	target := newUser(t, db, "virat", model.RoleAthlete)

	_, err := svc.Toggle(ctx(), uuid.New(), target.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestFollowNotifiesTargetOnce(t *testing.T) {
	svc, db := setupFollowService(t)
	actor := newUser(t, db, "rohit", model.RoleAthlete)
	target := newUser(t, db, "virat", model.RoleAthlete)

	_, err := svc.Toggle(ctx(), actor.ID, target.ID)
	require.NoError(t, err)

	var notifications []model.Notification
	require.NoError(t, db.Where("recipient_id = ?", target.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotificationTypeFollow, notifications[0].Type)
	assert.Equal(t, "New Follower", notifications[0].Title)
	assert.Contains(t, notifications[0].Message, actor.Username)
	assert.Equal(t, actor.ID, notifications[0].CreatedByID)

	// Unfollowing emits nothing.
	_, err = svc.Toggle(ctx(), actor.ID, target.ID)
	require.NoError(t, err)

	require.NoError(t, db.Where("recipient_id = ?", target.ID).Find(&notifications).Error)
	assert.Len(t, notifications, 1)
}

func TestFollowCounts(t *testing.T) {
	svc, db := setupFollowService(t)
	target := newUser(t, db, "virat", model.RoleAthlete)

	for _, name := range []string{"rohit", "rahul", "jasprit"} {
		actor := newUser(t, db, name, model.RoleAthlete)
		_, err := svc.Toggle(ctx(), actor.ID, target.ID)
		require.NoError(t, err)
	}

	count, err := svc.FollowerCount(ctx(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = svc.FollowingCount(ctx(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestConcurrentTogglesStaySymmetric(t *testing.T) {
	svc, db := setupFollowService(t)
	actor := newUser(t, db, "rohit", model.RoleAthlete)
	target := newUser(t, db, "virat", model.RoleAthlete)

	const toggles = 8

	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Toggle(ctx(), actor.ID, target.ID); err != nil {
				t.Errorf("toggle failed: %v", err)
			}
		}()
	}
	wg.Wait()

	// An even number of toggles always nets out to no edge, and the two
	// directions of the relationship must agree.
	following, err := svc.Following(ctx(), actor.ID)
	require.NoError(t, err)
	followers, err := svc.Followers(ctx(), target.ID)
	require.NoError(t, err)
	assert.Len(t, followers, len(following))
	assert.Empty(t, following)

	var edges int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&edges).Error)
	assert.Equal(t, int64(0), edges)
}
