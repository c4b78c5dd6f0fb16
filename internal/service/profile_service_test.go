package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shivamraghav1010/Player/internal/dto"
	"github.com/shivamraghav1010/Player/internal/model"
	"github.com/shivamraghav1010/Player/internal/repository"
	"github.com/shivamraghav1010/Player/pkg/apperror"
)

func setupProfileService(t *testing.T) (ProfileService, *fakeStorage, *gorm.DB) {
	t.Helper()

	db := setupDB(t)
	store := &fakeStorage{}
	svc := NewProfileService(repository.NewUserRepository(db), repository.NewFollowRepository(db), store)
	return svc, store, db
}

func TestGetProfile(t *testing.T) {
	svc, _, db := setupProfileService(t)
	user := newUser(t, db, "rohit", model.RoleAthlete)
	follower := newUser(t, db, "virat", model.RoleAthlete)

	require.NoError(t, db.Create(&model.Follow{FollowerID: follower.ID, FolloweeID: user.ID}).Error)

	profile, err := svc.GetProfile(ctx(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "rohit", profile.Username)
	assert.Equal(t, int64(1), profile.FollowerCount)
	assert.Equal(t, int64(0), profile.FollowingCount)
	require.Len(t, profile.Followers, 1)
	assert.Equal(t, follower.ID, profile.Followers[0])

	_, err = svc.GetProfile(ctx(), uuid.New())
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestUpdateProfile(t *testing.T) {
	svc, _, db := setupProfileService(t)
	user := newUser(t, db, "rohit", model.RoleAthlete)

	bio := "Opening batter <img src=x onerror=alert(1)> from Mumbai"
	state := "Maharashtra"
	profile, err := svc.UpdateProfile(ctx(), user.ID, dto.UpdateProfileInput{
		Bio:    &bio,
		State:  &state,
		Sports: []string{"cricket"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Opening batter  from Mumbai", profile.Bio)
	assert.Equal(t, "Maharashtra", profile.State)
	assert.Equal(t, []string{"cricket"}, profile.Sports)

	// Omitted fields stay put.
	country := "India"
	profile, err = svc.UpdateProfile(ctx(), user.ID, dto.UpdateProfileInput{Country: &country})
	require.NoError(t, err)
	assert.Equal(t, "Maharashtra", profile.State)
	assert.Equal(t, "India", profile.Country)
}

func TestUploadProfilePic(t *testing.T) {
	svc, store, db := setupProfileService(t)
	user := newUser(t, db, "rohit", model.RoleAthlete)

	url, err := svc.UploadProfilePic(ctx(), user.ID, ProfilePicFile{
		Reader:   strings.NewReader("png bytes"),
		FileName: "avatar.png",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.uploads)
	assert.Equal(t, "https://media.test/profile-pictures/avatar.png", url)

	profile, err := svc.GetProfile(ctx(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, url, profile.ProfilePic)
}
