package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shivamraghav1010/Player/internal/dto"
	"github.com/shivamraghav1010/Player/internal/model"
	"github.com/shivamraghav1010/Player/internal/repository"
	"github.com/shivamraghav1010/Player/pkg/storage"
)

type ProfilePicFile struct {
	Reader   io.Reader
	FileName string
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input dto.UpdateProfileInput) (*dto.ProfileResponse, error)
	UploadProfilePic(ctx context.Context, userID uuid.UUID, file ProfilePicFile) (string, error)
}

type profileService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	storage    storage.MediaStorage
	sanitizer  *bluemonday.Policy
}

func NewProfileService(userRepo repository.UserRepository, followRepo repository.FollowRepository, mediaStorage storage.MediaStorage) ProfileService {
	return &profileService{
		userRepo:   userRepo,
		followRepo: followRepo,
		storage:    mediaStorage,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	return s.buildProfile(ctx, user)
}

func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input dto.UpdateProfileInput) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if input.Bio != nil {
		user.Bio = s.sanitizer.Sanitize(*input.Bio)
	}
	if input.ProfilePic != nil {
		user.ProfilePic = *input.ProfilePic
	}
	if input.State != nil {
		user.State = *input.State
	}
	if input.Country != nil {
		user.Country = *input.Country
	}
	if input.Sports != nil {
		user.Sports = input.Sports
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.buildProfile(ctx, user)
}

func (s *profileService) UploadProfilePic(ctx context.Context, userID uuid.UUID, file ProfilePicFile) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", translateNotFound(err)
	}

	url, err := s.storage.UploadImage(ctx, file.Reader, "profile-pictures", file.FileName)
	if err != nil {
		return "", err
	}

	user.ProfilePic = url
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}

	return url, nil
}

func (s *profileService) buildProfile(ctx context.Context, user *model.User) (*dto.ProfileResponse, error) {
	followers, err := s.followRepo.FollowerIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	following, err := s.followRepo.FollowingIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		ID:             user.ID,
		Username:       user.Username,
		Role:           user.Role,
		ProfilePic:     user.ProfilePic,
		Bio:            user.Bio,
		State:          user.State,
		Country:        user.Country,
		Sports:         user.Sports,
		Followers:      followers,
		Following:      following,
		FollowerCount:  int64(len(followers)),
		FollowingCount: int64(len(following)),
		CreatedAt:      user.CreatedAt,
	}, nil
}
