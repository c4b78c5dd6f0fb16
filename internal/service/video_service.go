package service

import (
	"context"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shivamraghav1010/Player/internal/dto"
	"github.com/shivamraghav1010/Player/internal/model"
	"github.com/shivamraghav1010/Player/internal/repository"
	"github.com/shivamraghav1010/Player/pkg/apperror"
	"github.com/shivamraghav1010/Player/pkg/storage"
)

type VideoFile struct {
	Reader   io.Reader
	FileName string
}

type VideoService interface {
	Upload(ctx context.Context, uploaderID uuid.UUID, input dto.UploadVideoInput, file VideoFile) (*model.Video, error)
	ListAll(ctx context.Context) ([]dto.VideoResponse, error)
	ListBySport(ctx context.Context, sport string) ([]dto.VideoResponse, error)
	ListByUploader(ctx context.Context, uploaderID uuid.UUID) ([]model.Video, error)
	Details(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*dto.VideoResponse, error)
	ToggleLike(ctx context.Context, videoID, userID uuid.UUID) (*dto.LikeToggleResponse, error)
	AddComment(ctx context.Context, videoID, userID uuid.UUID, input dto.AddCommentInput) (*model.Comment, error)
	IncrementViews(ctx context.Context, videoID uuid.UUID) (int64, error)
	Delete(ctx context.Context, videoID, actorID uuid.UUID) error
}

type videoService struct {
	repo          repository.VideoRepository
	userRepo      repository.UserRepository
	searchService SearchService
	storage       storage.MediaStorage
	sanitizer     *bluemonday.Policy
}

func NewVideoService(repo repository.VideoRepository, userRepo repository.UserRepository, searchService SearchService, mediaStorage storage.MediaStorage) VideoService {
	return &videoService{
		repo:          repo,
		userRepo:      userRepo,
		searchService: searchService,
		storage:       mediaStorage,
		sanitizer:     bluemonday.StrictPolicy(),
	}
}

func (s *videoService) Upload(ctx context.Context, uploaderID uuid.UUID, input dto.UploadVideoInput, file VideoFile) (*model.Video, error) {
	uploader, err := s.userRepo.FindByID(ctx, uploaderID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	url, duration, err := s.storage.UploadVideo(ctx, file.Reader, "athlete-videos", file.FileName)
	if err != nil {
		return nil, err
	}

	seconds := int(duration)
	if seconds <= 0 || seconds > model.MaxVideoDuration {
		seconds = model.MaxVideoDuration
	}

	video := &model.Video{
		Title:        input.Title,
		Description:  s.sanitizer.Sanitize(input.Description),
		VideoURL:     url,
		ThumbnailURL: thumbnailFor(url),
		Sport:        input.Sport,
		Duration:     seconds,
		UploaderID:   uploader.ID,
	}

	if err := s.repo.Create(ctx, video); err != nil {
		return nil, err
	}

	video.Uploader = uploader
	if s.searchService != nil {
		if err := s.searchService.IndexVideo(video); err != nil {
			log.Printf("failed to index video %s: %v", video.ID, err)
		}
	}

	return video, nil
}

func (s *videoService) ListAll(ctx context.Context) ([]dto.VideoResponse, error) {
	videos, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, videos)
}

func (s *videoService) ListBySport(ctx context.Context, sport string) ([]dto.VideoResponse, error) {
	videos, err := s.repo.FindBySport(ctx, sport)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, videos)
}

func (s *videoService) ListByUploader(ctx context.Context, uploaderID uuid.UUID) ([]model.Video, error) {
	return s.repo.FindByUploader(ctx, uploaderID)
}

func (s *videoService) Details(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*dto.VideoResponse, error) {
	video, err := s.repo.FindByIDWithDetails(ctx, videoID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	likes, err := s.repo.CountLikes(ctx, video.ID)
	if err != nil {
		return nil, err
	}

	resp := toResponse(video)
	resp.Likes = likes
	resp.Comments = video.Comments

	if viewerID != nil {
		liked, err := s.repo.IsLikedBy(ctx, video.ID, *viewerID)
		if err != nil {
			return nil, err
		}
		resp.LikedByMe = liked
	}

	return resp, nil
}

func (s *videoService) ToggleLike(ctx context.Context, videoID, userID uuid.UUID) (*dto.LikeToggleResponse, error) {
	if _, err := s.repo.FindByID(ctx, videoID); err != nil {
		return nil, translateNotFound(err)
	}

	liked, err := s.repo.ToggleLike(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}

	likes, err := s.repo.CountLikes(ctx, videoID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeToggleResponse{Liked: liked, Likes: likes}, nil
}

func (s *videoService) AddComment(ctx context.Context, videoID, userID uuid.UUID, input dto.AddCommentInput) (*model.Comment, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, apperror.ErrInvalidInput
	}

	if _, err := s.repo.FindByID(ctx, videoID); err != nil {
		return nil, translateNotFound(err)
	}

	comment := &model.Comment{
		VideoID: videoID,
		UserID:  userID,
		Text:    s.sanitizer.Sanitize(input.Text),
	}

	if err := s.repo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *videoService) IncrementViews(ctx context.Context, videoID uuid.UUID) (int64, error) {
	views, err := s.repo.IncrementViews(ctx, videoID)
	return views, translateNotFound(err)
}

func (s *videoService) Delete(ctx context.Context, videoID, actorID uuid.UUID) error {
	video, err := s.repo.FindByID(ctx, videoID)
	if err != nil {
		return translateNotFound(err)
	}

	if video.UploaderID != actorID {
		return apperror.ErrForbidden
	}

	if err := s.repo.Delete(ctx, videoID); err != nil {
		return err
	}

	if s.searchService != nil {
		if err := s.searchService.DeleteVideo(videoID.String()); err != nil {
			log.Printf("failed to deindex video %s: %v", videoID, err)
		}
	}

	// The file itself stays on the media host as a backup, mirroring how the
	// platform has always treated deletes.
	return nil
}

func (s *videoService) toResponses(ctx context.Context, videos []model.Video) ([]dto.VideoResponse, error) {
	responses := make([]dto.VideoResponse, 0, len(videos))
	for i := range videos {
		likes, err := s.repo.CountLikes(ctx, videos[i].ID)
		if err != nil {
			return nil, err
		}
		resp := toResponse(&videos[i])
		resp.Likes = likes
		responses = append(responses, *resp)
	}
	return responses, nil
}

func toResponse(video *model.Video) *dto.VideoResponse {
	resp := &dto.VideoResponse{
		ID:           video.ID,
		Title:        video.Title,
		Description:  video.Description,
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
		Sport:        video.Sport,
		Duration:     video.Duration,
		Views:        video.Views,
		CreatedAt:    video.CreatedAt,
	}
	if video.Uploader != nil {
		resp.Uploader = &dto.AuthorResponse{
			ID:         video.Uploader.ID,
			Username:   video.Uploader.Username,
			ProfilePic: video.Uploader.ProfilePic,
		}
	}
	return resp
}

// thumbnailFor derives the host-generated thumbnail URL from a video URL.
func thumbnailFor(videoURL string) string {
	if strings.HasSuffix(videoURL, ".mp4") {
		return strings.TrimSuffix(videoURL, ".mp4") + ".jpg"
	}
	return ""
}
