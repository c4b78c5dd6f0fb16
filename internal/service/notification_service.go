package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shivamraghav1010/Player/internal/dto"
	"github.com/shivamraghav1010/Player/internal/model"
	"github.com/shivamraghav1010/Player/internal/repository"
	"github.com/shivamraghav1010/Player/pkg/apperror"
)

type NotificationService interface {
	// ListVisible returns the notifications the actor is entitled to see,
	// newest first: their direct notifications plus active broadcasts for
	// their audience (admins additionally see everything they authored).
	ListVisible(ctx context.Context, actorID uuid.UUID) ([]model.Notification, error)

	CreateBroadcast(ctx context.Context, actorID uuid.UUID, input dto.CreateBroadcastInput) (*model.Notification, error)
	CreateDirect(ctx context.Context, actorID uuid.UUID, input dto.CreateDirectInput) (*model.Notification, error)
	// CreateFollowEvent is invoked by the follow service only; it is not
	// reachable from any HTTP route.
	CreateFollowEvent(ctx context.Context, follower *model.User, followeeID uuid.UUID) (*model.Notification, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input dto.UpdateNotificationInput) (*model.Notification, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, actorID uuid.UUID) error
	UnreadCount(ctx context.Context, actorID uuid.UUID) (int64, error)
}

type notificationService struct {
	repo        repository.NotificationRepository
	userRepo    repository.UserRepository
	redisClient *redis.Client
}

func NewNotificationService(repo repository.NotificationRepository, userRepo repository.UserRepository, redisClient *redis.Client) NotificationService {
	return &notificationService{
		repo:        repo,
		userRepo:    userRepo,
		redisClient: redisClient,
	}
}

func (s *notificationService) ListVisible(ctx context.Context, actorID uuid.UUID) ([]model.Notification, error) {
	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	return s.repo.FindVisibleTo(ctx, actor.ID, actor.Role)
}

func (s *notificationService) CreateBroadcast(ctx context.Context, actorID uuid.UUID, input dto.CreateBroadcastInput) (*model.Notification, error) {
	if _, err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	if input.Title == "" || input.Message == "" {
		return nil, apperror.ErrInvalidInput
	}
	if !model.IsBroadcastType(input.Type) {
		return nil, apperror.ErrInvalidInput
	}

	audience := input.TargetAudience
	if audience == "" {
		audience = model.AudienceAll
	}

	notification := &model.Notification{
		Title:          input.Title,
		Message:        input.Message,
		Type:           input.Type,
		TargetAudience: audience,
		CreatedByID:    actorID,
		IsActive:       true,
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *notificationService) CreateDirect(ctx context.Context, actorID uuid.UUID, input dto.CreateDirectInput) (*model.Notification, error) {
	if _, err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	if input.Title == "" || input.Message == "" {
		return nil, apperror.ErrInvalidInput
	}

	notificationType := input.Type
	if notificationType == "" {
		notificationType = model.NotificationTypeGeneral
	}
	// Follow events are system-authored; admins cannot forge them.
	if !model.IsBroadcastType(notificationType) {
		return nil, apperror.ErrInvalidInput
	}

	recipient, err := s.userRepo.FindByID(ctx, input.RecipientID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	notification := &model.Notification{
		Title:       input.Title,
		Message:     input.Message,
		Type:        notificationType,
		RecipientID: &recipient.ID,
		CreatedByID: actorID,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, err
	}

	s.invalidateUnreadCache(ctx, recipient.ID)
	return notification, nil
}

func (s *notificationService) CreateFollowEvent(ctx context.Context, follower *model.User, followeeID uuid.UUID) (*model.Notification, error) {
	notification := &model.Notification{
		Title:       "New Follower",
		Message:     fmt.Sprintf("%s started following you!", follower.Username),
		Type:        model.NotificationTypeFollow,
		RecipientID: &followeeID,
		CreatedByID: follower.ID,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, err
	}

	s.invalidateUnreadCache(ctx, followeeID)
	return notification, nil
}

func (s *notificationService) Update(ctx context.Context, actorID, id uuid.UUID, input dto.UpdateNotificationInput) (*model.Notification, error) {
	if _, err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	notification, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, apperror.ErrInvalidInput
		}
		notification.Title = *input.Title
	}
	if input.Message != nil {
		if *input.Message == "" {
			return nil, apperror.ErrInvalidInput
		}
		notification.Message = *input.Message
	}
	if input.Type != nil {
		if !model.IsBroadcastType(*input.Type) {
			return nil, apperror.ErrInvalidInput
		}
		notification.Type = *input.Type
	}
	if input.TargetAudience != nil {
		switch *input.TargetAudience {
		case model.AudienceAll, model.AudienceAthletes, model.AudienceAdmins:
			notification.TargetAudience = *input.TargetAudience
		default:
			return nil, apperror.ErrInvalidInput
		}
	}
	if input.IsActive != nil {
		notification.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *notificationService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}

	return translateNotFound(s.repo.Delete(ctx, id))
}

func (s *notificationService) MarkAllRead(ctx context.Context, actorID uuid.UUID) error {
	if _, err := s.repo.MarkAllRead(ctx, actorID); err != nil {
		return err
	}

	s.invalidateUnreadCache(ctx, actorID)
	return nil
}

func (s *notificationService) UnreadCount(ctx context.Context, actorID uuid.UUID) (int64, error) {
	key := unreadCountKey(actorID)
	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, key).Int64(); err == nil {
			return cached, nil
		}
	}

	count, err := s.repo.CountUnread(ctx, actorID)
	if err != nil {
		return 0, err
	}

	if s.redisClient != nil {
		if err := s.redisClient.Set(ctx, key, count, countCacheTTL).Err(); err != nil {
			log.Printf("failed to cache unread count for %s: %v", actorID, err)
		}
	}

	return count, nil
}

func (s *notificationService) requireAdmin(ctx context.Context, actorID uuid.UUID) (*model.User, error) {
	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if !actor.IsAdmin() {
		return nil, apperror.ErrForbidden
	}
	return actor, nil
}

func (s *notificationService) invalidateUnreadCache(ctx context.Context, userID uuid.UUID) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, unreadCountKey(userID)).Err(); err != nil {
		log.Printf("failed to invalidate unread count cache for %s: %v", userID, err)
	}
}

func unreadCountKey(userID uuid.UUID) string {
	return fmt.Sprintf("unread_count:%s", userID)
}
