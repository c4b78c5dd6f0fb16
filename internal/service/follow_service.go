package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shivamraghav1010/Player/internal/model"
	"github.com/shivamraghav1010/Player/internal/repository"
	"github.com/shivamraghav1010/Player/pkg/apperror"
	"github.com/shivamraghav1010/Player/pkg/keylock"
)

const (
	StateFollowed   = "followed"
	StateUnfollowed = "unfollowed"
)

type FollowService interface {
	// Toggle follows target when no edge exists and unfollows otherwise.
	// The follow branch also emits a follow notification to the target.
	Toggle(ctx context.Context, actorID, targetID uuid.UUID) (string, error)
	Followers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	Following(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	FollowerCount(ctx context.Context, userID uuid.UUID) (int64, error)
	FollowingCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type followService struct {
	followRepo          repository.FollowRepository
	userRepo            repository.UserRepository
	notificationService NotificationService
	redisClient         *redis.Client
	pairLocks           *keylock.KeyLock
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository, notificationService NotificationService, redisClient *redis.Client) FollowService {
	return &followService{
		followRepo:          followRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
		redisClient:         redisClient,
		pairLocks:           keylock.New(),
	}
}

func (s *followService) Toggle(ctx context.Context, actorID, targetID uuid.UUID) (string, error) {
	if actorID == targetID {
		return "", apperror.ErrInvalidInput
	}

	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return "", translateNotFound(err)
	}

	if _, err := s.userRepo.FindByID(ctx, targetID); err != nil {
		return "", translateNotFound(err)
	}

	// Serialize toggles on the same pair so concurrent requests cannot race
	// the read-then-write inside the repository. The unique index on
	// (follower_id, followee_id) is the store-level backstop.
	pair := model.PairKey(actorID, targetID)
	s.pairLocks.Lock(pair)
	defer s.pairLocks.Unlock(pair)

	followed, err := s.followRepo.Toggle(ctx, actorID, targetID)
	if err != nil {
		return "", err
	}

	s.invalidateCountCaches(ctx, actorID, targetID)

	if !followed {
		return StateUnfollowed, nil
	}

	// The edge stands even if the notification write fails; the target just
	// misses one "New Follower" entry.
	if _, err := s.notificationService.CreateFollowEvent(ctx, actor, targetID); err != nil {
		log.Printf("follow notification for %s -> %s failed: %v", actorID, targetID, err)
	}

	return StateFollowed, nil
}

func (s *followService) Followers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.followRepo.FollowerIDs(ctx, userID)
}

func (s *followService) Following(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.followRepo.FollowingIDs(ctx, userID)
}

func (s *followService) FollowerCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.cachedCount(ctx, followerCountKey(userID), func() (int64, error) {
		return s.followRepo.CountFollowers(ctx, userID)
	})
}

func (s *followService) FollowingCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.cachedCount(ctx, followingCountKey(userID), func() (int64, error) {
		return s.followRepo.CountFollowing(ctx, userID)
	})
}

func (s *followService) cachedCount(ctx context.Context, key string, load func() (int64, error)) (int64, error) {
	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, key).Int64(); err == nil {
			return cached, nil
		}
	}

	count, err := load()
	if err != nil {
		return 0, err
	}

	if s.redisClient != nil {
		if err := s.redisClient.Set(ctx, key, count, countCacheTTL).Err(); err != nil {
			log.Printf("failed to cache %s: %v", key, err)
		}
	}

	return count, nil
}

func (s *followService) invalidateCountCaches(ctx context.Context, actorID, targetID uuid.UUID) {
	if s.redisClient == nil {
		return
	}

	if err := s.redisClient.Del(ctx,
		followingCountKey(actorID),
		followerCountKey(targetID),
	).Err(); err != nil {
		log.Printf("failed to invalidate follow count caches: %v", err)
	}
}

func followerCountKey(userID uuid.UUID) string {
	return fmt.Sprintf("follower_count:%s", userID)
}

func followingCountKey(userID uuid.UUID) string {
	return fmt.Sprintf("following_count:%s", userID)
}
