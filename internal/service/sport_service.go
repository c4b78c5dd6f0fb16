package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shivamraghav1010/Player/internal/dto"
	"github.com/shivamraghav1010/Player/internal/model"
	"github.com/shivamraghav1010/Player/internal/repository"
	"github.com/shivamraghav1010/Player/pkg/apperror"
	"gorm.io/gorm"
)

type SportService interface {
	ListActive(ctx context.Context) ([]model.Sport, error)
	ListAll(ctx context.Context) ([]model.Sport, error)
	Create(ctx context.Context, input dto.CreateSportInput) (*model.Sport, error)
	Update(ctx context.Context, id uuid.UUID, input dto.UpdateSportInput) (*model.Sport, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type sportService struct {
	repo repository.SportRepository
}

func NewSportService(repo repository.SportRepository) SportService {
	return &sportService{repo: repo}
}

func (s *sportService) ListActive(ctx context.Context) ([]model.Sport, error) {
	return s.repo.FindActive(ctx)
}

func (s *sportService) ListAll(ctx context.Context) ([]model.Sport, error) {
	return s.repo.FindAll(ctx)
}

func (s *sportService) Create(ctx context.Context, input dto.CreateSportInput) (*model.Sport, error) {
	if input.Name == "" {
		return nil, apperror.ErrInvalidInput
	}

	if _, err := s.repo.FindByName(ctx, input.Name); err == nil {
		return nil, apperror.ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sport := &model.Sport{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Order:       input.Order,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, sport); err != nil {
		return nil, err
	}
	return sport, nil
}

func (s *sportService) Update(ctx context.Context, id uuid.UUID, input dto.UpdateSportInput) (*model.Sport, error) {
	sport, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if input.Name != nil && *input.Name != sport.Name {
		if _, err := s.repo.FindByName(ctx, *input.Name); err == nil {
			return nil, apperror.ErrConflict
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		sport.Name = *input.Name
	}
	if input.Description != nil {
		sport.Description = *input.Description
	}
	if input.Icon != nil {
		sport.Icon = *input.Icon
	}
	if input.Order != nil {
		sport.Order = *input.Order
	}
	if input.IsActive != nil {
		sport.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, sport); err != nil {
		return nil, err
	}
	return sport, nil
}

func (s *sportService) Delete(ctx context.Context, id uuid.UUID) error {
	return translateNotFound(s.repo.Delete(ctx, id))
}
